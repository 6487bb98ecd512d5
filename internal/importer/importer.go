// Package importer loads a full game-night dataset from a JSON document
// into the store. Records reference each other by name within the document;
// database IDs are assigned on insert. Referential integrity is validated
// here, before anything is written — the aggregation core downstream
// assumes consistent references and silently skips broken ones.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ifancyabroad/the-nightingames/internal/model"
	"github.com/ifancyabroad/the-nightingames/internal/storage"
)

const dateLayout = "2006-01-02"

// Dataset is the JSON document shape.
type Dataset struct {
	Players []PlayerRecord `json:"players"`
	Games   []GameRecord   `json:"games"`
	Events  []EventRecord  `json:"events"`
}

type PlayerRecord struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	PreferredName     string `json:"preferredName"`
	PictureURL        string `json:"pictureUrl"`
	Color             string `json:"color"`
	ShowOnLeaderboard *bool  `json:"showOnLeaderboard"` // defaults to true
	LinkedUserID      string `json:"linkedUserId"`
}

// Name returns the key other records use to reference this player.
func (p PlayerRecord) Name() string {
	if p.PreferredName != "" {
		return p.PreferredName
	}
	return p.FirstName
}

type GameRecord struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Type   string `json:"type"`
	Color  string `json:"color"`
}

type EventRecord struct {
	Date     string         `json:"date"`
	Location string         `json:"location"`
	Notes    string         `json:"notes"`
	Players  []string       `json:"players"`
	Games    []string       `json:"games"`
	Results  []ResultRecord `json:"results"`
}

type ResultRecord struct {
	Game    string        `json:"game"`
	Notes   string        `json:"notes"`
	Entries []EntryRecord `json:"entries"`
}

type EntryRecord struct {
	Player   string `json:"player"`
	Rank     *int   `json:"rank"`
	IsWinner bool   `json:"isWinner"`
	IsLoser  bool   `json:"isLoser"`
}

// Summary reports what an import wrote.
type Summary struct {
	Players int
	Games   int
	Events  int
	Results int
}

// Parse decodes and validates a dataset document without writing anything.
func Parse(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks name uniqueness, reference resolution, and the result
// roster invariant: result entries may only reference players present at
// the owning event, and only games on the event's list.
func (ds *Dataset) Validate() error {
	playerNames := make(map[string]struct{}, len(ds.Players))
	for i, p := range ds.Players {
		if p.FirstName == "" {
			return fmt.Errorf("player %d: missing firstName", i)
		}
		name := p.Name()
		if _, dup := playerNames[name]; dup {
			return fmt.Errorf("duplicate player name %q", name)
		}
		playerNames[name] = struct{}{}
	}

	gameNames := make(map[string]struct{}, len(ds.Games))
	for i, g := range ds.Games {
		if g.Name == "" {
			return fmt.Errorf("game %d: missing name", i)
		}
		if _, dup := gameNames[g.Name]; dup {
			return fmt.Errorf("duplicate game name %q", g.Name)
		}
		if g.Points < 1 || g.Points > 3 {
			return fmt.Errorf("game %q: points %d out of range 1-3", g.Name, g.Points)
		}
		if !model.GameType(g.Type).Valid() {
			return fmt.Errorf("game %q: invalid type %q", g.Name, g.Type)
		}
		gameNames[g.Name] = struct{}{}
	}

	for i, e := range ds.Events {
		if _, err := time.Parse(dateLayout, e.Date); err != nil {
			return fmt.Errorf("event %d: invalid date %q", i, e.Date)
		}
		roster := make(map[string]struct{}, len(e.Players))
		for _, name := range e.Players {
			if _, ok := playerNames[name]; !ok {
				return fmt.Errorf("event %d: unknown player %q", i, name)
			}
			roster[name] = struct{}{}
		}
		gameList := make(map[string]struct{}, len(e.Games))
		for _, name := range e.Games {
			if _, ok := gameNames[name]; !ok {
				return fmt.Errorf("event %d: unknown game %q", i, name)
			}
			gameList[name] = struct{}{}
		}
		for j, r := range e.Results {
			if _, ok := gameList[r.Game]; !ok {
				return fmt.Errorf("event %d result %d: game %q not on event game list", i, j, r.Game)
			}
			for _, entry := range r.Entries {
				if _, ok := roster[entry.Player]; !ok {
					return fmt.Errorf("event %d result %d: player %q not on event roster", i, j, entry.Player)
				}
			}
		}
	}
	return nil
}

// Import parses, validates, and writes a dataset document into the store.
func Import(db *storage.DB, r io.Reader) (Summary, error) {
	ds, err := Parse(r)
	if err != nil {
		return Summary{}, err
	}
	return ds.Write(db)
}

// Write inserts a validated dataset, resolving name references to the IDs
// assigned by the store.
func (ds *Dataset) Write(db *storage.DB) (Summary, error) {
	var sum Summary

	playerIDs := make(map[string]int64, len(ds.Players))
	for _, p := range ds.Players {
		show := true
		if p.ShowOnLeaderboard != nil {
			show = *p.ShowOnLeaderboard
		}
		id, err := db.InsertPlayer(model.Player{
			FirstName:         p.FirstName,
			LastName:          p.LastName,
			PreferredName:     p.PreferredName,
			PictureURL:        p.PictureURL,
			Color:             p.Color,
			ShowOnLeaderboard: show,
			LinkedUserID:      p.LinkedUserID,
		})
		if err != nil {
			return sum, fmt.Errorf("import player %q: %w", p.Name(), err)
		}
		playerIDs[p.Name()] = id
		sum.Players++
	}

	gameIDs := make(map[string]int64, len(ds.Games))
	for _, g := range ds.Games {
		id, err := db.InsertGame(model.Game{
			Name:   g.Name,
			Points: g.Points,
			Type:   model.GameType(g.Type),
			Color:  g.Color,
		})
		if err != nil {
			return sum, fmt.Errorf("import game %q: %w", g.Name, err)
		}
		gameIDs[g.Name] = id
		sum.Games++
	}

	for i, e := range ds.Events {
		date, _ := time.Parse(dateLayout, e.Date) // validated in Parse
		event := model.Event{
			Date:     date,
			Location: e.Location,
			Notes:    e.Notes,
		}
		for _, name := range e.Players {
			event.PlayerIDs = append(event.PlayerIDs, playerIDs[name])
		}
		for _, name := range e.Games {
			event.GameIDs = append(event.GameIDs, gameIDs[name])
		}
		eventID, err := db.InsertEvent(event)
		if err != nil {
			return sum, fmt.Errorf("import event %d: %w", i, err)
		}
		sum.Events++

		for j, r := range e.Results {
			result := model.Result{
				EventID: eventID,
				GameID:  gameIDs[r.Game],
				Order:   j + 1,
				Notes:   r.Notes,
			}
			for _, entry := range r.Entries {
				result.PlayerResults = append(result.PlayerResults, model.PlayerResult{
					PlayerID: playerIDs[entry.Player],
					Rank:     entry.Rank,
					IsWinner: entry.IsWinner,
					IsLoser:  entry.IsLoser,
				})
			}
			if _, err := db.InsertResult(result); err != nil {
				return sum, fmt.Errorf("import event %d result %d: %w", i, j, err)
			}
			sum.Results++
		}
	}
	return sum, nil
}
