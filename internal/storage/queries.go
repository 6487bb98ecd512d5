package storage

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/ifancyabroad/the-nightingames/internal/model"
	"github.com/ifancyabroad/the-nightingames/internal/stats"
)

const dateLayout = "2006-01-02"

// ---- Players ----

// InsertPlayer stores a new player and returns its assigned ID.
func (db *DB) InsertPlayer(p model.Player) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO players(first_name, last_name, preferred_name, picture_url, color, show_on_leaderboard, linked_user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.FirstName, p.LastName, p.PreferredName, p.PictureURL, p.Color,
		boolInt(p.ShowOnLeaderboard), p.LinkedUserID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := bumpRevision(tx); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// UpdatePlayer edits a player's mutable fields in place.
func (db *DB) UpdatePlayer(p model.Player) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE players
		SET first_name = ?, last_name = ?, preferred_name = ?, picture_url = ?,
		    color = ?, show_on_leaderboard = ?, linked_user_id = ?
		WHERE id = ?`,
		p.FirstName, p.LastName, p.PreferredName, p.PictureURL, p.Color,
		boolInt(p.ShowOnLeaderboard), p.LinkedUserID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("player %d not found", p.ID)
	}
	if err := bumpRevision(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// ListPlayers returns all players ordered by ID.
func (db *DB) ListPlayers() ([]model.Player, error) {
	rows, err := db.conn.Query(`
		SELECT id, first_name, last_name, preferred_name, picture_url, color, show_on_leaderboard, linked_user_id
		FROM players ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Player
	for rows.Next() {
		var p model.Player
		var show int
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.PreferredName,
			&p.PictureURL, &p.Color, &show, &p.LinkedUserID); err != nil {
			return nil, err
		}
		p.ShowOnLeaderboard = show != 0
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPlayer returns a player by ID, or nil when absent.
func (db *DB) GetPlayer(id int64) (*model.Player, error) {
	var p model.Player
	var show int
	err := db.conn.QueryRow(`
		SELECT id, first_name, last_name, preferred_name, picture_url, color, show_on_leaderboard, linked_user_id
		FROM players WHERE id = ?`, id).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.PreferredName,
			&p.PictureURL, &p.Color, &show, &p.LinkedUserID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.ShowOnLeaderboard = show != 0
	return &p, nil
}

// ---- Games ----

// InsertGame stores a new game and returns its assigned ID.
func (db *DB) InsertGame(g model.Game) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO games(name, points, type, color) VALUES (?, ?, ?, ?)`,
		g.Name, g.Points, string(g.Type), g.Color,
	)
	if err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := bumpRevision(tx); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// ListGames returns all games ordered by ID.
func (db *DB) ListGames() ([]model.Game, error) {
	rows, err := db.conn.Query(`SELECT id, name, points, type, color FROM games ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Game
	for rows.Next() {
		var g model.Game
		var typ string
		if err := rows.Scan(&g.ID, &g.Name, &g.Points, &typ, &g.Color); err != nil {
			return nil, err
		}
		g.Type = model.GameType(typ)
		out = append(out, g)
	}
	return out, rows.Err()
}

// ---- Events ----

// InsertEvent stores an event with its player roster and game list in one
// transaction, returning the assigned ID.
func (db *DB) InsertEvent(e model.Event) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO events(date, location, notes) VALUES (?, ?, ?)`,
		e.Date.Format(dateLayout), e.Location, e.Notes)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := insertEventLists(tx, id, e); err != nil {
		return 0, err
	}
	if err := bumpRevision(tx); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// UpdateEvent replaces an event's fields, roster, and game list.
func (db *DB) UpdateEvent(e model.Event) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE events SET date = ?, location = ?, notes = ? WHERE id = ?`,
		e.Date.Format(dateLayout), e.Location, e.Notes, e.ID)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("event %d not found", e.ID)
	}
	if _, err := tx.Exec(`DELETE FROM event_players WHERE event_id = ?`, e.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM event_games WHERE event_id = ?`, e.ID); err != nil {
		return err
	}
	if err := insertEventLists(tx, e.ID, e); err != nil {
		return err
	}
	if err := bumpRevision(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func insertEventLists(tx *sql.Tx, eventID int64, e model.Event) error {
	for i, playerID := range e.PlayerIDs {
		if _, err := tx.Exec(`INSERT INTO event_players(event_id, player_id, position) VALUES (?, ?, ?)`,
			eventID, playerID, i); err != nil {
			return fmt.Errorf("insert event player %d: %w", playerID, err)
		}
	}
	for i, gameID := range e.GameIDs {
		if _, err := tx.Exec(`INSERT INTO event_games(event_id, game_id, position) VALUES (?, ?, ?)`,
			eventID, gameID, i); err != nil {
			return fmt.Errorf("insert event game %d: %w", gameID, err)
		}
	}
	return nil
}

// ListEvents returns all events with rosters and game lists, ordered by
// date then ID.
func (db *DB) ListEvents() ([]model.Event, error) {
	rows, err := db.conn.Query(`SELECT id, date, location, notes FROM events ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	byID := make(map[int64]int)
	for rows.Next() {
		var e model.Event
		var dateStr string
		if err := rows.Scan(&e.ID, &dateStr, &e.Location, &e.Notes); err != nil {
			return nil, err
		}
		e.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse event %d date %q: %w", e.ID, dateStr, err)
		}
		byID[e.ID] = len(out)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prows, err := db.conn.Query(`SELECT event_id, player_id FROM event_players ORDER BY event_id, position`)
	if err != nil {
		return nil, err
	}
	defer prows.Close()
	for prows.Next() {
		var eventID, playerID int64
		if err := prows.Scan(&eventID, &playerID); err != nil {
			return nil, err
		}
		if i, ok := byID[eventID]; ok {
			out[i].PlayerIDs = append(out[i].PlayerIDs, playerID)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, err
	}

	grows, err := db.conn.Query(`SELECT event_id, game_id FROM event_games ORDER BY event_id, position`)
	if err != nil {
		return nil, err
	}
	defer grows.Close()
	for grows.Next() {
		var eventID, gameID int64
		if err := grows.Scan(&eventID, &gameID); err != nil {
			return nil, err
		}
		if i, ok := byID[eventID]; ok {
			out[i].GameIDs = append(out[i].GameIDs, gameID)
		}
	}
	return out, grows.Err()
}

// ---- Results ----

// InsertResult stores a result with its per-player entries in one
// transaction, returning the assigned ID. When Order is zero the next free
// position within the event is used.
func (db *DB) InsertResult(r model.Result) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	ord := r.Order
	if ord == 0 {
		if err := tx.QueryRow(`SELECT COALESCE(MAX(ord), 0) + 1 FROM results WHERE event_id = ?`,
			r.EventID).Scan(&ord); err != nil {
			return 0, err
		}
	}

	res, err := tx.Exec(`INSERT INTO results(event_id, game_id, ord, notes) VALUES (?, ?, ?, ?)`,
		r.EventID, r.GameID, ord, r.Notes)
	if err != nil {
		return 0, fmt.Errorf("insert result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, pr := range r.PlayerResults {
		var rank any
		if pr.Rank != nil {
			rank = *pr.Rank
		}
		if _, err := tx.Exec(`
			INSERT INTO result_players(result_id, player_id, rank, is_winner, is_loser)
			VALUES (?, ?, ?, ?, ?)`,
			id, pr.PlayerID, rank, boolInt(pr.IsWinner), boolInt(pr.IsLoser)); err != nil {
			return 0, fmt.Errorf("insert result player %d: %w", pr.PlayerID, err)
		}
	}
	if err := bumpRevision(tx); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// ListResults returns all results with their player entries, ordered by
// event then within-event position.
func (db *DB) ListResults() ([]model.Result, error) {
	rows, err := db.conn.Query(`SELECT id, event_id, game_id, ord, notes FROM results ORDER BY event_id, ord`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Result
	byID := make(map[int64]int)
	for rows.Next() {
		var r model.Result
		if err := rows.Scan(&r.ID, &r.EventID, &r.GameID, &r.Order, &r.Notes); err != nil {
			return nil, err
		}
		byID[r.ID] = len(out)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prows, err := db.conn.Query(`
		SELECT result_id, player_id, rank, is_winner, is_loser
		FROM result_players ORDER BY result_id, player_id`)
	if err != nil {
		return nil, err
	}
	defer prows.Close()
	for prows.Next() {
		var resultID int64
		var pr model.PlayerResult
		var rank sql.NullInt64
		var winner, loser int
		if err := prows.Scan(&resultID, &pr.PlayerID, &rank, &winner, &loser); err != nil {
			return nil, err
		}
		if rank.Valid {
			v := int(rank.Int64)
			pr.Rank = &v
		}
		pr.IsWinner = winner != 0
		pr.IsLoser = loser != 0
		if i, ok := byID[resultID]; ok {
			out[i].PlayerResults = append(out[i].PlayerResults, pr)
		}
	}
	return out, prows.Err()
}

// DropAll deletes every stored record. Used by the drop command and tests.
func (db *DB) DropAll() error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, table := range []string{"result_players", "results", "event_games", "event_players", "events", "games", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := bumpRevision(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadSnapshot reads the full dataset into an immutable stats snapshot.
func (db *DB) LoadSnapshot() (*stats.Snapshot, error) {
	players, err := db.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	games, err := db.ListGames()
	if err != nil {
		return nil, fmt.Errorf("load games: %w", err)
	}
	events, err := db.ListEvents()
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	results, err := db.ListResults()
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	return stats.NewSnapshot(players, games, events, results), nil
}

// Overview is a lightweight roll-up for the summary command.
type Overview struct {
	Players int
	Games   int
	Events  int
	Results int
	Years   []int
}

// GetOverview counts stored records and collects the covered years.
func (db *DB) GetOverview() (Overview, error) {
	var ov Overview
	counts := map[string]*int{
		"players": &ov.Players,
		"games":   &ov.Games,
		"events":  &ov.Events,
		"results": &ov.Results,
	}
	for table, dst := range counts {
		if err := db.conn.QueryRow("SELECT COUNT(1) FROM " + table).Scan(dst); err != nil {
			return ov, fmt.Errorf("count %s: %w", table, err)
		}
	}
	rows, err := db.conn.Query(`SELECT DISTINCT substr(date, 1, 4) FROM events ORDER BY 1`)
	if err != nil {
		return ov, err
	}
	defer rows.Close()
	for rows.Next() {
		var yearStr string
		if err := rows.Scan(&yearStr); err != nil {
			return ov, err
		}
		var year int
		if _, err := fmt.Sscanf(yearStr, "%d", &year); err == nil {
			ov.Years = append(ov.Years, year)
		}
	}
	sort.Ints(ov.Years)
	return ov, rows.Err()
}
