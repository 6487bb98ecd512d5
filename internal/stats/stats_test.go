package stats

import (
	"testing"
	"time"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

// IDs for test players.
const (
	alice int64 = 1
	bob   int64 = 2
	cara  int64 = 3
	dave  int64 = 4
)

// IDs for test games.
const (
	catan int64 = 1 // board, 2 points
	ttr   int64 = 2 // board, 1 point
	kart  int64 = 3 // video, 2 points
)

func makePlayer(id int64, name string) model.Player {
	return model.Player{ID: id, FirstName: name, LastName: "Test", ShowOnLeaderboard: true}
}

func defaultPlayers() []model.Player {
	return []model.Player{
		makePlayer(alice, "Alice"),
		makePlayer(bob, "Bob"),
		makePlayer(cara, "Cara"),
		makePlayer(dave, "Dave"),
	}
}

func defaultGames() []model.Game {
	return []model.Game{
		{ID: catan, Name: "Catan", Points: 2, Type: model.GameTypeBoard},
		{ID: ttr, Name: "Ticket to Ride", Points: 1, Type: model.GameTypeBoard},
		{ID: kart, Name: "Mario Kart", Points: 2, Type: model.GameTypeVideo},
	}
}

func mustDate(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}
	return d
}

func makeEvent(t *testing.T, id int64, date string, playerIDs ...int64) model.Event {
	t.Helper()
	return model.Event{
		ID:        id,
		Date:      mustDate(t, date),
		PlayerIDs: playerIDs,
		GameIDs:   []int64{catan, ttr, kart},
	}
}

func win(id int64) model.PlayerResult {
	return model.PlayerResult{PlayerID: id, IsWinner: true}
}

func loss(id int64) model.PlayerResult {
	return model.PlayerResult{PlayerID: id, IsLoser: true}
}

func draw(id int64) model.PlayerResult {
	return model.PlayerResult{PlayerID: id}
}

var nextResultID int64

func makeResult(eventID, gameID int64, ord int, entries ...model.PlayerResult) model.Result {
	nextResultID++
	return model.Result{
		ID:            nextResultID,
		EventID:       eventID,
		GameID:        gameID,
		Order:         ord,
		PlayerResults: entries,
	}
}

func makeSnapshot(t *testing.T, events []model.Event, results []model.Result) *Snapshot {
	t.Helper()
	return NewSnapshot(defaultPlayers(), defaultGames(), events, results)
}

func findData(t *testing.T, players []model.PlayerWithData, id int64) model.PlayerData {
	t.Helper()
	for _, p := range players {
		if p.ID == id {
			return p.Data
		}
	}
	t.Fatalf("player %d not in result set", id)
	return model.PlayerData{}
}
