package stats

import (
	"testing"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

func eventScenario(t *testing.T) *Snapshot {
	events := []model.Event{makeEvent(t, 1, "2025-05-01", alice, bob, cara)}
	results := []model.Result{
		makeResult(1, catan, 1, win(alice), loss(bob), draw(cara)),
		makeResult(1, ttr, 2, model.PlayerResult{PlayerID: cara, Rank: intPtr(1), IsWinner: true}, loss(alice)),
	}
	return makeSnapshot(t, events, results)
}

func TestEventPlayerStats(t *testing.T) {
	snap := eventScenario(t)

	stats := EventPlayerStats(snap, 1)
	if len(stats) != 3 {
		t.Fatalf("player stats = %d rows, want 3 (full roster)", len(stats))
	}

	// Alice: +2 (catan) -1 (ttr) = 1 point, 1 win. Cara: +1, 1 win.
	// Bob: -2. Alice sorts first on points.
	if stats[0].Player.ID != alice || stats[0].Points != 1 || stats[0].Wins != 1 {
		t.Fatalf("stats[0] = %+v, want alice with 1 point", stats[0])
	}
	if stats[1].Player.ID != cara || stats[1].Points != 1 {
		t.Fatalf("stats[1] = %+v, want cara with 1 point", stats[1])
	}
	if stats[2].Player.ID != bob || stats[2].Points != -2 {
		t.Fatalf("stats[2] = %+v, want bob with -2 points", stats[2])
	}

	if len(stats[0].Outcomes) != 2 {
		t.Fatalf("alice outcomes = %d, want 2", len(stats[0].Outcomes))
	}
}

func TestEventGameStatsPlayOrder(t *testing.T) {
	snap := eventScenario(t)

	games := EventGameStats(snap, 1)
	if len(games) != 2 {
		t.Fatalf("game stats = %d rows, want 2", len(games))
	}
	if games[0].Game.ID != catan || games[0].Order != 1 {
		t.Fatalf("games[0] = %+v, want catan at order 1", games[0])
	}
	if games[0].Participants != 3 {
		t.Fatalf("catan participants = %d, want 3", games[0].Participants)
	}
	if len(games[0].Winners) != 1 || games[0].Winners[0].ID != alice {
		t.Fatalf("catan winners = %+v, want alice", games[0].Winners)
	}
}

func TestEventTopScorersTies(t *testing.T) {
	snap := eventScenario(t)

	top := EventTopScorers(snap, 1)
	if len(top) != 2 {
		t.Fatalf("top scorers = %+v, want alice and cara tied", top)
	}
	if top[0].Points != 1 || top[1].Points != 1 {
		t.Fatalf("top scorer points = %+v, want 1 each", top)
	}
}

func TestEventStatsUnknownEvent(t *testing.T) {
	snap := eventScenario(t)

	if got := EventPlayerStats(snap, 99); got != nil {
		t.Fatalf("player stats for unknown event = %+v", got)
	}
	if got := EventTopScorers(snap, 99); len(got) != 0 {
		t.Fatalf("top scorers for unknown event = %+v", got)
	}
}
