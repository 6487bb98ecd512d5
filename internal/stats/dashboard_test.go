package stats

import (
	"testing"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

func TestDashboardEmptyData(t *testing.T) {
	snap := makeSnapshot(t, nil, nil)

	sum := Dashboard(snap, mustDate(t, "2025-08-31"))
	if len(sum.Leaderboard) != 0 || len(sum.LatestEvents) != 0 || len(sum.TopScorers) != 0 {
		t.Fatalf("summary from empty data = %+v", sum)
	}
	if sum.Drought != nil || sum.TopRivalry != nil {
		t.Fatalf("summary cards should be nil: %+v", sum)
	}
}

func TestDashboardComposition(t *testing.T) {
	events := []model.Event{
		makeEvent(t, 1, "2025-01-10", alice, bob, cara),
		makeEvent(t, 2, "2025-03-10", alice, bob, cara),
		makeEvent(t, 3, "2025-05-10", alice, bob, cara),
		makeEvent(t, 4, "2025-07-10", alice, bob, cara),
	}
	results := []model.Result{
		makeResult(1, catan, 1, win(alice), loss(bob), draw(cara)),
		makeResult(2, catan, 1, win(alice), loss(bob), draw(cara)),
		makeResult(3, catan, 1, win(bob), loss(cara), draw(alice)),
		makeResult(4, catan, 1, win(cara), loss(bob), draw(alice)),
	}
	snap := makeSnapshot(t, events, results)

	sum := Dashboard(snap, mustDate(t, "2025-08-31"))

	if len(sum.Leaderboard) != 3 {
		t.Fatalf("leaderboard rows = %d, want top %d", len(sum.Leaderboard), DashboardLeaderboardLimit)
	}
	if sum.Leaderboard[0].ID != alice {
		t.Fatalf("leader = %+v, want alice", sum.Leaderboard[0].Player)
	}

	if len(sum.LatestEvents) != RecentEventsLimit {
		t.Fatalf("latest events = %d, want %d", len(sum.LatestEvents), RecentEventsLimit)
	}
	if sum.LatestEvents[0].ID != 4 {
		t.Fatalf("latest event = %d, want the July one", sum.LatestEvents[0].ID)
	}

	if len(sum.TopScorers) != 1 || sum.TopScorers[0].Player.ID != cara {
		t.Fatalf("top scorers = %+v, want cara from the newest event", sum.TopScorers)
	}

	// Alice hasn't won since the March event: two decisionless games since.
	if sum.Drought == nil || sum.Drought.Player.ID != alice || sum.Drought.Games != 2 {
		t.Fatalf("drought = %+v, want alice with 2 games", sum.Drought)
	}
	if sum.TopRivalry == nil {
		t.Fatal("top rivalry missing")
	}
}
