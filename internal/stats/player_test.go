package stats

import (
	"testing"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

// ---- point fold tests ----

func TestComputePlayerDataPointsAndWinRate(t *testing.T) {
	events := []model.Event{makeEvent(t, 1, "2025-05-01", alice, bob, cara)}
	results := []model.Result{
		makeResult(1, catan, 1, win(alice), loss(bob), draw(cara)),
	}
	snap := makeSnapshot(t, events, results)

	data := ComputePlayerData(snap.Players, snap.Results, snap.GameByID, snap.Events)

	a := findData(t, data, alice)
	if a.Points != 2 || a.Wins != 1 || a.Games != 1 {
		t.Fatalf("alice = %+v, want points=2 wins=1 games=1", a)
	}
	if a.WinRate != 1.0 {
		t.Fatalf("alice win rate = %v, want 1.0", a.WinRate)
	}

	b := findData(t, data, bob)
	if b.Points != -2 || b.Wins != 0 {
		t.Fatalf("bob = %+v, want points=-2 wins=0", b)
	}

	c := findData(t, data, cara)
	if c.Points != 0 || c.Games != 1 || c.WinRate != 0 {
		t.Fatalf("cara = %+v, want break-even participation", c)
	}
}

func TestWinRateZeroWithoutGames(t *testing.T) {
	events := []model.Event{makeEvent(t, 1, "2025-05-01", alice, bob)}
	results := []model.Result{makeResult(1, catan, 1, win(alice), loss(bob))}
	snap := makeSnapshot(t, events, results)

	data := ComputePlayerData(snap.Players, snap.Results, snap.GameByID, snap.Events)

	d := findData(t, data, dave)
	if d.Games != 0 || d.WinRate != 0 {
		t.Fatalf("dave = %+v, want games=0 winRate=0", d)
	}
	if d.BestGame != nil {
		t.Fatalf("dave best game = %+v, want nil", d.BestGame)
	}
}

func TestBothFlagsNetToZero(t *testing.T) {
	events := []model.Event{makeEvent(t, 1, "2025-05-01", alice)}
	results := []model.Result{
		makeResult(1, catan, 1, model.PlayerResult{PlayerID: alice, IsWinner: true, IsLoser: true}),
	}
	snap := makeSnapshot(t, events, results)

	data := ComputePlayerData(snap.Players, snap.Results, snap.GameByID, snap.Events)

	a := findData(t, data, alice)
	if a.Points != 0 {
		t.Fatalf("alice points = %d, want 0 when both flags are set", a.Points)
	}
	if a.Wins != 1 {
		t.Fatalf("alice wins = %d, want 1", a.Wins)
	}
}

// ---- best game tests ----

func TestBestGameRequiresThreePlays(t *testing.T) {
	events := []model.Event{
		makeEvent(t, 1, "2025-01-10", alice, bob),
		makeEvent(t, 2, "2025-02-10", alice, bob),
		makeEvent(t, 3, "2025-03-10", alice, bob),
	}
	results := []model.Result{
		makeResult(1, catan, 1, win(alice), loss(bob)),
		makeResult(2, catan, 1, win(alice), loss(bob)),
	}
	snap := makeSnapshot(t, events, results)

	data := ComputePlayerData(snap.Players, snap.Results, snap.GameByID, snap.Events)
	if bg := findData(t, data, alice).BestGame; bg != nil {
		t.Fatalf("best game after 2 plays = %+v, want nil", bg)
	}

	results = append(results, makeResult(3, catan, 1, win(alice), loss(bob)))
	snap = makeSnapshot(t, events, results)

	data = ComputePlayerData(snap.Players, snap.Results, snap.GameByID, snap.Events)
	bg := findData(t, data, alice).BestGame
	if bg == nil {
		t.Fatal("best game after 3 plays is nil")
	}
	if bg.GameID != catan || bg.Points != 6 {
		t.Fatalf("best game = %+v, want catan with 6 points", bg)
	}
}

// ---- recent form tests ----

func TestRecentFormNewestFirstWithAbsences(t *testing.T) {
	events := []model.Event{
		makeEvent(t, 1, "2025-01-01", alice, bob),
		makeEvent(t, 2, "2025-02-01", bob, cara), // alice absent
		makeEvent(t, 3, "2025-03-01", alice, bob),
	}
	results := []model.Result{
		makeResult(1, catan, 1, win(alice), loss(bob)),
		makeResult(2, ttr, 1, win(bob), loss(cara)),
		makeResult(3, catan, 1, loss(alice), win(bob)),
	}
	snap := makeSnapshot(t, events, results)

	data := ComputePlayerData(snap.Players, snap.Results, snap.GameByID, snap.Events)
	form := findData(t, data, alice).RecentForm

	if len(form) != 3 {
		t.Fatalf("form length = %d, want 3", len(form))
	}
	if form[0] == nil || *form[0] != -2 {
		t.Fatalf("form[0] = %v, want -2 (newest event)", form[0])
	}
	if form[1] != nil {
		t.Fatalf("form[1] = %v, want nil for the skipped night", *form[1])
	}
	if form[2] == nil || *form[2] != 2 {
		t.Fatalf("form[2] = %v, want +2 (oldest event)", form[2])
	}
}

func TestRecentFormWindow(t *testing.T) {
	var events []model.Event
	var results []model.Result
	dates := []string{"2025-01-01", "2025-02-01", "2025-03-01", "2025-04-01", "2025-05-01", "2025-06-01", "2025-07-01"}
	for i, date := range dates {
		id := int64(i + 1)
		events = append(events, makeEvent(t, id, date, alice, bob))
		results = append(results, makeResult(id, ttr, 1, win(alice), loss(bob)))
	}
	snap := makeSnapshot(t, events, results)

	data := ComputePlayerData(snap.Players, snap.Results, snap.GameByID, snap.Events)
	form := findData(t, data, alice).RecentForm
	if len(form) != RecentFormEvents {
		t.Fatalf("form length = %d, want %d", len(form), RecentFormEvents)
	}
}

// ---- profile aggregate tests ----

func TestAggregatePlayerStats(t *testing.T) {
	events := []model.Event{
		makeEvent(t, 1, "2025-01-01", alice, bob),
		makeEvent(t, 2, "2025-02-01", alice, bob),
	}
	results := []model.Result{
		makeResult(1, catan, 1, model.PlayerResult{PlayerID: alice, Rank: intPtr(1), IsWinner: true}, loss(bob)),
		makeResult(1, ttr, 2, model.PlayerResult{PlayerID: alice, Rank: intPtr(2), IsLoser: true}, win(bob)),
		makeResult(2, catan, 1, model.PlayerResult{PlayerID: alice, Rank: intPtr(1), IsWinner: true}, loss(bob)),
	}
	snap := makeSnapshot(t, events, results)

	sorted := SortResultsChronologically(snap.Results, snap.EventByID)
	entries := PlayerEntries(sorted, alice)
	aggs := AggregatePlayerStats(alice, entries, snap.GameByID, snap.Events, snap.Results)

	if len(aggs.GameWinRates) != 2 {
		t.Fatalf("game rows = %d, want 2", len(aggs.GameWinRates))
	}
	if aggs.MostPlayed == nil || aggs.MostPlayed.GameID != catan {
		t.Fatalf("most played = %+v, want catan", aggs.MostPlayed)
	}
	if aggs.MostPoints == nil || aggs.MostPoints.Points != 4 {
		t.Fatalf("most points = %+v, want catan with 4 points", aggs.MostPoints)
	}

	wantRanks := []model.RankCount{{Rank: 1, Count: 2}, {Rank: 2, Count: 1}}
	if len(aggs.RankCounts) != len(wantRanks) {
		t.Fatalf("rank counts = %+v, want %+v", aggs.RankCounts, wantRanks)
	}
	for i, want := range wantRanks {
		if aggs.RankCounts[i] != want {
			t.Fatalf("rank counts[%d] = %+v, want %+v", i, aggs.RankCounts[i], want)
		}
	}

	// Cumulative win rate after entries W, L, W: 100, 50, 66.7.
	if len(aggs.WinRateSeries) != 3 {
		t.Fatalf("win rate series length = %d, want 3", len(aggs.WinRateSeries))
	}
	if aggs.WinRateSeries[0].Value != 100 || aggs.WinRateSeries[1].Value != 50 {
		t.Fatalf("win rate series = %+v", aggs.WinRateSeries)
	}
}

func intPtr(v int) *int { return &v }
