package stats

import (
	"testing"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

func withData(p model.Player, points, wins, games int) model.PlayerWithData {
	wr := 0.0
	if games > 0 {
		wr = float64(wins) / float64(games)
	}
	return model.PlayerWithData{
		Player: p,
		Data:   model.PlayerData{PlayerID: p.ID, Points: points, Wins: wins, Games: games, WinRate: wr},
	}
}

func TestSortLeaderboardOrder(t *testing.T) {
	board := SortLeaderboard([]model.PlayerWithData{
		withData(makePlayer(bob, "Bob"), 4, 2, 4),
		withData(makePlayer(alice, "Alice"), 6, 1, 4),
		withData(makePlayer(cara, "Cara"), 4, 2, 3),  // same points/wins as bob, better rate
		withData(makePlayer(dave, "Dave"), 4, 1, 4),  // same points, fewer wins
	})

	want := []int64{alice, cara, bob, dave}
	for i, id := range want {
		if board[i].ID != id {
			t.Fatalf("board[%d] = %d (%s), want %d", i, board[i].ID, board[i].Name(), id)
		}
	}
}

func TestSortLeaderboardNameBreaksFullTies(t *testing.T) {
	board := SortLeaderboard([]model.PlayerWithData{
		withData(makePlayer(bob, "Zed"), 2, 1, 2),
		withData(makePlayer(alice, "Amy"), 2, 1, 2),
	})
	if board[0].ID != alice {
		t.Fatalf("tied rows not ordered by name: got %s first", board[0].Name())
	}
}

func TestLeaderboardExcludesHiddenAndIdlePlayers(t *testing.T) {
	hidden := makePlayer(dave, "Dave")
	hidden.ShowOnLeaderboard = false

	board := Leaderboard([]model.PlayerWithData{
		withData(makePlayer(alice, "Alice"), 2, 1, 1),
		withData(makePlayer(bob, "Bob"), 0, 0, 0), // never played
		withData(hidden, 10, 5, 5),
	})

	if len(board) != 1 || board[0].ID != alice {
		t.Fatalf("board = %+v, want only alice", board)
	}
}

// ---- selection tests ----

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection("board-2025")
	if err != nil {
		t.Fatalf("parse board-2025: %v", err)
	}
	if sel.GameType != model.GameTypeBoard || sel.Year == nil || *sel.Year != 2025 {
		t.Fatalf("sel = %+v", sel)
	}
	if sel.Value() != "board-2025" {
		t.Fatalf("round trip = %q", sel.Value())
	}

	sel, err = ParseSelection("video-all")
	if err != nil {
		t.Fatalf("parse video-all: %v", err)
	}
	if sel.GameType != model.GameTypeVideo || sel.Year != nil {
		t.Fatalf("sel = %+v", sel)
	}

	for _, bad := range []string{"", "board", "chess-2025", "board-20x5"} {
		if _, err := ParseSelection(bad); err == nil {
			t.Fatalf("ParseSelection(%q) accepted invalid input", bad)
		}
	}
}

// ---- scoped pipeline tests ----

func scopedSnapshot(t *testing.T) *Snapshot {
	events := []model.Event{
		makeEvent(t, 1, "2024-06-01", alice, bob),
		makeEvent(t, 2, "2025-03-01", alice, bob),
	}
	results := []model.Result{
		makeResult(1, catan, 1, win(alice), loss(bob)),
		makeResult(2, catan, 1, loss(alice), win(bob)),
		makeResult(2, kart, 2, win(alice), loss(bob)),
	}
	return makeSnapshot(t, events, results)
}

func TestLeaderboardByTypeAndYearScoping(t *testing.T) {
	snap := scopedSnapshot(t)

	year := 2025
	board := LeaderboardByTypeAndYear(snap, model.GameTypeBoard, &year)
	if len(board) != 2 {
		t.Fatalf("board size = %d, want 2", len(board))
	}
	if board[0].ID != bob || board[0].Data.Points != 2 {
		t.Fatalf("board[0] = %+v, want bob with 2 points", board[0])
	}
	if board[1].ID != alice || board[1].Data.Points != -2 {
		t.Fatalf("board[1] = %+v, want alice with -2 points", board[1])
	}

	video := LeaderboardByTypeAndYear(snap, model.GameTypeVideo, &year)
	if video[0].ID != alice || video[0].Data.Points != 2 {
		t.Fatalf("video board[0] = %+v, want alice with 2 points", video[0])
	}

	// All years, board games: everything cancels out, name breaks the tie.
	all := LeaderboardByTypeAndYear(snap, model.GameTypeBoard, nil)
	if all[0].ID != alice || all[0].Data.Points != 0 || all[1].Data.Points != 0 {
		t.Fatalf("all-years board = %+v", all)
	}
}

func TestPlayerChampionships(t *testing.T) {
	snap := scopedSnapshot(t)
	now := mustDate(t, "2025-08-31")

	champs := PlayerChampionships(snap, model.GameTypeBoard, now)
	if years := champs[alice]; len(years) != 1 || years[0] != 2024 {
		t.Fatalf("alice championships = %v, want [2024]", years)
	}
	// 2025 is still running: bob leads it but holds no title yet.
	if _, ok := champs[bob]; ok {
		t.Fatalf("bob has a championship for an unfinished year: %v", champs[bob])
	}
}

func TestLeaderboardOptions(t *testing.T) {
	snap := scopedSnapshot(t)
	now := mustDate(t, "2025-08-31")

	opts := LeaderboardOptions(snap, now)
	values := make(map[string]model.LeaderboardOption, len(opts))
	for _, o := range opts {
		values[o.Value] = o
	}

	if _, ok := values["board-2024"]; !ok {
		t.Fatalf("missing board-2024 option, got %+v", opts)
	}
	if !values["board-2024"].IsChampionship {
		t.Fatal("board-2024 should be a championship board")
	}
	if values["board-2025"].IsChampionship {
		t.Fatal("board-2025 is the running year, not a championship")
	}
	if leader := values["video-2025"].Leader; leader == nil || leader.ID != alice {
		t.Fatalf("video-2025 leader = %+v, want alice", leader)
	}
	// 2024 had no video results, so no such option.
	if _, ok := values["video-2024"]; ok {
		t.Fatal("video-2024 option exists without any video results")
	}
}

func TestLeaderboardOptionsFallbackWhenEmpty(t *testing.T) {
	snap := makeSnapshot(t, nil, nil)
	now := mustDate(t, "2025-08-31")

	opts := LeaderboardOptions(snap, now)
	if len(opts) != 1 {
		t.Fatalf("options = %+v, want single fallback", opts)
	}
	if opts[0].Value != "board-2025" || opts[0].Leader != nil {
		t.Fatalf("fallback option = %+v", opts[0])
	}
}

func TestLeaderboardFeaturedStats(t *testing.T) {
	board := SortLeaderboard([]model.PlayerWithData{
		withData(makePlayer(alice, "Alice"), 8, 4, 6),
		withData(makePlayer(bob, "Bob"), 6, 5, 10),
		withData(makePlayer(cara, "Cara"), 2, 1, 1), // 100% rate but under the sample floor
	})

	fs := LeaderboardFeaturedStats(board)
	if fs.MostPoints == nil || fs.MostPoints.ID != alice {
		t.Fatalf("most points = %+v, want alice", fs.MostPoints)
	}
	if fs.MostWins == nil || fs.MostWins.ID != bob {
		t.Fatalf("most wins = %+v, want bob", fs.MostWins)
	}
	if fs.MostGames == nil || fs.MostGames.ID != bob {
		t.Fatalf("most games = %+v, want bob", fs.MostGames)
	}
	if fs.BestWinRate == nil || fs.BestWinRate.ID != alice {
		t.Fatalf("best win rate = %+v, want alice (cara lacks the sample)", fs.BestWinRate)
	}
}

func TestFeaturedStatsEmptyBoard(t *testing.T) {
	fs := LeaderboardFeaturedStats(nil)
	if fs.MostPoints != nil || fs.MostWins != nil || fs.BestWinRate != nil || fs.MostGames != nil {
		t.Fatalf("featured stats from empty board = %+v", fs)
	}
}
