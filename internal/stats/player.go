package stats

import (
	"sort"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

// PlayerEntries extracts one entry per result the player participated in.
// Feed results through SortResultsChronologically first when order matters.
func PlayerEntries(results []model.Result, playerID int64) []model.PlayerEntry {
	var entries []model.PlayerEntry
	for _, r := range results {
		pr := r.Entry(playerID)
		if pr == nil {
			continue
		}
		var opponents []int64
		for _, other := range r.PlayerResults {
			if other.PlayerID != playerID {
				opponents = append(opponents, other.PlayerID)
			}
		}
		entries = append(entries, model.PlayerEntry{
			ResultID:  r.ID,
			EventID:   r.EventID,
			GameID:    r.GameID,
			Rank:      pr.Rank,
			IsWinner:  pr.IsWinner,
			IsLoser:   pr.IsLoser,
			Opponents: opponents,
		})
	}
	return entries
}

// entryPoints returns the net point adjustment of one entry: +points for a
// win, -points for a loss. Both flags set yields zero; that input is
// logically disallowed but deliberately not rejected here.
func entryPoints(e model.PlayerEntry, game model.Game) int {
	points := 0
	if e.IsWinner {
		points += game.Points
	}
	if e.IsLoser {
		points -= game.Points
	}
	return points
}

// ComputePlayerData folds the given result set into per-player derived stats
// and merges them onto the player records. Pass a pre-filtered result slice
// to scope the totals; events are only consulted for recent-form recency.
// Entries whose game cannot be resolved are skipped.
func ComputePlayerData(
	players []model.Player,
	results []model.Result,
	gameByID map[int64]model.Game,
	events []model.Event,
) []model.PlayerWithData {
	recentEvents := SortEventsByDate(events, true)
	if len(recentEvents) > RecentFormEvents {
		recentEvents = recentEvents[:RecentFormEvents]
	}

	out := make([]model.PlayerWithData, 0, len(players))
	for _, player := range players {
		data := model.PlayerData{PlayerID: player.ID}

		entries := PlayerEntries(results, player.ID)
		for _, e := range entries {
			game, ok := gameByID[e.GameID]
			if !ok {
				continue
			}
			data.Games++
			if e.IsWinner {
				data.Wins++
			}
			data.Points += entryPoints(e, game)
		}
		if data.Games > 0 {
			data.WinRate = float64(data.Wins) / float64(data.Games)
		}
		data.RecentForm = recentForm(player.ID, recentEvents, results, gameByID)
		data.BestGame = bestGame(entries, gameByID)

		out = append(out, model.PlayerWithData{Player: player, Data: data})
	}
	return out
}

// recentForm returns the player's net points for each of the given events,
// newest first. A nil slot marks an event the player did not attend.
func recentForm(playerID int64, recentEvents []model.Event, results []model.Result, gameByID map[int64]model.Game) []*int {
	form := make([]*int, 0, len(recentEvents))
	for _, event := range recentEvents {
		points := 0
		attended := false
		for _, r := range results {
			if r.EventID != event.ID {
				continue
			}
			game, ok := gameByID[r.GameID]
			if !ok {
				continue
			}
			pr := r.Entry(playerID)
			if pr == nil {
				continue
			}
			attended = true
			if pr.IsWinner {
				points += game.Points
			}
			if pr.IsLoser {
				points -= game.Points
			}
		}
		if attended {
			p := points
			form = append(form, &p)
		} else {
			form = append(form, nil)
		}
	}
	return form
}

// bestGame picks the game with the highest win rate among games the player
// has played at least MinGamesForBestGame times, more plays breaking ties.
// Returns nil when no game meets the threshold.
func bestGame(entries []model.PlayerEntry, gameByID map[int64]model.Game) *model.BestGame {
	rows := buildGameWinRates(entries, gameByID)
	best := findBestGame(rows)
	if best == nil {
		return nil
	}
	game := gameByID[best.GameID]
	return &model.BestGame{
		GameID:   best.GameID,
		GameName: best.Name,
		GameType: game.Type,
		Points:   best.Points,
	}
}

// buildGameWinRates folds entries into one row per game. Entries whose game
// cannot be resolved are skipped.
func buildGameWinRates(entries []model.PlayerEntry, gameByID map[int64]model.Game) []model.GameWinRateRow {
	type accum struct {
		games int
		wins  int
	}
	byGame := make(map[int64]*accum)
	var order []int64
	for _, e := range entries {
		if _, ok := gameByID[e.GameID]; !ok {
			continue
		}
		acc := byGame[e.GameID]
		if acc == nil {
			acc = &accum{}
			byGame[e.GameID] = acc
			order = append(order, e.GameID)
		}
		acc.games++
		if e.IsWinner {
			acc.wins++
		}
	}

	rows := make([]model.GameWinRateRow, 0, len(order))
	for _, gameID := range order {
		acc := byGame[gameID]
		game := gameByID[gameID]
		wr := 0.0
		if acc.games > 0 {
			wr = float64(acc.wins) / float64(acc.games)
		}
		rows = append(rows, model.GameWinRateRow{
			GameID:  gameID,
			Name:    game.Name,
			Color:   game.Color,
			Games:   acc.games,
			Wins:    acc.wins,
			WinRate: wr,
			Points:  game.Points * acc.wins,
		})
	}
	return rows
}

func findBestGame(rows []model.GameWinRateRow) *model.GameWinRateRow {
	var qualified []model.GameWinRateRow
	for _, r := range rows {
		if r.Games >= MinGamesForBestGame {
			qualified = append(qualified, r)
		}
	}
	if len(qualified) == 0 {
		return nil
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		if qualified[i].WinRate != qualified[j].WinRate {
			return qualified[i].WinRate > qualified[j].WinRate
		}
		return qualified[i].Games > qualified[j].Games
	})
	return &qualified[0]
}

func findMostPlayed(rows []model.GameWinRateRow) *model.GameWinRateRow {
	if len(rows) == 0 {
		return nil
	}
	sorted := make([]model.GameWinRateRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Games != sorted[j].Games {
			return sorted[i].Games > sorted[j].Games
		}
		return sorted[i].WinRate > sorted[j].WinRate
	})
	return &sorted[0]
}

func findMostPoints(rows []model.GameWinRateRow) *model.GameWinRateRow {
	if len(rows) == 0 {
		return nil
	}
	sorted := make([]model.GameWinRateRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].WinRate > sorted[j].WinRate
	})
	return &sorted[0]
}

// buildRankCounts tallies finishing positions across entries, ascending by
// rank. Entries without a rank are ignored.
func buildRankCounts(entries []model.PlayerEntry) []model.RankCount {
	ranks := make(map[int]int)
	for _, e := range entries {
		if e.Rank != nil && *e.Rank > 0 {
			ranks[*e.Rank]++
		}
	}
	out := make([]model.RankCount, 0, len(ranks))
	for rank, count := range ranks {
		out = append(out, model.RankCount{Rank: rank, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}

// buildWinRateSeries builds the cumulative win-rate series over chronological
// entries, keeping the trailing window.
func buildWinRateSeries(entries []model.PlayerEntry, window int) []model.SeriesPoint {
	series := make([]model.SeriesPoint, 0, len(entries))
	cumWins := 0
	for i, e := range entries {
		if e.IsWinner {
			cumWins++
		}
		series = append(series, model.SeriesPoint{
			X:     i + 1,
			Value: float64(cumWins) / float64(i+1) * 100,
		})
	}
	if len(series) > window {
		series = series[len(series)-window:]
	}
	return series
}

// buildRecentFormSeries turns the newest-first recent form into an
// oldest-first chart series, keeping only attended events.
func buildRecentFormSeries(form []*int) []model.SeriesPoint {
	var series []model.SeriesPoint
	x := 1
	for i := len(form) - 1; i >= 0; i-- {
		if form[i] == nil {
			continue
		}
		series = append(series, model.SeriesPoint{X: x, Value: float64(*form[i])})
		x++
	}
	return series
}

// AggregatePlayerStats builds the profile-page stat block for one player.
// Entries must be chronological.
func AggregatePlayerStats(
	playerID int64,
	entries []model.PlayerEntry,
	gameByID map[int64]model.Game,
	events []model.Event,
	results []model.Result,
) model.PlayerAggregates {
	rows := buildGameWinRates(entries, gameByID)

	recentEvents := SortEventsByDate(events, true)
	if len(recentEvents) > RecentFormEvents {
		recentEvents = recentEvents[:RecentFormEvents]
	}
	form := recentForm(playerID, recentEvents, results, gameByID)

	return model.PlayerAggregates{
		BestGame:         findBestGame(rows),
		MostPlayed:       findMostPlayed(rows),
		MostPoints:       findMostPoints(rows),
		GameWinRates:     rows,
		RankCounts:       buildRankCounts(entries),
		WinRateSeries:    buildWinRateSeries(entries, RecentGamesWindow),
		RecentFormSeries: buildRecentFormSeries(form),
	}
}
