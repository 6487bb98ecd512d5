package stats

import (
	"sort"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

// MostPlayedGames counts results per game and returns the top rows,
// descending by play count. Unresolvable games are skipped.
func MostPlayedGames(results []model.Result, gameByID map[int64]model.Game, limit int) []model.GamePlayCount {
	plays := make(map[int64]int)
	for _, r := range results {
		if _, ok := gameByID[r.GameID]; ok {
			plays[r.GameID]++
		}
	}
	out := make([]model.GamePlayCount, 0, len(plays))
	for gameID, count := range plays {
		out = append(out, model.GamePlayCount{Game: gameByID[gameID], Plays: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Plays != out[j].Plays {
			return out[i].Plays > out[j].Plays
		}
		return out[i].Game.ID < out[j].Game.ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// streakLeaders ranks players by a streak value extracted per player.
// Results must be chronological. Players with a zero streak are omitted.
func streakLeaders(snap *Snapshot, sorted []model.Result, pick func(model.PlayerStreaks) int, limit int) []model.StreakLeader {
	var leaders []model.StreakLeader
	for _, player := range snap.Players {
		streaks := ComputeStreaks(PlayerEntries(sorted, player.ID))
		if streak := pick(streaks); streak > 0 {
			leaders = append(leaders, model.StreakLeader{Player: player, Streak: streak})
		}
	}
	sort.SliceStable(leaders, func(i, j int) bool {
		if leaders[i].Streak != leaders[j].Streak {
			return leaders[i].Streak > leaders[j].Streak
		}
		return leaders[i].Player.ID < leaders[j].Player.ID
	})
	if limit > 0 && len(leaders) > limit {
		leaders = leaders[:limit]
	}
	return leaders
}

// WinStreakLeaders ranks players by their longest run of consecutive wins.
func WinStreakLeaders(snap *Snapshot, limit int) []model.StreakLeader {
	sorted := SortResultsChronologically(snap.Results, snap.EventByID)
	return streakLeaders(snap, sorted, func(s model.PlayerStreaks) int { return s.LongestWinStreak }, limit)
}

// LossStreakLeaders ranks players by their longest run of consecutive losses.
func LossStreakLeaders(snap *Snapshot, limit int) []model.StreakLeader {
	sorted := SortResultsChronologically(snap.Results, snap.EventByID)
	return streakLeaders(snap, sorted, func(s model.PlayerStreaks) int { return s.LongestLossStreak }, limit)
}

type pairKey struct {
	a, b int64 // a < b
}

// Rivalries accumulates head-to-head records for every unordered pair of
// players that shared at least one result. A win counts for a player only
// when the other was present and not simultaneously a winner; ties and
// no-decisions count for neither side. Pairs are keyed with the lower
// player ID first.
func Rivalries(results []model.Result, playerByID map[int64]model.Player) []model.Rivalry {
	type accum struct {
		winsA, winsB, games int
	}
	pairs := make(map[pairKey]*accum)

	for _, r := range results {
		for i := 0; i < len(r.PlayerResults); i++ {
			for j := i + 1; j < len(r.PlayerResults); j++ {
				pa, pb := r.PlayerResults[i], r.PlayerResults[j]
				if pa.PlayerID == pb.PlayerID {
					continue
				}
				if _, ok := playerByID[pa.PlayerID]; !ok {
					continue
				}
				if _, ok := playerByID[pb.PlayerID]; !ok {
					continue
				}
				if pa.PlayerID > pb.PlayerID {
					pa, pb = pb, pa
				}
				key := pairKey{pa.PlayerID, pb.PlayerID}
				acc := pairs[key]
				if acc == nil {
					acc = &accum{}
					pairs[key] = acc
				}
				acc.games++
				if pa.IsWinner && !pb.IsWinner {
					acc.winsA++
				}
				if pb.IsWinner && !pa.IsWinner {
					acc.winsB++
				}
			}
		}
	}

	out := make([]model.Rivalry, 0, len(pairs))
	for key, acc := range pairs {
		out = append(out, model.Rivalry{
			PlayerA: playerByID[key.a],
			PlayerB: playerByID[key.b],
			WinsA:   acc.winsA,
			WinsB:   acc.winsB,
			Games:   acc.games,
		})
	}
	// Deterministic base order before any ranking.
	sort.Slice(out, func(i, j int) bool {
		if out[i].PlayerA.ID != out[j].PlayerA.ID {
			return out[i].PlayerA.ID < out[j].PlayerA.ID
		}
		return out[i].PlayerB.ID < out[j].PlayerB.ID
	})
	return out
}

// TopRivalries returns the most storied pairs: most shared games first.
func TopRivalries(results []model.Result, playerByID map[int64]model.Player, limit int) []model.Rivalry {
	rivalries := Rivalries(results, playerByID)
	sort.SliceStable(rivalries, func(i, j int) bool {
		return rivalries[i].Games > rivalries[j].Games
	})
	if limit > 0 && len(rivalries) > limit {
		rivalries = rivalries[:limit]
	}
	return rivalries
}

// LopsidedRivalries returns the most one-sided pairs by absolute win
// differential. Pairs below the minimum shared-game floor are dropped so a
// 1-game sample cannot top the list.
func LopsidedRivalries(results []model.Result, playerByID map[int64]model.Player, limit int) []model.Rivalry {
	var qualified []model.Rivalry
	for _, r := range Rivalries(results, playerByID) {
		if r.Games >= MinGamesForLopsidedRivalry {
			qualified = append(qualified, r)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		if qualified[i].Differential() != qualified[j].Differential() {
			return qualified[i].Differential() > qualified[j].Differential()
		}
		return qualified[i].Games > qualified[j].Games
	})
	if limit > 0 && len(qualified) > limit {
		qualified = qualified[:limit]
	}
	return qualified
}

// PlayerRivalries returns one player's head-to-head records, most shared
// games first, with the player normalised to the A side.
func PlayerRivalries(results []model.Result, playerByID map[int64]model.Player, playerID int64, limit int) []model.Rivalry {
	var mine []model.Rivalry
	for _, r := range Rivalries(results, playerByID) {
		switch playerID {
		case r.PlayerA.ID:
			mine = append(mine, r)
		case r.PlayerB.ID:
			mine = append(mine, model.Rivalry{
				PlayerA: r.PlayerB,
				PlayerB: r.PlayerA,
				WinsA:   r.WinsB,
				WinsB:   r.WinsA,
				Games:   r.Games,
			})
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Games > mine[j].Games
	})
	if limit > 0 && len(mine) > limit {
		mine = mine[:limit]
	}
	return mine
}

// LongestDrought finds the player with the most games played since their
// most recent win, counting backward from their latest entry. A player who
// never won carries a drought equal to their full game count. Ties resolve
// to the lowest player ID; the source never specified a rule, so a stable
// one is used. Returns nil when nobody has played.
func LongestDrought(snap *Snapshot) *model.Drought {
	sorted := SortResultsChronologically(snap.Results, snap.EventByID)

	players := make([]model.Player, len(snap.Players))
	copy(players, snap.Players)
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	var longest *model.Drought
	for _, player := range players {
		entries := PlayerEntries(sorted, player.ID)
		if len(entries) == 0 {
			continue
		}
		drought := 0
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].IsWinner {
				break
			}
			drought++
		}
		if longest == nil || drought > longest.Games {
			longest = &model.Drought{Player: player, Games: drought}
		}
	}
	return longest
}

// PlayerWinsOverTime builds cumulative win series per player, sampled at
// each event boundary, keeping the top players by final total.
func PlayerWinsOverTime(snap *Snapshot, limit int) []model.PlayerTrend {
	events := SortEventsByDate(snap.Events, false)

	cumulative := make(map[int64]int)
	series := make(map[int64][]model.TrendPoint)
	for _, event := range events {
		for _, r := range snap.Results {
			if r.EventID != event.ID {
				continue
			}
			for _, pr := range r.PlayerResults {
				if pr.IsWinner {
					cumulative[pr.PlayerID]++
				}
			}
		}
		for playerID := range cumulative {
			series[playerID] = append(series[playerID], model.TrendPoint{
				EventID: event.ID,
				Date:    event.Date,
				Value:   cumulative[playerID],
			})
		}
	}

	var trends []model.PlayerTrend
	for playerID, points := range series {
		player, ok := snap.PlayerByID[playerID]
		if !ok {
			continue
		}
		trends = append(trends, model.PlayerTrend{Player: player, Points: points})
	}
	sort.SliceStable(trends, func(i, j int) bool {
		fi := trends[i].Points[len(trends[i].Points)-1].Value
		fj := trends[j].Points[len(trends[j].Points)-1].Value
		if fi != fj {
			return fi > fj
		}
		return trends[i].Player.ID < trends[j].Player.ID
	})
	if limit > 0 && len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}

// GameTrendsOverTime builds cumulative play-count series per game, sampled
// at each event boundary, keeping the top games by total plays.
func GameTrendsOverTime(snap *Snapshot, limit int) []model.GameTrend {
	events := SortEventsByDate(snap.Events, false)

	cumulative := make(map[int64]int)
	series := make(map[int64][]model.TrendPoint)
	for _, event := range events {
		for _, r := range snap.Results {
			if r.EventID != event.ID {
				continue
			}
			if _, ok := snap.GameByID[r.GameID]; !ok {
				continue
			}
			cumulative[r.GameID]++
		}
		for gameID := range cumulative {
			series[gameID] = append(series[gameID], model.TrendPoint{
				EventID: event.ID,
				Date:    event.Date,
				Value:   cumulative[gameID],
			})
		}
	}

	var trends []model.GameTrend
	for gameID, points := range series {
		trends = append(trends, model.GameTrend{Game: snap.GameByID[gameID], Points: points})
	}
	sort.SliceStable(trends, func(i, j int) bool {
		fi := trends[i].Points[len(trends[i].Points)-1].Value
		fj := trends[j].Points[len(trends[j].Points)-1].Value
		if fi != fj {
			return fi > fj
		}
		return trends[i].Game.ID < trends[j].Game.ID
	})
	if limit > 0 && len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}

// GameDifficulties measures how contested each game is: distinct winners
// over plays. Sorted most competitive first.
func GameDifficulties(results []model.Result, gameByID map[int64]model.Game, limit int) []model.GameDifficulty {
	plays := make(map[int64]int)
	winners := make(map[int64]map[int64]struct{})
	for _, r := range results {
		if _, ok := gameByID[r.GameID]; !ok {
			continue
		}
		plays[r.GameID]++
		for _, pr := range r.PlayerResults {
			if !pr.IsWinner {
				continue
			}
			if winners[r.GameID] == nil {
				winners[r.GameID] = make(map[int64]struct{})
			}
			winners[r.GameID][pr.PlayerID] = struct{}{}
		}
	}

	out := make([]model.GameDifficulty, 0, len(plays))
	for gameID, count := range plays {
		distinct := len(winners[gameID])
		comp := 0.0
		if count > 0 {
			comp = float64(distinct) / float64(count)
		}
		out = append(out, model.GameDifficulty{
			Game:            gameByID[gameID],
			Plays:           count,
			DistinctWinners: distinct,
			Competitiveness: comp,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Competitiveness != out[j].Competitiveness {
			return out[i].Competitiveness > out[j].Competitiveness
		}
		if out[i].Plays != out[j].Plays {
			return out[i].Plays > out[j].Plays
		}
		return out[i].Game.ID < out[j].Game.ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GamePoints totals the points awarded through each game (point value times
// winning entries), descending.
func GamePoints(results []model.Result, gameByID map[int64]model.Game, limit int) []model.GamePointsTotal {
	totals := make(map[int64]int)
	for _, r := range results {
		game, ok := gameByID[r.GameID]
		if !ok {
			continue
		}
		for _, pr := range r.PlayerResults {
			if pr.IsWinner {
				totals[r.GameID] += game.Points
			}
		}
	}
	out := make([]model.GamePointsTotal, 0, len(totals))
	for gameID, points := range totals {
		out = append(out, model.GamePointsTotal{Game: gameByID[gameID], Points: points})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Game.ID < out[j].Game.ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
