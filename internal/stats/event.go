package stats

import (
	"sort"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

// eventResults returns the event's results ordered by their within-event
// position.
func eventResults(results []model.Result, eventID int64) []model.Result {
	var out []model.Result
	for _, r := range results {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// EventPlayerStats summarises each rostered player's night: per-game
// outcomes, wins, and net points. Sorted by points desc, wins desc, then
// name. Roster entries that resolve to no player record are skipped.
func EventPlayerStats(snap *Snapshot, eventID int64) []model.EventPlayerStats {
	event, ok := snap.EventByID[eventID]
	if !ok {
		return nil
	}
	results := eventResults(snap.Results, eventID)

	var out []model.EventPlayerStats
	for _, playerID := range event.PlayerIDs {
		player, ok := snap.PlayerByID[playerID]
		if !ok {
			continue
		}
		stats := model.EventPlayerStats{Player: player}
		for _, r := range results {
			pr := r.Entry(playerID)
			if pr == nil {
				continue
			}
			game, ok := snap.GameByID[r.GameID]
			if !ok {
				continue
			}
			points := 0
			if pr.IsWinner {
				points += game.Points
			}
			if pr.IsLoser {
				points -= game.Points
			}
			stats.Games++
			if pr.IsWinner {
				stats.Wins++
			}
			stats.Points += points
			stats.Outcomes = append(stats.Outcomes, model.EventPlayerOutcome{
				ResultID: r.ID,
				GameID:   r.GameID,
				GameName: game.Name,
				Rank:     pr.Rank,
				IsWinner: pr.IsWinner,
				IsLoser:  pr.IsLoser,
				Points:   points,
			})
		}
		out = append(out, stats)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Player.Name() < b.Player.Name()
	})
	return out
}

// EventGameStats summarises each result of the event in play order:
// participant count and the winners. Unresolvable game references are
// skipped.
func EventGameStats(snap *Snapshot, eventID int64) []model.EventGameStats {
	results := eventResults(snap.Results, eventID)

	var out []model.EventGameStats
	for _, r := range results {
		game, ok := snap.GameByID[r.GameID]
		if !ok {
			continue
		}
		stats := model.EventGameStats{
			ResultID:     r.ID,
			Game:         game,
			Order:        r.Order,
			Participants: len(r.PlayerResults),
		}
		for _, pr := range r.PlayerResults {
			if !pr.IsWinner {
				continue
			}
			if player, ok := snap.PlayerByID[pr.PlayerID]; ok {
				stats.Winners = append(stats.Winners, player)
			}
		}
		out = append(out, stats)
	}
	return out
}

// EventTopScorers returns the player(s) with the maximum net points within
// a single event — several when tied. Empty when nobody played.
func EventTopScorers(snap *Snapshot, eventID int64) []model.TopScorer {
	playerStats := EventPlayerStats(snap, eventID)

	var top []model.TopScorer
	for _, ps := range playerStats {
		if ps.Games == 0 {
			continue
		}
		if len(top) == 0 || ps.Points > top[0].Points {
			top = []model.TopScorer{{Player: ps.Player, Points: ps.Points}}
		} else if ps.Points == top[0].Points {
			top = append(top, model.TopScorer{Player: ps.Player, Points: ps.Points})
		}
	}
	return top
}
