package stats

import (
	"github.com/ifancyabroad/the-nightingames/internal/model"
)

// ComputeStreaks scans a player's entries in chronological order and tracks
// the longest run of consecutive wins and of consecutive losses.
//
// A win interrupts a loss streak and vice versa. An entry that records
// neither a win nor a loss resets both counters to zero: a no-decision is
// break-even, not a continuation of either run.
func ComputeStreaks(entries []model.PlayerEntry) model.PlayerStreaks {
	var streaks model.PlayerStreaks
	winRun, lossRun := 0, 0
	for _, e := range entries {
		switch {
		case e.IsWinner:
			winRun++
			lossRun = 0
		case e.IsLoser:
			lossRun++
			winRun = 0
		default:
			winRun = 0
			lossRun = 0
		}
		if winRun > streaks.LongestWinStreak {
			streaks.LongestWinStreak = winRun
		}
		if lossRun > streaks.LongestLossStreak {
			streaks.LongestLossStreak = lossRun
		}
	}
	return streaks
}
