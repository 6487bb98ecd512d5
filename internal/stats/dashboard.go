package stats

import (
	"time"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

// Dashboard composes the home summary from the other aggregators with fixed
// defaults: the current-year board-game leaderboard top rows, the latest
// events, the most recent event's top scorer(s), the current longest
// drought, and the single most storied rivalry. Every card degrades to an
// empty slice or nil pointer when there is no data; no card can fail.
func Dashboard(snap *Snapshot, now time.Time) model.DashboardSummary {
	year := now.Year()

	summary := model.DashboardSummary{}

	board := LeaderboardByTypeAndYear(snap, model.GameTypeBoard, &year)
	if len(board) > DashboardLeaderboardLimit {
		board = board[:DashboardLeaderboardLimit]
	}
	summary.Leaderboard = board

	latest := SortEventsByDate(snap.Events, true)
	if len(latest) > RecentEventsLimit {
		latest = latest[:RecentEventsLimit]
	}
	summary.LatestEvents = latest

	if len(latest) > 0 {
		summary.TopScorers = EventTopScorers(snap, latest[0].ID)
	}

	summary.Drought = LongestDrought(snap)

	if top := TopRivalries(snap.Results, snap.PlayerByID, 1); len(top) > 0 {
		summary.TopRivalry = &top[0]
	}

	return summary
}
