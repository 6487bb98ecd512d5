package stats

import (
	"github.com/ifancyabroad/the-nightingames/internal/model"
)

// Thresholds for qualifying and filtering.
const (
	// MinGamesForBestGame is the minimum plays of one game before it can be
	// a player's best game.
	MinGamesForBestGame = 3
	// MinGamesForLeaderboard is the minimum total games to appear on a
	// leaderboard.
	MinGamesForLeaderboard = 1
	// MinGamesForWinRate is the minimum games before a win rate qualifies
	// for featured-stat comparisons.
	MinGamesForWinRate = 3
	// MinGamesForLopsidedRivalry filters 1-game samples out of the lopsided
	// rivalry ranking.
	MinGamesForLopsidedRivalry = 3
)

// Display limits.
const (
	RecentFormEvents          = 5
	RecentGamesWindow         = 20
	TopGamesLimit             = 8
	TopStreaksLimit           = 5
	TopRivalriesLimit         = 5
	TopTrendsLimit            = 8
	RecentEventsLimit         = 3
	DashboardLeaderboardLimit = 3
)

// Snapshot is an immutable view of the full dataset handed to every
// aggregator. Lookup maps are built once; aggregators treat all fields as
// read-only for the duration of a computation.
type Snapshot struct {
	Players []model.Player
	Games   []model.Game
	Events  []model.Event
	Results []model.Result

	PlayerByID map[int64]model.Player
	GameByID   map[int64]model.Game
	EventByID  map[int64]model.Event
}

// NewSnapshot builds a snapshot with its lookup maps from flat collections.
func NewSnapshot(players []model.Player, games []model.Game, events []model.Event, results []model.Result) *Snapshot {
	s := &Snapshot{
		Players:    players,
		Games:      games,
		Events:     events,
		Results:    results,
		PlayerByID: make(map[int64]model.Player, len(players)),
		GameByID:   make(map[int64]model.Game, len(games)),
		EventByID:  make(map[int64]model.Event, len(events)),
	}
	for _, p := range players {
		s.PlayerByID[p.ID] = p
	}
	for _, g := range games {
		s.GameByID[g.ID] = g
	}
	for _, e := range events {
		s.EventByID[e.ID] = e
	}
	return s
}
