package model

import "time"

// GameType classifies a game for filtering and leaderboard scoping.
type GameType string

const (
	GameTypeBoard GameType = "board"
	GameTypeVideo GameType = "video"
)

func (t GameType) Valid() bool {
	return t == GameTypeBoard || t == GameTypeVideo
}

// ---- Stored records ----

// Player is a game-night participant. Identity is immutable; name and
// visibility fields are editable by an administrator.
type Player struct {
	ID                int64  `json:"id"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	PreferredName     string `json:"preferredName,omitempty"`
	PictureURL        string `json:"pictureUrl,omitempty"`
	Color             string `json:"color,omitempty"`
	ShowOnLeaderboard bool   `json:"showOnLeaderboard"`
	LinkedUserID      string `json:"linkedUserId,omitempty"`
}

// Name returns the preferred name when set, otherwise the first name.
func (p Player) Name() string {
	if p.PreferredName != "" {
		return p.PreferredName
	}
	return p.FirstName
}

func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Game is a classification key for filtering and the point-value source for
// scoring. Points are in the 1–3 range.
type Game struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Points int      `json:"points"`
	Type   GameType `json:"type"`
	Color  string   `json:"color,omitempty"`
}

// Event is a single game night: a date, a roster of players, and the games
// played that night.
type Event struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
	PlayerIDs []int64   `json:"playerIds"`
	GameIDs   []int64   `json:"gameIds"`
	Notes     string    `json:"notes,omitempty"`
}

// HasPlayer reports whether the player is on the event roster.
func (e Event) HasPlayer(playerID int64) bool {
	for _, id := range e.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// HasGame reports whether the game is on the event's game list.
func (e Event) HasGame(gameID int64) bool {
	for _, id := range e.GameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}

// PlayerResult is one player's outcome within a result. Rank is nil when the
// game has no meaningful ranking. A player may be neither winner nor loser
// (break-even participation).
type PlayerResult struct {
	PlayerID int64 `json:"playerId"`
	Rank     *int  `json:"rank"`
	IsWinner bool  `json:"isWinner"`
	IsLoser  bool  `json:"isLoser"`
}

// Result is the outcome record for one game played within an event. Order is
// the chronological position within the event, unique per event; it breaks
// ties between results of the same night.
type Result struct {
	ID            int64          `json:"id"`
	EventID       int64          `json:"eventId"`
	GameID        int64          `json:"gameId"`
	Order         int            `json:"order"`
	Notes         string         `json:"notes,omitempty"`
	PlayerResults []PlayerResult `json:"playerResults"`
}

// Entry returns the PlayerResult for the given player, or nil if the player
// did not play this result.
func (r Result) Entry(playerID int64) *PlayerResult {
	for i := range r.PlayerResults {
		if r.PlayerResults[i].PlayerID == playerID {
			return &r.PlayerResults[i]
		}
	}
	return nil
}

// ---- Derived view-models (recomputed, never persisted) ----

// BestGame identifies a player's strongest game and the points earned in it.
type BestGame struct {
	GameID   int64    `json:"gameId"`
	GameName string   `json:"gameName"`
	GameType GameType `json:"gameType"`
	Points   int      `json:"points"`
}

// PlayerData is the per-player fold over a result set. RecentForm holds net
// points for each of the last N events, newest first; nil marks an event the
// player did not attend.
type PlayerData struct {
	PlayerID   int64     `json:"playerId"`
	Points     int       `json:"points"`
	Wins       int       `json:"wins"`
	Games      int       `json:"games"`
	WinRate    float64   `json:"winRate"`
	RecentForm []*int    `json:"recentForm"`
	BestGame   *BestGame `json:"bestGame"`
}

// WinRatePercent returns the win rate as a 0–100 percentage.
func (d PlayerData) WinRatePercent() float64 {
	return d.WinRate * 100
}

// PlayerWithData pairs a player record with its derived stats.
type PlayerWithData struct {
	Player
	Data PlayerData `json:"data"`
}

// PlayerEntry is one participation record extracted for a single player.
// Entries are chronological when produced from sorted results.
type PlayerEntry struct {
	ResultID  int64
	EventID   int64
	GameID    int64
	Rank      *int
	IsWinner  bool
	IsLoser   bool
	Opponents []int64
}

// Decisive reports whether the entry records a win or a loss.
func (e PlayerEntry) Decisive() bool {
	return e.IsWinner || e.IsLoser
}

// GameWinRateRow is a per-game breakdown line for one player.
type GameWinRateRow struct {
	GameID  int64   `json:"gameId"`
	Name    string  `json:"name"`
	Color   string  `json:"color,omitempty"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
	Points  int     `json:"points"`
}

// RankCount is the number of times a player finished at a given rank.
type RankCount struct {
	Rank  int `json:"rank"`
	Count int `json:"count"`
}

// SeriesPoint is one sample of a profile chart series.
type SeriesPoint struct {
	X     int     `json:"x"`
	Value float64 `json:"value"`
}

// PlayerAggregates is the full profile-page stat block for one player.
type PlayerAggregates struct {
	BestGame         *GameWinRateRow  `json:"bestGame"`
	MostPlayed       *GameWinRateRow  `json:"mostPlayed"`
	MostPoints       *GameWinRateRow  `json:"mostPoints"`
	GameWinRates     []GameWinRateRow `json:"gameWinRates"`
	RankCounts       []RankCount      `json:"rankCounts"`
	WinRateSeries    []SeriesPoint    `json:"winRateSeries"`
	RecentFormSeries []SeriesPoint    `json:"recentFormSeries"`
}

// PlayerStreaks holds the longest win and loss runs for one player.
type PlayerStreaks struct {
	LongestWinStreak  int `json:"longestWinStreak"`
	LongestLossStreak int `json:"longestLossStreak"`
}

// StreakLeader is one row of the win/loss streak leaderboards.
type StreakLeader struct {
	Player Player `json:"player"`
	Streak int    `json:"streak"`
}

// Rivalry is the aggregated head-to-head record for an unordered player
// pair. Wins count only exclusive wins: A won a result in which B played and
// did not also win. Ties and no-decisions count toward neither side.
type Rivalry struct {
	PlayerA Player `json:"playerA"`
	PlayerB Player `json:"playerB"`
	WinsA   int    `json:"winsA"`
	WinsB   int    `json:"winsB"`
	Games   int    `json:"games"`
}

// Differential returns the absolute win-count gap.
func (r Rivalry) Differential() int {
	d := r.WinsA - r.WinsB
	if d < 0 {
		d = -d
	}
	return d
}

// Drought is a player's dry spell: games played since their most recent win.
type Drought struct {
	Player Player `json:"player"`
	Games  int    `json:"games"`
}

// GamePlayCount is one row of the most-played games ranking.
type GamePlayCount struct {
	Game  Game `json:"game"`
	Plays int  `json:"plays"`
}

// GameDifficulty measures how contested a game is: the share of plays won by
// distinct players (1.0 = a different winner every play).
type GameDifficulty struct {
	Game            Game    `json:"game"`
	Plays           int     `json:"plays"`
	DistinctWinners int     `json:"distinctWinners"`
	Competitiveness float64 `json:"competitiveness"`
}

// GamePointsTotal is the total points awarded through one game.
type GamePointsTotal struct {
	Game   Game `json:"game"`
	Points int  `json:"points"`
}

// TrendPoint is one cumulative sample, taken at an event boundary.
type TrendPoint struct {
	EventID int64     `json:"eventId"`
	Date    time.Time `json:"date"`
	Value   int       `json:"value"`
}

// PlayerTrend is a cumulative per-player series across events.
type PlayerTrend struct {
	Player Player       `json:"player"`
	Points []TrendPoint `json:"points"`
}

// GameTrend is a cumulative per-game series across events.
type GameTrend struct {
	Game   Game         `json:"game"`
	Points []TrendPoint `json:"points"`
}

// EventPlayerOutcome is one player's outcome in one result of an event.
type EventPlayerOutcome struct {
	ResultID int64  `json:"resultId"`
	GameID   int64  `json:"gameId"`
	GameName string `json:"gameName"`
	Rank     *int   `json:"rank"`
	IsWinner bool   `json:"isWinner"`
	IsLoser  bool   `json:"isLoser"`
	Points   int    `json:"points"`
}

// EventPlayerStats summarises one player's night.
type EventPlayerStats struct {
	Player   Player               `json:"player"`
	Wins     int                  `json:"wins"`
	Points   int                  `json:"points"`
	Games    int                  `json:"games"`
	Outcomes []EventPlayerOutcome `json:"outcomes"`
}

// EventGameStats summarises one result (game played) of an event.
type EventGameStats struct {
	ResultID     int64    `json:"resultId"`
	Game         Game     `json:"game"`
	Order        int      `json:"order"`
	Participants int      `json:"participants"`
	Winners      []Player `json:"winners"`
}

// TopScorer is a player tied for the highest net points within one event.
type TopScorer struct {
	Player Player `json:"player"`
	Points int    `json:"points"`
}

// LeaderboardOption is one selectable leaderboard scope with its current
// leader attached.
type LeaderboardOption struct {
	GameType       GameType        `json:"gameType"`
	Year           *int            `json:"year"`
	Label          string          `json:"label"`
	Value          string          `json:"value"`
	Leader         *PlayerWithData `json:"leader"`
	IsChampionship bool            `json:"isChampionship"`
}

// FeaturedStats are the headline cards above a leaderboard.
type FeaturedStats struct {
	MostPoints  *PlayerWithData `json:"mostPoints"`
	MostWins    *PlayerWithData `json:"mostWins"`
	BestWinRate *PlayerWithData `json:"bestWinRate"`
	MostGames   *PlayerWithData `json:"mostGames"`
}

// DashboardSummary is the home page composition. Slices are empty and
// pointers nil when there is no data for a card.
type DashboardSummary struct {
	Leaderboard  []PlayerWithData `json:"leaderboard"`
	LatestEvents []Event          `json:"latestEvents"`
	TopScorers   []TopScorer      `json:"topScorers"`
	Drought      *Drought         `json:"drought"`
	TopRivalry   *Rivalry         `json:"topRivalry"`
}
