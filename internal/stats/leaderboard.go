package stats

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

// SortLeaderboard orders players by points desc, then wins desc, then win
// rate desc, then display name asc, then ID asc. The final keys make the
// order a fully deterministic total order even for players tied on every
// numeric stat.
func SortLeaderboard(players []model.PlayerWithData) []model.PlayerWithData {
	out := make([]model.PlayerWithData, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Data.Points != b.Data.Points {
			return a.Data.Points > b.Data.Points
		}
		if a.Data.Wins != b.Data.Wins {
			return a.Data.Wins > b.Data.Wins
		}
		if a.Data.WinRate != b.Data.WinRate {
			return a.Data.WinRate > b.Data.WinRate
		}
		if a.Name() != b.Name() {
			return a.Name() < b.Name()
		}
		return a.ID < b.ID
	})
	return out
}

// Leaderboard filters to qualifying players (minimum games played, visible
// on the leaderboard) and sorts them.
func Leaderboard(players []model.PlayerWithData) []model.PlayerWithData {
	qualified := make([]model.PlayerWithData, 0, len(players))
	for _, p := range players {
		if p.Data.Games >= MinGamesForLeaderboard && p.ShowOnLeaderboard {
			qualified = append(qualified, p)
		}
	}
	return SortLeaderboard(qualified)
}

// LeaderboardByTypeAndYear composes the full pipeline: year filter, then
// game-type filter, then player aggregation scoped to the filtered results,
// then leaderboard sort. Filtering happens before aggregation so the point
// totals reflect only the selected scope.
func LeaderboardByTypeAndYear(snap *Snapshot, gameType model.GameType, year *int) []model.PlayerWithData {
	yearFiltered := FilterResultsByYear(snap.Results, snap.EventByID, year)
	typeFiltered := FilterByGameType(yearFiltered, snap.GameByID, gameType)
	playerData := ComputePlayerData(snap.Players, typeFiltered, snap.GameByID, snap.Events)
	return Leaderboard(playerData)
}

// Selection is a parsed leaderboard scope. A nil Year means all years.
type Selection struct {
	GameType model.GameType
	Year     *int
}

// Value renders the selection back to its string form ("board-2025",
// "video-all").
func (s Selection) Value() string {
	if s.Year == nil {
		return fmt.Sprintf("%s-all", s.GameType)
	}
	return fmt.Sprintf("%s-%d", s.GameType, *s.Year)
}

// ParseSelection parses a selection string such as "board-2025" or
// "video-all" into its game type and year.
func ParseSelection(selection string) (Selection, error) {
	gameTypeStr, yearStr, ok := strings.Cut(selection, "-")
	if !ok {
		return Selection{}, fmt.Errorf("invalid leaderboard selection %q", selection)
	}
	gameType := model.GameType(gameTypeStr)
	if !gameType.Valid() {
		return Selection{}, fmt.Errorf("invalid game type %q", gameTypeStr)
	}
	if yearStr == "all" {
		return Selection{GameType: gameType}, nil
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return Selection{}, fmt.Errorf("invalid year %q", yearStr)
	}
	return Selection{GameType: gameType, Year: &year}, nil
}

// hasResults reports whether any result matches the given scope.
func hasResults(snap *Snapshot, gameType model.GameType, year *int) bool {
	yearFiltered := FilterResultsByYear(snap.Results, snap.EventByID, year)
	return len(FilterByGameType(yearFiltered, snap.GameByID, gameType)) > 0
}

// LeaderboardOptions lists every game type and year combination with
// results, newest year first, each with its current leader attached. Past
// years are championship boards. Falls back to the current-year board-games
// option when the dataset is empty.
func LeaderboardOptions(snap *Snapshot, now time.Time) []model.LeaderboardOption {
	currentYear := now.Year()
	var options []model.LeaderboardOption

	for _, year := range AvailableYears(snap.Events) {
		year := year
		for _, gameType := range []model.GameType{model.GameTypeBoard, model.GameTypeVideo} {
			if !hasResults(snap, gameType, &year) {
				continue
			}
			var leader *model.PlayerWithData
			if board := LeaderboardByTypeAndYear(snap, gameType, &year); len(board) > 0 {
				leader = &board[0]
			}
			label := "Board Games"
			if gameType == model.GameTypeVideo {
				label = "Video Games"
			}
			options = append(options, model.LeaderboardOption{
				GameType:       gameType,
				Year:           &year,
				Label:          fmt.Sprintf("%s %d", label, year),
				Value:          Selection{GameType: gameType, Year: &year}.Value(),
				Leader:         leader,
				IsChampionship: year < currentYear,
			})
		}
	}

	if len(options) == 0 {
		year := currentYear
		options = append(options, model.LeaderboardOption{
			GameType: model.GameTypeBoard,
			Year:     &year,
			Label:    fmt.Sprintf("Board Games %d", year),
			Value:    Selection{GameType: model.GameTypeBoard, Year: &year}.Value(),
		})
	}
	return options
}

// PlayerChampionships maps each player to the past calendar years they
// finished rank 1 for the given game type, sorted ascending for badge
// display. Only completed years (before the current one) count.
func PlayerChampionships(snap *Snapshot, gameType model.GameType, now time.Time) map[int64][]int {
	currentYear := now.Year()
	championships := make(map[int64][]int)

	for _, year := range AvailableYears(snap.Events) {
		if year >= currentYear {
			continue
		}
		year := year
		board := LeaderboardByTypeAndYear(snap, gameType, &year)
		if len(board) == 0 {
			continue
		}
		champion := board[0]
		championships[champion.ID] = append(championships[champion.ID], year)
	}

	for id := range championships {
		sort.Ints(championships[id])
	}
	return championships
}

// LeaderboardFeaturedStats picks the headline players from a sorted
// leaderboard: most points, most wins, best win rate (minimum sample
// applied), most games.
func LeaderboardFeaturedStats(board []model.PlayerWithData) model.FeaturedStats {
	var featured model.FeaturedStats
	if len(board) == 0 {
		return featured
	}
	featured.MostPoints = &board[0]

	for i := range board {
		p := &board[i]
		if featured.MostWins == nil || p.Data.Wins > featured.MostWins.Data.Wins {
			featured.MostWins = p
		}
		if featured.MostGames == nil || p.Data.Games > featured.MostGames.Data.Games {
			featured.MostGames = p
		}
		if p.Data.Games >= MinGamesForWinRate {
			if featured.BestWinRate == nil || p.Data.WinRate > featured.BestWinRate.Data.WinRate {
				featured.BestWinRate = p
			}
		}
	}
	return featured
}
