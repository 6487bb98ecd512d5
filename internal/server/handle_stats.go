package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ifancyabroad/the-nightingames/internal/model"
	"github.com/ifancyabroad/the-nightingames/internal/stats"
)

// defaultSelection is the board-games leaderboard for the current year.
func defaultSelection(now time.Time) stats.Selection {
	year := now.Year()
	return stats.Selection{GameType: model.GameTypeBoard, Year: &year}
}

func handleLeaderboard(st *store) http.HandlerFunc {
	type response struct {
		Selection     string                 `json:"selection"`
		Board         []model.PlayerWithData `json:"board"`
		Featured      model.FeaturedStats    `json:"featured"`
		Championships map[int64][]int        `json:"championships"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sel := defaultSelection(time.Now())
		if raw := r.URL.Query().Get("selection"); raw != "" {
			parsed, err := stats.ParseSelection(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid selection: %v", err))
				return
			}
			sel = parsed
		}

		snap, err := st.snapshot()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "loading data")
			return
		}

		board := stats.LeaderboardByTypeAndYear(snap, sel.GameType, sel.Year)
		writeJSON(w, http.StatusOK, response{
			Selection:     sel.Value(),
			Board:         board,
			Featured:      stats.LeaderboardFeaturedStats(board),
			Championships: stats.PlayerChampionships(snap, sel.GameType, time.Now()),
		})
	}
}

func handleLeaderboardOptions(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := st.snapshot()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "loading data")
			return
		}
		writeJSON(w, http.StatusOK, stats.LeaderboardOptions(snap, time.Now()))
	}
}

func handleInsights(st *store) http.HandlerFunc {
	type response struct {
		MostPlayed        []model.GamePlayCount   `json:"mostPlayed"`
		WinStreakLeaders  []model.StreakLeader    `json:"winStreakLeaders"`
		LossStreakLeaders []model.StreakLeader    `json:"lossStreakLeaders"`
		TopRivalries      []model.Rivalry         `json:"topRivalries"`
		LopsidedRivalries []model.Rivalry         `json:"lopsidedRivalries"`
		Drought           *model.Drought          `json:"drought"`
		PlayerTrends      []model.PlayerTrend     `json:"playerTrends"`
		GameTrends        []model.GameTrend       `json:"gameTrends"`
		GameDifficulties  []model.GameDifficulty  `json:"gameDifficulties"`
		GamePoints        []model.GamePointsTotal `json:"gamePoints"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := st.snapshot()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "loading data")
			return
		}

		writeJSON(w, http.StatusOK, response{
			MostPlayed:        stats.MostPlayedGames(snap.Results, snap.GameByID, stats.TopGamesLimit),
			WinStreakLeaders:  stats.WinStreakLeaders(snap, stats.TopStreaksLimit),
			LossStreakLeaders: stats.LossStreakLeaders(snap, stats.TopStreaksLimit),
			TopRivalries:      stats.TopRivalries(snap.Results, snap.PlayerByID, stats.TopRivalriesLimit),
			LopsidedRivalries: stats.LopsidedRivalries(snap.Results, snap.PlayerByID, stats.TopRivalriesLimit),
			Drought:           stats.LongestDrought(snap),
			PlayerTrends:      stats.PlayerWinsOverTime(snap, stats.TopTrendsLimit),
			GameTrends:        stats.GameTrendsOverTime(snap, stats.TopTrendsLimit),
			GameDifficulties:  stats.GameDifficulties(snap.Results, snap.GameByID, stats.TopGamesLimit),
			GamePoints:        stats.GamePoints(snap.Results, snap.GameByID, stats.TopGamesLimit),
		})
	}
}

func handleDashboard(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := st.snapshot()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "loading data")
			return
		}
		writeJSON(w, http.StatusOK, stats.Dashboard(snap, time.Now()))
	}
}
