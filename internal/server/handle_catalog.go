package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ifancyabroad/the-nightingames/internal/model"
	"github.com/ifancyabroad/the-nightingames/internal/stats"
)

func handleListPlayers(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := st.snapshot()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "loading data")
			return
		}
		players := stats.ComputePlayerData(snap.Players, snap.Results, snap.GameByID, snap.Events)
		writeJSON(w, http.StatusOK, players)
	}
}

func handleGetPlayer(st *store) http.HandlerFunc {
	type response struct {
		Player        model.PlayerWithData   `json:"player"`
		Aggregates    model.PlayerAggregates `json:"aggregates"`
		Streaks       model.PlayerStreaks    `json:"streaks"`
		Rivalries     []model.Rivalry        `json:"rivalries"`
		Championships []int                  `json:"championships"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid player id")
			return
		}
		snap, err := st.snapshot()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "loading data")
			return
		}
		player, ok := snap.PlayerByID[id]
		if !ok {
			writeError(w, http.StatusNotFound, "player not found")
			return
		}

		sorted := stats.SortResultsChronologically(snap.Results, snap.EventByID)
		entries := stats.PlayerEntries(sorted, id)
		withData := stats.ComputePlayerData([]model.Player{player}, snap.Results, snap.GameByID, snap.Events)

		writeJSON(w, http.StatusOK, response{
			Player:        withData[0],
			Aggregates:    stats.AggregatePlayerStats(id, entries, snap.GameByID, snap.Events, snap.Results),
			Streaks:       stats.ComputeStreaks(entries),
			Rivalries:     stats.PlayerRivalries(snap.Results, snap.PlayerByID, id, stats.TopRivalriesLimit),
			Championships: stats.PlayerChampionships(snap, model.GameTypeBoard, time.Now())[id],
		})
	}
}

func handleListGames(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := st.snapshot()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "loading data")
			return
		}
		writeJSON(w, http.StatusOK, snap.Games)
	}
}

func handleListEvents(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := st.snapshot()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "loading data")
			return
		}
		writeJSON(w, http.StatusOK, stats.SortEventsByDate(snap.Events, true))
	}
}

func handleGetEvent(st *store) http.HandlerFunc {
	type response struct {
		Event      model.Event              `json:"event"`
		Players    []model.EventPlayerStats `json:"players"`
		Games      []model.EventGameStats   `json:"games"`
		TopScorers []model.TopScorer        `json:"topScorers"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid event id")
			return
		}
		snap, err := st.snapshot()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "loading data")
			return
		}
		event, ok := snap.EventByID[id]
		if !ok {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}

		writeJSON(w, http.StatusOK, response{
			Event:      event,
			Players:    stats.EventPlayerStats(snap, id),
			Games:      stats.EventGameStats(snap, id),
			TopScorers: stats.EventTopScorers(snap, id),
		})
	}
}
