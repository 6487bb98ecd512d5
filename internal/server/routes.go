package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/ifancyabroad/the-nightingames/internal/storage"
)

func addRoutes(r chi.Router, logger *slog.Logger, db *storage.DB, st *store) {
	r.Get("/healthz", handleHealth(logger, db))

	r.Route("/api", func(r chi.Router) {
		r.Get("/players", handleListPlayers(st))
		r.Get("/players/{id}", handleGetPlayer(st))
		r.Get("/games", handleListGames(st))
		r.Get("/events", handleListEvents(st))
		r.Get("/events/{id}", handleGetEvent(st))
		r.Get("/leaderboard", handleLeaderboard(st))
		r.Get("/leaderboard/options", handleLeaderboardOptions(st))
		r.Get("/stats/insights", handleInsights(st))
		r.Get("/dashboard", handleDashboard(st))
	})
}
