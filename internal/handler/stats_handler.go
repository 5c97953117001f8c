package handler

import (
	"net/http"

	"resto-board/internal/service"

	"github.com/rs/zerolog"
)

// StatsHandler serves the dashboard aggregates.
type StatsHandler struct {
	stats  service.StatsService
	logger zerolog.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(stats service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		logger: logger.With().Str("handler", "stats").Logger(),
	}
}

// Dashboard handles GET /api/stats/dashboard.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	stats, err := h.stats.Dashboard(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
