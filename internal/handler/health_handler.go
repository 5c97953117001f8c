package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// HealthHandler answers liveness probes with a database ping.
type HealthHandler struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(pool *pgxpool.Pool, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		pool:   pool,
		logger: logger.With().Str("handler", "health").Logger(),
	}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		h.logger.Error().Err(err).Msg("health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
