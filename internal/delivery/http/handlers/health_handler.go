package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler reports service health. The database is required; the cache
// is optional and its outage does not fail the check.
type HealthHandler struct {
	db     Pinger
	cache  Pinger
	logger *zap.Logger
}

func NewHealthHandler(db Pinger, cache Pinger, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{db: db, cache: cache, logger: logger}
}

// Handle handles GET /api/health
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	components := map[string]string{
		"database": "up",
		"cache":    "disabled",
	}
	status := http.StatusOK
	overall := "ok"

	if err := h.db.HealthCheck(ctx); err != nil {
		h.logger.Error("health check failed: database unavailable", zap.Error(err))
		components["database"] = "down"
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	if h.cache != nil {
		components["cache"] = "up"
		if err := h.cache.HealthCheck(ctx); err != nil {
			h.logger.Warn("health check: cache unavailable", zap.Error(err))
			components["cache"] = "down"
		}
	}

	respondWithJSON(w, status, map[string]interface{}{
		"status":     overall,
		"components": components,
	})
}
