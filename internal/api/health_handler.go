package api

import (
	"log/slog"
	"net/http"

	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/redact"
	"github.com/fithub-app/fithub-api/internal/store"
)

// HealthHandler reports whether the database is reachable.
type HealthHandler struct {
	pinger store.Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pinger store.Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		pinger: pinger,
		logger: logger.With(slog.String("component", "health_handler")),
	}
}

// Check handles GET /api/health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("health check failed",
			slog.String("error", redact.Error(err)))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}
