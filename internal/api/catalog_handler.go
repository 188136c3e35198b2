package api

import (
	"log/slog"
	"net/http"

	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/store"
)

// CatalogHandler serves the read-only video library and exercise catalog.
type CatalogHandler struct {
	videos    store.VideoStore
	exercises store.ExerciseStore
	logger    *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(videos store.VideoStore, exercises store.ExerciseStore, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{
		videos:    videos,
		exercises: exercises,
		logger:    logger.With(slog.String("component", "catalog_handler")),
	}
}

// ListVideos handles GET /api/videos. The optional category and difficulty
// query parameters are exact-match filters combined with AND.
func (h *CatalogHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.VideoFilter{
		Category:   q.Get("category"),
		Difficulty: q.Get("difficulty"),
	}

	videos, err := h.videos.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, videos)
}

// GetVideo handles GET /api/videos/{id}.
func (h *CatalogHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	video, err := h.videos.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, video)
}

// ListExercises handles GET /api/exercises.
func (h *CatalogHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exercises.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, exercises)
}
