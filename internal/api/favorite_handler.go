package api

import (
	"log/slog"
	"net/http"

	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/store"
	"github.com/google/uuid"
)

// FavoriteHandler handles the caller's video favorites.
type FavoriteHandler struct {
	favorites store.FavoriteStore
	logger    *slog.Logger
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favorites store.FavoriteStore, logger *slog.Logger) *FavoriteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoriteHandler{
		favorites: favorites,
		logger:    logger.With(slog.String("component", "favorite_handler")),
	}
}

// List handles GET /api/favorites.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handleUserID(w, r, log)
	if !ok {
		return
	}

	favorites, err := h.favorites.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, favorites)
}

// Create handles POST /api/favorites. Favoriting the same video again adds
// another record.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handleUserID(w, r, log)
	if !ok {
		return
	}

	var req AddFavoriteRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	favorite, err := domain.NewVideoFavorite(userID, uuid.MustParse(req.VideoID))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.favorites.Create(r.Context(), favorite)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// Delete handles DELETE /api/favorites/{video_id}. Success is reported even
// when nothing matched.
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handleUserID(w, r, log)
	if !ok {
		return
	}
	videoID, ok := handlePathUUID(w, r, "video_id", log)
	if !ok {
		return
	}

	n, err := h.favorites.Delete(r.Context(), userID, videoID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("favorite delete processed",
		slog.String("video_id", videoID.String()),
		slog.Int64("rows_affected", n))
	shared.RespondWithMessage(w, r, http.StatusOK, "Favorite removed")
}
