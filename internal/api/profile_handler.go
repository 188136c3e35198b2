package api

import (
	"log/slog"
	"net/http"

	"github.com/fithub-app/fithub-api/internal/api/middleware"
	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// ProfileHandler handles profile reads and owner updates.
type ProfileHandler struct {
	profiles store.ProfileStore
	logger   *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles store.ProfileStore, logger *slog.Logger) *ProfileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileHandler{
		profiles: profiles,
		logger:   logger.With(slog.String("component", "profile_handler")),
	}
}

// Get handles GET /api/profiles/{id}. No identity is required.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	profile, err := h.profiles.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Update handles PUT /api/profiles/{id}. The X-User-ID header must equal the
// path id exactly; a missing header counts as a mismatch.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if r.Header.Get(middleware.UserIDHeader) != chi.URLParam(r, "id") {
		log.Warn("profile update identity mismatch")
		HandleAPIError(w, r, ErrIdentityMismatch)
		return
	}

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	profile, err := h.profiles.Update(r.Context(), id, domain.ProfileUpdate{
		FullName:  req.FullName,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("profile updated", slog.String("user_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}
