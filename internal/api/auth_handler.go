package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/service/auth"
	"github.com/fithub-app/fithub-api/internal/store"
)

// PasswordService hashes new passwords and verifies supplied ones.
type PasswordService interface {
	auth.PasswordHasher
	auth.PasswordVerifier
}

// AuthHandler handles signup and login.
type AuthHandler struct {
	profiles  store.ProfileStore
	passwords PasswordService
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(profiles store.ProfileStore, passwords PasswordService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		profiles:  profiles,
		passwords: passwords,
		logger:    logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SignupRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	profile, err := domain.NewProfile(req.Username, req.Email, req.FullName)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	hash, err := h.passwords.Hash(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Password is too long", err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create user", err)
		return
	}
	profile.PasswordHash = hash

	if err := h.profiles.Create(r.Context(), profile); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("user signed up", slog.String("user_id", profile.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Message: "User created successfully",
		UserID:  profile.ID.String(),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Missing username", err)
		return
	}

	profile, err := h.profiles.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			log.Debug("login for unknown username")
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	if req.Password != "" {
		if err := h.passwords.Compare(profile.PasswordHash, req.Password); err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				log.Debug("login password mismatch", slog.String("user_id", profile.ID.String()))
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			HandleAPIError(w, r, err)
			return
		}
	}

	log.Debug("user logged in", slog.String("user_id", profile.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Message: "Login successful",
		UserID:  profile.ID.String(),
	})
}
