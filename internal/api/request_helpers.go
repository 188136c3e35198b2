package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fithub-app/fithub-api/internal/api/middleware"
	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, paramName)
	}
	return id, nil
}

// handlePathUUID parses a UUID path parameter, writing a 400 response and
// returning false when it is missing or malformed.
func handlePathUUID(w http.ResponseWriter, r *http.Request, paramName string, log *slog.Logger) (uuid.UUID, bool) {
	id, err := getPathUUID(r, paramName)
	if err != nil {
		log.Warn("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err)
		return uuid.Nil, false
	}
	return id, true
}

// handleUserID returns the caller identity placed by the identity
// middleware, writing a 401 response when it is absent.
func handleUserID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID required")
		return uuid.Nil, false
	}
	return userID, true
}

// decodeAndValidate decodes the JSON body into v and validates it, writing
// a 400 response and returning false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// HandleAPIError writes the status code and safe message for err and logs
// the redacted error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
