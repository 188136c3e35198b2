package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/service/auth"
	"github.com/fithub-app/fithub-api/internal/store"
	"github.com/go-playground/validator/v10"
)

// ErrIdentityMismatch is returned when the caller's identity does not match
// the resource it is trying to modify.
var ErrIdentityMismatch = errors.New("identity does not match resource")

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing the error itself to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &verrs):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, ErrIdentityMismatch):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate usernames and dangling references stay 500; only the
	// message is specific.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return SanitizeValidationError(err)
	case errors.Is(err, domain.ErrValidation):
		return "Missing required fields"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, ErrIdentityMismatch):
		return "Unauthorized"

	case errors.Is(err, store.ErrProfileNotFound):
		return "Profile not found"
	case errors.Is(err, store.ErrVideoNotFound):
		return "Video not found"
	case errors.Is(err, store.ErrWorkoutNotFound):
		return "Workout not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Referenced resource does not exist"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a short message naming
// the first offending field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return "Missing required fields"
	}
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "uuid":
		return "invalid ID format"
	case "gte":
		return "must not be negative"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
