package middleware

import (
	"net/http"
	"strings"

	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/google/uuid"
)

// UserIDHeader carries the caller's profile ID. It identifies the caller
// but does not authenticate them.
const UserIDHeader = "X-User-ID"

// RequireIdentity rejects requests without a well-formed X-User-ID header
// and stores the parsed ID in the request context.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if raw == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID required")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			logger.FromContext(r.Context()).Debug("malformed user ID header")
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid user ID")
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUserID(r.Context(), userID)))
	})
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	return shared.UserIDFromContext(r.Context())
}
