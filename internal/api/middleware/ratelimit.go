package middleware

import (
	"net/http"
	"time"

	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/metrics"
	"github.com/go-chi/httprate"
)

// RateLimit limits each client IP to requests per window. A non-positive
// requests value disables limiting.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(onRateLimited),
	)
}

func onRateLimited(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRateLimitHit(routePattern(r))
	shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests, "Too many requests", nil)
}
