package main

import (
	"net/http"

	apiMiddleware "github.com/fithub-app/fithub-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the application router with its middleware stack,
// the /api routes and the Prometheus endpoint.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(apiMiddleware.Metrics)
	r.Use(middleware.Timeout(app.config.Server.RequestTimeout))

	if app.config.Server.RateLimitRequests > 0 {
		r.Use(apiMiddleware.RateLimit(
			app.config.Server.RateLimitRequests,
			app.config.Server.RateLimitWindow,
		))
	} else {
		app.logger.Warn("Rate limiting disabled")
	}

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/api", app.handlers().Routes)

	return r
}
