package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fithub-app/fithub-api/internal/api/middleware"
	"github.com/fithub-app/fithub-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApplication(t *testing.T, rateLimit int) (*application, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:              8080,
			LogLevel:          "error",
			RequestTimeout:    time.Second,
			RateLimitRequests: rateLimit,
			RateLimitWindow:   time.Minute,
		},
		Auth: config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newApplication(cfg, log, db), mock
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "192.0.2.10:4321"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	app, mock := newTestApplication(t, 0)
	router := app.setupRouter()

	mock.ExpectPing()
	rr := serve(router, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"connected"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(middleware.TraceIDHeader))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Metrics(t *testing.T) {
	app, mock := newTestApplication(t, 0)
	router := app.setupRouter()

	mock.ExpectPing()
	serve(router, http.MethodGet, "/api/health")

	rr := serve(router, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "fithub_api_requests_total")
	assert.Contains(t, rr.Body.String(), `route="/api/health"`)
}

func TestRouter_UnknownRoute(t *testing.T) {
	app, _ := newTestApplication(t, 0)

	rr := serve(app.setupRouter(), http.MethodGet, "/api/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_ProtectedRoutesNeedIdentity(t *testing.T) {
	app, _ := newTestApplication(t, 0)
	router := app.setupRouter()

	for _, path := range []string{"/api/workouts", "/api/favorites"} {
		rr := serve(router, http.MethodGet, path)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	app, mock := newTestApplication(t, 2)
	router := app.setupRouter()

	mock.ExpectPing()
	mock.ExpectPing()
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/health").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/health").Code)

	rr := serve(router, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error":"Too many requests"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
