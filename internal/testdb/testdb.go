//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database. Tests using it are skipped unless a test database URL
// is configured.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/fithub-app/fithub-api/internal/config"
	"github.com/fithub-app/fithub-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds setup operations against the test database.
const TestTimeout = 30 * time.Second

// GetTestDatabaseURL returns the database URL for tests. It checks
// FITHUB_TEST_DATABASE_URL and DATABASE_URL in that order.
func GetTestDatabaseURL() string {
	if u := os.Getenv("FITHUB_TEST_DATABASE_URL"); u != "" {
		return u
	}
	return os.Getenv("DATABASE_URL")
}

// Open connects to the test database and migrates it to the latest schema.
// The test is skipped when no database URL is configured.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("FITHUB_TEST_DATABASE_URL not set; skipping database test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := postgres.Open(ctx, config.DatabaseConfig{
		URL:            dbURL,
		MaxOpenConns:   5,
		MaxIdleConns:   2,
		ConnectRetries: 2,
	}, log)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db, "up", log), "failed to migrate test database")
	return db
}

// WithTx runs fn inside a transaction that is always rolled back, so the
// test leaves no rows behind.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Errorf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
