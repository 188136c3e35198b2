package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/fithub-app/fithub-api/internal/config"
	"github.com/fithub-app/fithub-api/internal/metrics"
	"github.com/fithub-app/fithub-api/internal/store"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/sethvargo/go-retry"
)

const (
	driverName       = "pgx"
	pingTimeout      = 5 * time.Second
	retryBaseBackoff = 500 * time.Millisecond
)

// Open opens the connection pool described by cfg, applies the pool limits
// and waits for the database to answer a ping. Failed pings are retried with
// exponential backoff up to cfg.ConnectRetries times.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*sql.DB, error) {
	if log == nil {
		log = slog.Default()
	}

	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := connectWithRetry(ctx, db, cfg.ConnectRetries, retryBaseBackoff, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("database connection established",
		slog.String("host", cfg.Host),
		slog.String("database", cfg.Name),
		slog.Int("max_open_conns", cfg.MaxOpenConns))
	return db, nil
}

func connectWithRetry(
	ctx context.Context,
	db *sql.DB,
	retries uint64,
	base time.Duration,
	log *slog.Logger,
) error {
	attempt := 0
	backoff := retry.WithMaxRetries(retries, retry.NewExponential(base))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		err := db.PingContext(pingCtx)
		metrics.RecordConnectAttempt(err)
		if err != nil {
			log.Warn("database ping failed",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to ping database after %d attempts: %w", attempt, err)
	}
	return nil
}

// HealthChecker reports database reachability.
type HealthChecker struct {
	db *sql.DB
}

// NewHealthChecker creates a HealthChecker over db.
func NewHealthChecker(db *sql.DB) *HealthChecker {
	if db == nil {
		panic("db cannot be nil")
	}
	return &HealthChecker{db: db}
}

var _ store.Pinger = (*HealthChecker)(nil)

// Ping acquires one pooled connection, pings it and releases it.
func (h *HealthChecker) Ping(ctx context.Context) error {
	conn, err := h.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
