// Package main implements the entry point for the FitHub API server, which
// serves the workout video catalog, user workouts and favorites.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fithub-app/fithub-api/internal/config"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/platform/postgres"
)

// main parses flags, then either runs a single migration command or starts
// the HTTP server until SIGINT/SIGTERM.
func main() {
	migrateCmd := flag.String("migrate", "",
		"Run a database migration command (up, down, status, version, reset) and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		slog.Error("FitHub API exited with error", "error", err)
		stop()
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and dispatches to the
// migration runner or the server.
func run(ctx context.Context, migrateCmd string) error {
	if migrateCmd != "" && !postgres.IsMigrationCommand(migrateCmd) {
		return fmt.Errorf("unknown migration command %q", migrateCmd)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rate_limit_requests", cfg.Server.RateLimitRequests)

	db, err := postgres.Open(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if migrateCmd != "" {
		defer closeDB(db, log)
		return postgres.Migrate(ctx, db, migrateCmd, log)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, db, "up", log); err != nil {
			closeDB(db, log)
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	return newApplication(cfg, log, db).Run(ctx)
}

func closeDB(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Error("Error closing database connection", "error", err)
	}
}
