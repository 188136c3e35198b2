package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// MigrationCommands lists the goose commands accepted by Migrate.
var MigrationCommands = []string{"up", "down", "status", "version", "reset"}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	log *slog.Logger
}

// Printf forwards goose progress messages to slog at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...))
}

// Fatalf forwards goose failures to slog at error level. It does not exit;
// the error comes back to the caller through Migrate.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

// IsMigrationCommand reports whether cmd is one of MigrationCommands.
func IsMigrationCommand(cmd string) bool {
	for _, c := range MigrationCommands {
		if c == cmd {
			return true
		}
	}
	return false
}

// Migrate runs a goose command against db using the migrations embedded in
// the binary.
func Migrate(ctx context.Context, db *sql.DB, command string, log *slog.Logger, args ...string) error {
	if !IsMigrationCommand(command) {
		return fmt.Errorf("unknown migration command %q", command)
	}
	if log == nil {
		log = slog.Default()
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&slogGooseLogger{log: log.With(slog.String("component", "migrations"))})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	log.Info("running migrations", slog.String("command", command))
	if err := goose.RunContext(ctx, command, db, migrationsDir, args...); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	log.Info("migrations finished", slog.String("command", command))
	return nil
}
