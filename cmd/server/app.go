package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fithub-app/fithub-api/internal/api"
	"github.com/fithub-app/fithub-api/internal/config"
	"github.com/fithub-app/fithub-api/internal/platform/postgres"
	"github.com/fithub-app/fithub-api/internal/service/auth"
	"github.com/fithub-app/fithub-api/internal/store"
)

// application holds the shared dependencies of the server and owns their
// cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	profileStore  store.ProfileStore
	videoStore    store.VideoStore
	exerciseStore store.ExerciseStore
	workoutStore  store.WorkoutStore
	favoriteStore store.FavoriteStore
	healthChecker store.Pinger

	passwords *auth.BcryptHasher
}

// newApplication wires the PostgreSQL stores and password hashing around an
// established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.profileStore = postgres.NewPostgresProfileStore(db, logger)
	app.videoStore = postgres.NewPostgresVideoStore(db, logger)
	app.exerciseStore = postgres.NewPostgresExerciseStore(db, logger)
	app.workoutStore = postgres.NewPostgresWorkoutStore(db, logger)
	app.favoriteStore = postgres.NewPostgresFavoriteStore(db, logger)
	app.healthChecker = postgres.NewHealthChecker(db)

	app.passwords = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	logger.Info("Application initialized successfully")
	return app
}

// handlers builds the API handlers from the application's stores.
func (app *application) handlers() *api.Handlers {
	return &api.Handlers{
		Auth:      api.NewAuthHandler(app.profileStore, app.passwords, app.logger),
		Catalog:   api.NewCatalogHandler(app.videoStore, app.exerciseStore, app.logger),
		Workouts:  api.NewWorkoutHandler(app.workoutStore, app.logger),
		Favorites: api.NewFavoriteHandler(app.favoriteStore, app.logger),
		Profiles:  api.NewProfileHandler(app.profileStore, app.logger),
		Health:    api.NewHealthHandler(app.healthChecker, app.logger),
	}
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
}
