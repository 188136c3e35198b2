package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/store"
)

const exerciseColumns = `id, name, description, muscle_groups, equipment, difficulty_level, created_at`

// PostgresExerciseStore implements store.ExerciseStore.
type PostgresExerciseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresExerciseStore creates an ExerciseStore over db.
func NewPostgresExerciseStore(db store.DBTX, logger *slog.Logger) *PostgresExerciseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresExerciseStore{
		db:     db,
		logger: logger.With(slog.String("component", "exercise_store")),
	}
}

var _ store.ExerciseStore = (*PostgresExerciseStore)(nil)

// List implements store.ExerciseStore.List. muscle_groups is decoded from
// its stored JSON form; a row that fails to decode fails the listing.
func (s *PostgresExerciseStore) List(ctx context.Context) (exercises []domain.Exercise, err error) {
	defer observe("list", "exercises", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY name, id`)
	if err != nil {
		log.Error("failed to query exercises", slog.String("error", err.Error()))
		return nil, store.NewStoreError("exercise", "list", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	exercises = []domain.Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			log.Error("failed to decode exercise row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("exercise", "list", err)
		}
		exercises = append(exercises, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("exercise", "list", err)
	}
	return exercises, nil
}

func scanExercise(row rowScanner) (*domain.Exercise, error) {
	var e domain.Exercise
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.MuscleGroups,
		&e.Equipment,
		&e.DifficultyLevel,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
