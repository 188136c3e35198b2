package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/store"
	"github.com/google/uuid"
)

const (
	workoutColumns = `id, user_id, name, description, difficulty_level, duration_minutes, created_at, updated_at`

	workoutExerciseColumns = `id, workout_id, exercise_id, sets, reps, rest_seconds, order_index, created_at`

	workoutEntriesQuery = `
		SELECT we.id, we.workout_id, we.exercise_id, we.sets, we.reps, we.rest_seconds, we.order_index, we.created_at,
		       e.id, e.name, e.description, e.muscle_groups, e.equipment, e.difficulty_level, e.created_at
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = $1
		ORDER BY we.order_index, we.created_at, we.id
	`
)

// PostgresWorkoutStore implements store.WorkoutStore.
type PostgresWorkoutStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresWorkoutStore creates a WorkoutStore over db. Writes that read
// back the stored row run in a transaction, so db must be a pool rather
// than an open transaction.
func NewPostgresWorkoutStore(db *sql.DB, logger *slog.Logger) *PostgresWorkoutStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWorkoutStore{
		db:     db,
		logger: logger.With(slog.String("component", "workout_store")),
	}
}

var _ store.WorkoutStore = (*PostgresWorkoutStore)(nil)

// ListByUser implements store.WorkoutStore.ListByUser.
func (s *PostgresWorkoutStore) ListByUser(ctx context.Context, userID uuid.UUID) (workouts []domain.Workout, err error) {
	defer observe("list_by_user", "workouts", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE user_id = $1 ORDER BY created_at DESC, id`,
		userID)
	if err != nil {
		log.Error("failed to query workouts",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("workout", "list", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	workouts = []domain.Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, store.NewStoreError("workout", "list", err)
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("workout", "list", err)
	}
	return workouts, nil
}

// Create implements store.WorkoutStore.Create.
// Returns store.ErrInvalidEntity if the owner profile does not exist.
func (s *PostgresWorkoutStore) Create(ctx context.Context, workout *domain.Workout) (created *domain.Workout, err error) {
	defer observe("create", "workouts", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := workout.Validate(); err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO workouts (id, user_id, name, description, difficulty_level, duration_minutes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			workout.ID,
			workout.UserID,
			workout.Name,
			workout.Description,
			workout.DifficultyLevel,
			workout.DurationMinutes,
			workout.CreatedAt,
			workout.UpdatedAt,
		)
		if err != nil {
			return store.NewStoreError("workout", "create", MapError(err))
		}

		row := tx.QueryRowContext(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id = $1`, workout.ID)
		created, err = scanWorkout(row)
		if err != nil {
			return store.NewStoreError("workout", "create", MapError(err))
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create workout",
			slog.String("error", err.Error()),
			slog.String("workout_id", workout.ID.String()),
			slog.String("user_id", workout.UserID.String()))
		return nil, err
	}

	log.Info("workout created",
		slog.String("workout_id", created.ID.String()),
		slog.String("user_id", created.UserID.String()))
	return created, nil
}

// GetDetail implements store.WorkoutStore.GetDetail.
func (s *PostgresWorkoutStore) GetDetail(ctx context.Context, id uuid.UUID) (detail *domain.WorkoutDetail, err error) {
	defer observe("get_detail", "workouts", time.Now(), &err)

	w, err := scanWorkout(s.db.QueryRowContext(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWorkoutNotFound
		}
		return nil, store.NewStoreError("workout", "get", MapError(err))
	}

	rows, err := s.db.QueryContext(ctx, workoutEntriesQuery, id)
	if err != nil {
		return nil, store.NewStoreError("workout", "get", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	detail = &domain.WorkoutDetail{Workout: *w, Exercises: []domain.WorkoutEntry{}}
	for rows.Next() {
		var entry domain.WorkoutEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.WorkoutID,
			&entry.ExerciseID,
			&entry.Sets,
			&entry.Reps,
			&entry.RestSeconds,
			&entry.OrderIndex,
			&entry.WorkoutExercise.CreatedAt,
			&entry.Exercise.ID,
			&entry.Exercise.Name,
			&entry.Exercise.Description,
			&entry.Exercise.MuscleGroups,
			&entry.Exercise.Equipment,
			&entry.Exercise.DifficultyLevel,
			&entry.Exercise.CreatedAt,
		); err != nil {
			return nil, store.NewStoreError("workout", "get", err)
		}
		detail.Exercises = append(detail.Exercises, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("workout", "get", err)
	}
	return detail, nil
}

// AddExercise implements store.WorkoutStore.AddExercise.
func (s *PostgresWorkoutStore) AddExercise(
	ctx context.Context,
	entry *domain.WorkoutExercise,
) (created *domain.WorkoutExercise, err error) {
	defer observe("add_exercise", "workout_exercises", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO workout_exercises (id, workout_id, exercise_id, sets, reps, rest_seconds, order_index, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			entry.ID,
			entry.WorkoutID,
			entry.ExerciseID,
			entry.Sets,
			entry.Reps,
			entry.RestSeconds,
			entry.OrderIndex,
			entry.CreatedAt,
		)
		if err != nil {
			return store.NewStoreError("workout_exercise", "create", MapError(err))
		}

		row := tx.QueryRowContext(ctx,
			`SELECT `+workoutExerciseColumns+` FROM workout_exercises WHERE id = $1`, entry.ID)
		created, err = scanWorkoutExercise(row)
		if err != nil {
			return store.NewStoreError("workout_exercise", "create", MapError(err))
		}
		return nil
	})
	if err != nil {
		log.Error("failed to add exercise to workout",
			slog.String("error", err.Error()),
			slog.String("workout_id", entry.WorkoutID.String()),
			slog.String("exercise_id", entry.ExerciseID.String()))
		return nil, err
	}

	log.Info("exercise added to workout",
		slog.String("workout_id", created.WorkoutID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.Int("order_index", created.OrderIndex))
	return created, nil
}

// RemoveExercise implements store.WorkoutStore.RemoveExercise.
func (s *PostgresWorkoutStore) RemoveExercise(
	ctx context.Context,
	workoutID, entryID, userID uuid.UUID,
) (removed bool, err error) {
	defer observe("remove_exercise", "workout_exercises", time.Now(), &err)

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM workout_exercises
		WHERE id = $1 AND workout_id = $2
		  AND EXISTS (SELECT 1 FROM workouts w WHERE w.id = $2 AND w.user_id = $3)
	`, entryID, workoutID, userID)
	if err != nil {
		return false, store.NewStoreError("workout_exercise", "delete", MapError(err))
	}

	n, err := rowsAffected(result)
	if err != nil {
		return false, store.NewStoreError("workout_exercise", "delete", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("remove workout exercise",
		slog.String("workout_id", workoutID.String()),
		slog.String("entry_id", entryID.String()),
		slog.Int64("rows_affected", n))
	return n > 0, nil
}

// Delete implements store.WorkoutStore.Delete.
func (s *PostgresWorkoutStore) Delete(ctx context.Context, id, userID uuid.UUID) (deleted bool, err error) {
	defer observe("delete", "workouts", time.Now(), &err)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, store.NewStoreError("workout", "delete", MapError(err))
	}

	n, err := rowsAffected(result)
	if err != nil {
		return false, store.NewStoreError("workout", "delete", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("delete workout",
		slog.String("workout_id", id.String()),
		slog.String("user_id", userID.String()),
		slog.Int64("rows_affected", n))
	return n > 0, nil
}

func scanWorkout(row rowScanner) (*domain.Workout, error) {
	var w domain.Workout
	if err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Name,
		&w.Description,
		&w.DifficultyLevel,
		&w.DurationMinutes,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}

func scanWorkoutExercise(row rowScanner) (*domain.WorkoutExercise, error) {
	var we domain.WorkoutExercise
	if err := row.Scan(
		&we.ID,
		&we.WorkoutID,
		&we.ExerciseID,
		&we.Sets,
		&we.Reps,
		&we.RestSeconds,
		&we.OrderIndex,
		&we.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &we, nil
}
