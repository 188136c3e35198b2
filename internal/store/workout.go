package store

import (
	"context"

	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/google/uuid"
)

// WorkoutStore defines the interface for workout persistence.
type WorkoutStore interface {
	// ListByUser returns the workouts owned by userID.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Workout, error)

	// Create inserts the workout and returns the row as stored.
	Create(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)

	// GetDetail returns the workout with its entries ordered by order_index.
	// Returns ErrWorkoutNotFound if the workout does not exist.
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.WorkoutDetail, error)

	// AddExercise inserts a slot and returns the row as stored. Ownership of
	// the workout is not checked.
	// Returns ErrInvalidEntity if the workout or exercise does not exist.
	AddExercise(ctx context.Context, entry *domain.WorkoutExercise) (*domain.WorkoutExercise, error)

	// RemoveExercise deletes a slot from a workout owned by userID. It
	// reports whether a row was removed; a miss is not an error.
	RemoveExercise(ctx context.Context, workoutID, entryID, userID uuid.UUID) (bool, error)

	// Delete removes the workout when it is owned by userID. It reports
	// whether a row was removed; a miss is not an error.
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}
