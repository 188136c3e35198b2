package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied to workout fields the caller leaves out.
const (
	DefaultDifficultyLevel = "beginner"
	DefaultDurationMinutes = 30

	DefaultSets        = 3
	DefaultReps        = 10
	DefaultRestSeconds = 60
	DefaultOrderIndex  = 0
)

// Workout is a user-authored plan. It is created by its owner, deletable only
// by its owner, and never updated in place.
type Workout struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DifficultyLevel string    `json:"difficulty_level"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// WorkoutInput holds the caller-supplied workout fields. Nil pointers take
// the package defaults.
type WorkoutInput struct {
	Name            string
	Description     *string
	DifficultyLevel *string
	DurationMinutes *int
}

// NewWorkout builds a workout owned by userID, filling in defaults.
func NewWorkout(userID uuid.UUID, in WorkoutInput) (*Workout, error) {
	now := time.Now().UTC()
	w := &Workout{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            strings.TrimSpace(in.Name),
		Description:     valueOr(in.Description, ""),
		DifficultyLevel: valueOr(in.DifficultyLevel, DefaultDifficultyLevel),
		DurationMinutes: valueOr(in.DurationMinutes, DefaultDurationMinutes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate checks the fields required for a stored workout.
func (w *Workout) Validate() error {
	if w.UserID == uuid.Nil {
		return ErrEmptyUserID
	}
	if w.Name == "" {
		return ErrEmptyWorkoutName
	}
	return nil
}

// WorkoutExercise is one exercise slot in a workout. OrderIndex sets the
// position; ties fall back to insertion order.
type WorkoutExercise struct {
	ID          uuid.UUID `json:"id"`
	WorkoutID   uuid.UUID `json:"workout_id"`
	ExerciseID  uuid.UUID `json:"exercise_id"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	RestSeconds int       `json:"rest_seconds"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// WorkoutExerciseInput holds caller-supplied slot fields. Nil pointers take
// the package defaults.
type WorkoutExerciseInput struct {
	ExerciseID  uuid.UUID
	Sets        *int
	Reps        *int
	RestSeconds *int
	OrderIndex  *int
}

// NewWorkoutExercise builds a slot for workoutID, filling in defaults.
func NewWorkoutExercise(workoutID uuid.UUID, in WorkoutExerciseInput) (*WorkoutExercise, error) {
	we := &WorkoutExercise{
		ID:          uuid.New(),
		WorkoutID:   workoutID,
		ExerciseID:  in.ExerciseID,
		Sets:        valueOr(in.Sets, DefaultSets),
		Reps:        valueOr(in.Reps, DefaultReps),
		RestSeconds: valueOr(in.RestSeconds, DefaultRestSeconds),
		OrderIndex:  valueOr(in.OrderIndex, DefaultOrderIndex),
		CreatedAt:   time.Now().UTC(),
	}

	if err := we.Validate(); err != nil {
		return nil, err
	}
	return we, nil
}

// Validate checks the fields required for a stored slot.
func (we *WorkoutExercise) Validate() error {
	if we.WorkoutID == uuid.Nil {
		return ErrEmptyWorkoutID
	}
	if we.ExerciseID == uuid.Nil {
		return ErrEmptyExerciseID
	}
	return nil
}

// WorkoutEntry is a slot joined with the exercise it points at.
type WorkoutEntry struct {
	WorkoutExercise
	Exercise Exercise `json:"exercise"`
}

// WorkoutDetail is a workout with its ordered entries.
type WorkoutDetail struct {
	Workout
	Exercises []WorkoutEntry `json:"exercises"`
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
