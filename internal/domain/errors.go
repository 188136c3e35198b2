package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// The field-specific errors below wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidMuscleGroups is returned when stored muscle groups are not a JSON list.
	ErrInvalidMuscleGroups = errors.New("invalid muscle groups encoding")

	ErrEmptyUserID      = validationError("user ID cannot be empty")
	ErrEmptyUsername    = validationError("username is required")
	ErrEmptyEmail       = validationError("email is required")
	ErrEmptyPassword    = validationError("password is required")
	ErrEmptyWorkoutName = validationError("workout name is required")
	ErrEmptyWorkoutID   = validationError("workout ID cannot be empty")
	ErrEmptyExerciseID  = validationError("exercise_id is required")
	ErrEmptyVideoID     = validationError("video_id is required")
)

type fieldError struct{ msg string }

func (e *fieldError) Error() string { return e.msg }

func (e *fieldError) Unwrap() error { return ErrValidation }

func validationError(msg string) error {
	return &fieldError{msg: msg}
}
