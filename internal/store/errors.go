package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the store rejects a row because it
	// references a missing entity or breaks a check/not-null constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrProfileNotFound indicates that the requested profile does not exist.
	ErrProfileNotFound = fmt.Errorf("%w: profile", ErrNotFound)

	// ErrVideoNotFound indicates that the requested video does not exist.
	ErrVideoNotFound = fmt.Errorf("%w: video", ErrNotFound)

	// ErrWorkoutNotFound indicates that the requested workout does not exist.
	ErrWorkoutNotFound = fmt.Errorf("%w: workout", ErrNotFound)

	// ErrUsernameExists indicates that a profile with the given username already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // e.g. "workout"
	Operation string // e.g. "create"
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Operation, e.Entity)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the entity and operation that produced it.
// It returns nil when err is nil.
func NewStoreError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Entity: entity, Operation: operation, Err: err}
}
