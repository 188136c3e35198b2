package store

import (
	"context"

	"github.com/fithub-app/fithub-api/internal/domain"
)

// ExerciseStore provides read access to the exercise catalog.
type ExerciseStore interface {
	List(ctx context.Context) ([]domain.Exercise, error)
}
