package store

import (
	"context"

	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/google/uuid"
)

// VideoStore provides read access to the video catalog.
type VideoStore interface {
	// List returns the videos matching filter; an empty slice when none match.
	List(ctx context.Context, filter domain.VideoFilter) ([]domain.Video, error)

	// GetByID returns ErrVideoNotFound if no video has the given ID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
}
