package store

import (
	"context"

	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/google/uuid"
)

// ProfileStore defines the interface for profile persistence.
type ProfileStore interface {
	// Create inserts a new profile.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByID returns ErrProfileNotFound if no profile has the given ID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// GetByUsername returns ErrProfileNotFound if no profile has the given username.
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)

	// Update overwrites the editable fields and returns the stored profile.
	// Returns ErrProfileNotFound if the profile does not exist.
	Update(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error)
}
