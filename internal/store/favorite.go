package store

import (
	"context"

	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/google/uuid"
)

// FavoriteStore defines the interface for video favorite persistence.
type FavoriteStore interface {
	// ListByUser returns the user's favorites joined with their videos.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteWithVideo, error)

	// Create inserts the favorite and returns the row as stored. Duplicate
	// (user, video) pairs are accepted.
	Create(ctx context.Context, favorite *domain.VideoFavorite) (*domain.VideoFavorite, error)

	// Delete removes every favorite of videoID held by userID and returns
	// how many rows were removed.
	Delete(ctx context.Context, userID, videoID uuid.UUID) (int64, error)
}
