package domain

import (
	"time"

	"github.com/google/uuid"
)

// VideoFavorite records that a user favorited a video. The same pair may be
// recorded more than once.
type VideoFavorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	VideoID   uuid.UUID `json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVideoFavorite builds a favorite for the given user and video.
func NewVideoFavorite(userID, videoID uuid.UUID) (*VideoFavorite, error) {
	f := &VideoFavorite{
		ID:        uuid.New(),
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: time.Now().UTC(),
	}
	if f.UserID == uuid.Nil {
		return nil, ErrEmptyUserID
	}
	if f.VideoID == uuid.Nil {
		return nil, ErrEmptyVideoID
	}
	return f, nil
}

// FavoriteWithVideo is a favorite joined with its video. The video sits under
// the "videos" key, which is the shape the web client reads.
type FavoriteWithVideo struct {
	VideoFavorite
	Video Video `json:"videos"`
}
