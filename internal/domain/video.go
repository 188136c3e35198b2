package domain

import (
	"time"

	"github.com/google/uuid"
)

// Video is a catalog entry in the workout video library.
type Video struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	VideoURL        *string   `json:"video_url"`
	ThumbnailURL    *string   `json:"thumbnail_url"`
	DurationMinutes *int      `json:"duration_minutes"`
	Category        *string   `json:"category"`
	DifficultyLevel *string   `json:"difficulty_level"`
	InstructorName  *string   `json:"instructor_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// VideoFilter narrows a video listing. Empty fields impose no constraint;
// set fields are exact matches combined with AND.
type VideoFilter struct {
	Category   string
	Difficulty string
}
