package api

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"     validate:"required"`
	Password string `json:"password"  validate:"required"`
	Username string `json:"username"  validate:"required"`
	FullName string `json:"full_name"`
}

// LoginRequest defines the payload for the login endpoint. Password is
// optional; when present it is checked against the stored hash.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// CreateWorkoutRequest defines the payload for creating a workout.
// Omitted optional fields take the domain defaults.
type CreateWorkoutRequest struct {
	Name            string  `json:"name"             validate:"required"`
	Description     *string `json:"description"`
	DifficultyLevel *string `json:"difficulty_level"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gte=0"`
}

// AddWorkoutExerciseRequest defines the payload for adding an exercise slot.
type AddWorkoutExerciseRequest struct {
	ExerciseID  string `json:"exercise_id"  validate:"required,uuid"`
	Sets        *int   `json:"sets"         validate:"omitempty,gte=0"`
	Reps        *int   `json:"reps"         validate:"omitempty,gte=0"`
	RestSeconds *int   `json:"rest_seconds" validate:"omitempty,gte=0"`
	OrderIndex  *int   `json:"order_index"  validate:"omitempty,gte=0"`
}

// AddFavoriteRequest defines the payload for favoriting a video.
type AddFavoriteRequest struct {
	VideoID string `json:"video_id" validate:"required,uuid"`
}

// UpdateProfileRequest defines the payload for a profile update. Every
// field is written; an omitted field clears the stored value.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// HealthResponse reports database reachability.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
