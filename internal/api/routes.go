package api

import (
	"github.com/fithub-app/fithub-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
)

// Handlers groups the endpoint handlers mounted under /api.
type Handlers struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Workouts  *WorkoutHandler
	Favorites *FavoriteHandler
	Profiles  *ProfileHandler
	Health    *HealthHandler
}

// Routes registers every API route on r. Routes that act on behalf of a
// caller sit behind middleware.RequireIdentity; the rest are public.
func (h *Handlers) Routes(r chi.Router) {
	// Public endpoints
	r.Post("/auth/signup", h.Auth.Signup)
	r.Post("/auth/login", h.Auth.Login)

	r.Get("/videos", h.Catalog.ListVideos)
	r.Get("/videos/{id}", h.Catalog.GetVideo)
	r.Get("/exercises", h.Catalog.ListExercises)

	r.Get("/workouts/{id}", h.Workouts.Get)

	r.Get("/profiles/{id}", h.Profiles.Get)
	// Update compares the raw header with the path itself.
	r.Put("/profiles/{id}", h.Profiles.Update)

	r.Get("/health", h.Health.Check)

	// Caller-scoped endpoints
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireIdentity)

		r.Get("/workouts", h.Workouts.List)
		r.Post("/workouts", h.Workouts.Create)
		r.Delete("/workouts/{id}", h.Workouts.Delete)
		r.Post("/workouts/{id}/exercises", h.Workouts.AddExercise)
		r.Delete("/workouts/{id}/exercises/{entryId}", h.Workouts.RemoveExercise)

		r.Get("/favorites", h.Favorites.List)
		r.Post("/favorites", h.Favorites.Create)
		r.Delete("/favorites/{video_id}", h.Favorites.Delete)
	})
}
