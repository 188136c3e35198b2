package api

import (
	"log/slog"
	"net/http"

	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/store"
	"github.com/google/uuid"
)

// WorkoutHandler handles workout and workout-exercise requests.
type WorkoutHandler struct {
	workouts store.WorkoutStore
	logger   *slog.Logger
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workouts store.WorkoutStore, logger *slog.Logger) *WorkoutHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkoutHandler{
		workouts: workouts,
		logger:   logger.With(slog.String("component", "workout_handler")),
	}
}

// List handles GET /api/workouts, returning the caller's workouts.
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handleUserID(w, r, log)
	if !ok {
		return
	}

	workouts, err := h.workouts.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, workouts)
}

// Create handles POST /api/workouts.
func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handleUserID(w, r, log)
	if !ok {
		return
	}

	var req CreateWorkoutRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	workout, err := domain.NewWorkout(userID, domain.WorkoutInput{
		Name:            req.Name,
		Description:     req.Description,
		DifficultyLevel: req.DifficultyLevel,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.workouts.Create(r.Context(), workout)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// Get handles GET /api/workouts/{id}. Reads are not scoped to the owner.
func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	detail, err := h.workouts.GetDetail(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, detail)
}

// AddExercise handles POST /api/workouts/{id}/exercises.
// The caller must be identified, but need not own the workout.
func (h *WorkoutHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handleUserID(w, r, log)
	if !ok {
		return
	}
	workoutID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req AddWorkoutExerciseRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	entry, err := domain.NewWorkoutExercise(workoutID, domain.WorkoutExerciseInput{
		ExerciseID:  uuid.MustParse(req.ExerciseID),
		Sets:        req.Sets,
		Reps:        req.Reps,
		RestSeconds: req.RestSeconds,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.workouts.AddExercise(r.Context(), entry)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("exercise added",
		slog.String("user_id", userID.String()),
		slog.String("workout_id", workoutID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// RemoveExercise handles DELETE /api/workouts/{id}/exercises/{entryId}.
// It reports success whether or not a slot was removed.
func (h *WorkoutHandler) RemoveExercise(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handleUserID(w, r, log)
	if !ok {
		return
	}
	workoutID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}
	entryID, ok := handlePathUUID(w, r, "entryId", log)
	if !ok {
		return
	}

	removed, err := h.workouts.RemoveExercise(r.Context(), workoutID, entryID, userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("remove exercise processed",
		slog.String("workout_id", workoutID.String()),
		slog.Bool("removed", removed))
	shared.RespondWithMessage(w, r, http.StatusOK, "Exercise removed from workout")
}

// Delete handles DELETE /api/workouts/{id}. Only the owner's workout is
// deleted, but success is reported either way.
func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handleUserID(w, r, log)
	if !ok {
		return
	}
	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	deleted, err := h.workouts.Delete(r.Context(), id, userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("delete workout processed",
		slog.String("workout_id", id.String()),
		slog.Bool("deleted", deleted))
	shared.RespondWithMessage(w, r, http.StatusOK, "Workout deleted")
}
