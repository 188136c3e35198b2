package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fithub-app/fithub-api/internal/api/middleware"
	"github.com/fithub-app/fithub-api/internal/api/shared"
	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/service/auth"
	"github.com/fithub-app/fithub-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var errStoreDown = errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memProfileStore is an in-memory store.ProfileStore with a unique username index.
type memProfileStore struct {
	mu       sync.Mutex
	byID     map[uuid.UUID]domain.Profile
	createFn func(ctx context.Context, p *domain.Profile) error
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{byID: make(map[uuid.UUID]domain.Profile)}
}

func (s *memProfileStore) Create(ctx context.Context, p *domain.Profile) error {
	if s.createFn != nil {
		return s.createFn(ctx, p)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.Username == p.Username {
			return store.NewStoreError("profile", "create", store.ErrUsernameExists)
		}
	}
	s.byID[p.ID] = *p
	return nil
}

func (s *memProfileStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return &p, nil
}

func (s *memProfileStore) GetByUsername(_ context.Context, username string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.byID {
		if p.Username == username {
			p := p
			return &p, nil
		}
	}
	return nil, store.ErrProfileNotFound
}

func (s *memProfileStore) Update(_ context.Context, id uuid.UUID, u domain.ProfileUpdate) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	p.FullName, p.Bio, p.AvatarURL = u.FullName, u.Bio, u.AvatarURL
	p.UpdatedAt = time.Now().UTC()
	s.byID[id] = p
	return &p, nil
}

// memVideoStore is an in-memory store.VideoStore.
type memVideoStore struct {
	videos []domain.Video
	err    error
}

func (s *memVideoStore) List(_ context.Context, f domain.VideoFilter) ([]domain.Video, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []domain.Video{}
	for _, v := range s.videos {
		if f.Category != "" && (v.Category == nil || *v.Category != f.Category) {
			continue
		}
		if f.Difficulty != "" && (v.DifficultyLevel == nil || *v.DifficultyLevel != f.Difficulty) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *memVideoStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Video, error) {
	for _, v := range s.videos {
		if v.ID == id {
			v := v
			return &v, nil
		}
	}
	return nil, store.ErrVideoNotFound
}

// memExerciseStore is an in-memory store.ExerciseStore.
type memExerciseStore struct {
	exercises []domain.Exercise
	err       error
}

func (s *memExerciseStore) List(context.Context) ([]domain.Exercise, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]domain.Exercise{}, s.exercises...), nil
}

func (s *memExerciseStore) byID(id uuid.UUID) (domain.Exercise, bool) {
	for _, e := range s.exercises {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Exercise{}, false
}

// memWorkoutStore is an in-memory store.WorkoutStore joined against a
// memExerciseStore.
type memWorkoutStore struct {
	mu        sync.Mutex
	workouts  []domain.Workout
	entries   []domain.WorkoutExercise
	exercises *memExerciseStore
	err       error
}

func (s *memWorkoutStore) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Workout, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Workout{}
	for _, w := range s.workouts {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *memWorkoutStore) Create(_ context.Context, w *domain.Workout) (*domain.Workout, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts = append(s.workouts, *w)
	created := *w
	return &created, nil
}

func (s *memWorkoutStore) GetDetail(_ context.Context, id uuid.UUID) (*domain.WorkoutDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.workouts {
		if w.ID != id {
			continue
		}
		detail := &domain.WorkoutDetail{Workout: w, Exercises: []domain.WorkoutEntry{}}
		for _, e := range s.entries {
			if e.WorkoutID == id {
				ex, _ := s.exercises.byID(e.ExerciseID)
				detail.Exercises = append(detail.Exercises, domain.WorkoutEntry{WorkoutExercise: e, Exercise: ex})
			}
		}
		sort.SliceStable(detail.Exercises, func(i, j int) bool {
			return detail.Exercises[i].OrderIndex < detail.Exercises[j].OrderIndex
		})
		return detail, nil
	}
	return nil, store.ErrWorkoutNotFound
}

func (s *memWorkoutStore) AddExercise(_ context.Context, e *domain.WorkoutExercise) (*domain.WorkoutExercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, w := range s.workouts {
		if w.ID == e.WorkoutID {
			found = true
		}
	}
	if _, ok := s.exercises.byID(e.ExerciseID); !found || !ok {
		return nil, store.NewStoreError("workout_exercise", "create", store.ErrInvalidEntity)
	}
	s.entries = append(s.entries, *e)
	created := *e
	return &created, nil
}

func (s *memWorkoutStore) RemoveExercise(_ context.Context, workoutID, entryID, userID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owned := false
	for _, w := range s.workouts {
		if w.ID == workoutID && w.UserID == userID {
			owned = true
		}
	}
	if !owned {
		return false, nil
	}
	for i, e := range s.entries {
		if e.ID == entryID && e.WorkoutID == workoutID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *memWorkoutStore) Delete(_ context.Context, id, userID uuid.UUID) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.workouts {
		if w.ID == id && w.UserID == userID {
			s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// memFavoriteStore is an in-memory store.FavoriteStore joined against a
// memVideoStore. It keeps duplicate pairs.
type memFavoriteStore struct {
	mu        sync.Mutex
	favorites []domain.VideoFavorite
	videos    *memVideoStore
}

func (s *memFavoriteStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteWithVideo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.FavoriteWithVideo{}
	for _, f := range s.favorites {
		if f.UserID != userID {
			continue
		}
		v, err := s.videos.GetByID(ctx, f.VideoID)
		if err != nil {
			continue
		}
		out = append(out, domain.FavoriteWithVideo{VideoFavorite: f, Video: *v})
	}
	return out, nil
}

func (s *memFavoriteStore) Create(ctx context.Context, f *domain.VideoFavorite) (*domain.VideoFavorite, error) {
	if _, err := s.videos.GetByID(ctx, f.VideoID); err != nil {
		return nil, store.NewStoreError("favorite", "create", store.ErrInvalidEntity)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = append(s.favorites, *f)
	created := *f
	return &created, nil
}

func (s *memFavoriteStore) Delete(_ context.Context, userID, videoID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.favorites[:0]
	var n int64
	for _, f := range s.favorites {
		if f.UserID == userID && f.VideoID == videoID {
			n++
			continue
		}
		kept = append(kept, f)
	}
	s.favorites = kept
	return n, nil
}

type stubPinger struct{ err error }

func (p *stubPinger) Ping(context.Context) error { return p.err }

// testEnv wires the handlers over in-memory stores behind a real chi router.
type testEnv struct {
	profiles  *memProfileStore
	videos    *memVideoStore
	exercises *memExerciseStore
	workouts  *memWorkoutStore
	favorites *memFavoriteStore
	pinger    *stubPinger
	router    http.Handler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		profiles:  newMemProfileStore(),
		videos:    &memVideoStore{},
		exercises: &memExerciseStore{},
		pinger:    &stubPinger{},
	}
	env.workouts = &memWorkoutStore{exercises: env.exercises}
	env.favorites = &memFavoriteStore{videos: env.videos}

	log := quietLogger()
	handlers := &Handlers{
		Auth:      NewAuthHandler(env.profiles, auth.NewBcryptHasher(bcrypt.MinCost), log),
		Catalog:   NewCatalogHandler(env.videos, env.exercises, log),
		Workouts:  NewWorkoutHandler(env.workouts, log),
		Favorites: NewFavoriteHandler(env.favorites, log),
		Profiles:  NewProfileHandler(env.profiles, log),
		Health:    NewHealthHandler(env.pinger, log),
	}

	r := chi.NewRouter()
	r.Use(middleware.Trace(log))
	r.Route("/api", handlers.Routes)
	env.router = r
	return env
}

func strPtr(s string) *string { return &s }

// do sends a request through the env router. A non-empty userID is sent as
// the X-User-ID header; body is JSON-encoded unless it is already a string.
func (env *testEnv) do(t *testing.T, method, path string, body any, userID string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}

	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[shared.ErrorResponse](t, rr).Error
}
