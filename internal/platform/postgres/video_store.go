package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/store"
	"github.com/google/uuid"
)

const videoColumns = `id, title, description, video_url, thumbnail_url, duration_minutes, category, difficulty_level, instructor_name, created_at`

// PostgresVideoStore implements store.VideoStore.
type PostgresVideoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVideoStore creates a VideoStore over db.
func NewPostgresVideoStore(db store.DBTX, logger *slog.Logger) *PostgresVideoStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVideoStore{
		db:     db,
		logger: logger.With(slog.String("component", "video_store")),
	}
}

var _ store.VideoStore = (*PostgresVideoStore)(nil)

// buildVideoQuery renders the listing query for filter. Each set field adds
// an equality condition; conditions are joined with AND.
func buildVideoQuery(filter domain.VideoFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Difficulty != "" {
		args = append(args, filter.Difficulty)
		conds = append(conds, fmt.Sprintf("difficulty_level = $%d", len(args)))
	}

	query := `SELECT ` + videoColumns + ` FROM videos`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at, id`
	return query, args
}

// List implements store.VideoStore.List.
func (s *PostgresVideoStore) List(ctx context.Context, filter domain.VideoFilter) (videos []domain.Video, err error) {
	defer observe("list", "videos", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args := buildVideoQuery(filter)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query videos", slog.String("error", err.Error()))
		return nil, store.NewStoreError("video", "list", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	videos = []domain.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, store.NewStoreError("video", "list", err)
		}
		videos = append(videos, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("video", "list", err)
	}

	log.Debug("listed videos",
		slog.String("category", filter.Category),
		slog.String("difficulty", filter.Difficulty),
		slog.Int("count", len(videos)))
	return videos, nil
}

// GetByID implements store.VideoStore.GetByID.
func (s *PostgresVideoStore) GetByID(ctx context.Context, id uuid.UUID) (v *domain.Video, err error) {
	defer observe("get", "videos", time.Now(), &err)

	row := s.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id)
	v, err = scanVideo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrVideoNotFound
		}
		return nil, store.NewStoreError("video", "get", MapError(err))
	}
	return v, nil
}

func scanVideo(row rowScanner) (*domain.Video, error) {
	var v domain.Video
	if err := row.Scan(
		&v.ID,
		&v.Title,
		&v.Description,
		&v.VideoURL,
		&v.ThumbnailURL,
		&v.DurationMinutes,
		&v.Category,
		&v.DifficultyLevel,
		&v.InstructorName,
		&v.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
