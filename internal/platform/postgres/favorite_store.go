package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/store"
	"github.com/google/uuid"
)

const favoriteColumns = `id, user_id, video_id, created_at`

// PostgresFavoriteStore implements store.FavoriteStore.
type PostgresFavoriteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresFavoriteStore creates a FavoriteStore over db.
func NewPostgresFavoriteStore(db *sql.DB, logger *slog.Logger) *PostgresFavoriteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFavoriteStore{
		db:     db,
		logger: logger.With(slog.String("component", "favorite_store")),
	}
}

var _ store.FavoriteStore = (*PostgresFavoriteStore)(nil)

// ListByUser implements store.FavoriteStore.ListByUser.
func (s *PostgresFavoriteStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) (favorites []domain.FavoriteWithVideo, err error) {
	defer observe("list_by_user", "video_favorites", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT vf.id, vf.user_id, vf.video_id, vf.created_at,
		       v.id, v.title, v.description, v.video_url, v.thumbnail_url, v.duration_minutes,
		       v.category, v.difficulty_level, v.instructor_name, v.created_at
		FROM video_favorites vf
		JOIN videos v ON v.id = vf.video_id
		WHERE vf.user_id = $1
		ORDER BY vf.created_at DESC, vf.id
	`, userID)
	if err != nil {
		log.Error("failed to query favorites",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("favorite", "list", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	favorites = []domain.FavoriteWithVideo{}
	for rows.Next() {
		var f domain.FavoriteWithVideo
		if err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.VideoID,
			&f.VideoFavorite.CreatedAt,
			&f.Video.ID,
			&f.Video.Title,
			&f.Video.Description,
			&f.Video.VideoURL,
			&f.Video.ThumbnailURL,
			&f.Video.DurationMinutes,
			&f.Video.Category,
			&f.Video.DifficultyLevel,
			&f.Video.InstructorName,
			&f.Video.CreatedAt,
		); err != nil {
			return nil, store.NewStoreError("favorite", "list", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("favorite", "list", err)
	}
	return favorites, nil
}

// Create implements store.FavoriteStore.Create.
// Returns store.ErrInvalidEntity if the user or video does not exist.
func (s *PostgresFavoriteStore) Create(
	ctx context.Context,
	favorite *domain.VideoFavorite,
) (created *domain.VideoFavorite, err error) {
	defer observe("create", "video_favorites", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO video_favorites (id, user_id, video_id, created_at)
			VALUES ($1, $2, $3, $4)
		`, favorite.ID, favorite.UserID, favorite.VideoID, favorite.CreatedAt)
		if err != nil {
			return store.NewStoreError("favorite", "create", MapError(err))
		}

		var f domain.VideoFavorite
		err = tx.QueryRowContext(ctx,
			`SELECT `+favoriteColumns+` FROM video_favorites WHERE id = $1`, favorite.ID,
		).Scan(&f.ID, &f.UserID, &f.VideoID, &f.CreatedAt)
		if err != nil {
			return store.NewStoreError("favorite", "create", MapError(err))
		}
		created = &f
		return nil
	})
	if err != nil {
		log.Error("failed to create favorite",
			slog.String("error", err.Error()),
			slog.String("user_id", favorite.UserID.String()),
			slog.String("video_id", favorite.VideoID.String()))
		return nil, err
	}

	log.Info("favorite created",
		slog.String("favorite_id", created.ID.String()),
		slog.String("video_id", created.VideoID.String()))
	return created, nil
}

// Delete implements store.FavoriteStore.Delete.
func (s *PostgresFavoriteStore) Delete(ctx context.Context, userID, videoID uuid.UUID) (n int64, err error) {
	defer observe("delete", "video_favorites", time.Now(), &err)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM video_favorites WHERE user_id = $1 AND video_id = $2`, userID, videoID)
	if err != nil {
		return 0, store.NewStoreError("favorite", "delete", MapError(err))
	}

	n, err = rowsAffected(result)
	if err != nil {
		return 0, store.NewStoreError("favorite", "delete", err)
	}
	return n, nil
}
