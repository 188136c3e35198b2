package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var favoriteRowColumns = []string{"id", "user_id", "video_id", "created_at"}

func expectFavoriteCreate(mock sqlmock.Sqlmock, f *domain.VideoFavorite) {
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO video_favorites").
		WithArgs(f.ID.String(), f.UserID.String(), f.VideoID.String(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM video_favorites WHERE id = \\$1").
		WillReturnRows(sqlmock.NewRows(favoriteRowColumns).
			AddRow(f.ID.String(), f.UserID.String(), f.VideoID.String(), fixedTime))
	mock.ExpectCommit()
}

func TestPostgresFavoriteStore_CreateTwice(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresFavoriteStore(db, quietLogger())
	userID, videoID := uuid.New(), uuid.New()

	first, err := domain.NewVideoFavorite(userID, videoID)
	require.NoError(t, err)
	second, err := domain.NewVideoFavorite(userID, videoID)
	require.NoError(t, err)

	expectFavoriteCreate(mock, first)
	expectFavoriteCreate(mock, second)

	a, err := s.Create(context.Background(), first)
	require.NoError(t, err)
	b, err := s.Create(context.Background(), second)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.VideoID, b.VideoID)
}

func TestPostgresFavoriteStore_CreateUnknownVideo(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresFavoriteStore(db, quietLogger())

	f, err := domain.NewVideoFavorite(uuid.New(), uuid.New())
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO video_favorites").
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "video_favorites_video_id_fkey"})
	mock.ExpectRollback()

	_, err = s.Create(context.Background(), f)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestPostgresFavoriteStore_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresFavoriteStore(db, quietLogger())
	userID, videoID := uuid.New(), uuid.New()

	rows := sqlmock.NewRows(append(append([]string{}, favoriteRowColumns...), videoRowColumns...)).
		AddRow(uuid.NewString(), userID.String(), videoID.String(), fixedTime,
			videoID.String(), "Morning Yoga", nil, nil, nil, int64(25), "yoga", "beginner", nil, fixedTime)
	mock.ExpectQuery("FROM video_favorites vf\\s+JOIN videos v").
		WithArgs(userID.String()).
		WillReturnRows(rows)

	favorites, err := s.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, videoID, favorites[0].VideoID)
	assert.Equal(t, "Morning Yoga", favorites[0].Video.Title)
	assert.Equal(t, 25, *favorites[0].Video.DurationMinutes)
}

func TestPostgresFavoriteStore_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresFavoriteStore(db, quietLogger())
	userID, videoID := uuid.New(), uuid.New()

	mock.ExpectExec("DELETE FROM video_favorites WHERE user_id = \\$1 AND video_id = \\$2").
		WithArgs(userID.String(), videoID.String()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	n, err := s.Delete(context.Background(), userID, videoID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	mock.ExpectExec("DELETE FROM video_favorites").WillReturnResult(sqlmock.NewResult(0, 0))
	n, err = s.Delete(context.Background(), userID, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, n)
}
