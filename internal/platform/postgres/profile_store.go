package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/fithub-app/fithub-api/internal/domain"
	"github.com/fithub-app/fithub-api/internal/platform/logger"
	"github.com/fithub-app/fithub-api/internal/store"
	"github.com/google/uuid"
)

const profileColumns = `id, username, email, password_hash, full_name, bio, avatar_url, created_at, updated_at`

// PostgresProfileStore implements the store.ProfileStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProfileStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresProfileStore creates a new PostgreSQL implementation of the ProfileStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProfileStore(db *sql.DB, logger *slog.Logger) *PostgresProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

// Ensure PostgresProfileStore implements store.ProfileStore interface
var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// Create implements store.ProfileStore.Create.
// Returns store.ErrUsernameExists if the username is taken.
func (s *PostgresProfileStore) Create(ctx context.Context, profile *domain.Profile) (err error) {
	defer observe("create", "profiles", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("profile validation failed during create",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return err
	}

	query := `
		INSERT INTO profiles (id, username, email, password_hash, full_name, bio, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.Username,
		profile.Email,
		profile.PasswordHash,
		profile.FullName,
		profile.Bio,
		profile.AvatarURL,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrUsernameExists) {
			log.Warn("username already exists",
				slog.String("username", profile.Username))
		} else {
			log.Error("failed to create profile",
				slog.String("error", err.Error()),
				slog.String("profile_id", profile.ID.String()))
		}
		return store.NewStoreError("profile", "create", mapped)
	}

	log.Info("profile created successfully",
		slog.String("profile_id", profile.ID.String()),
		slog.String("username", profile.Username))
	return nil
}

// GetByID implements store.ProfileStore.GetByID.
func (s *PostgresProfileStore) GetByID(ctx context.Context, id uuid.UUID) (p *domain.Profile, err error) {
	defer observe("get", "profiles", time.Now(), &err)

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return s.getOne(ctx, s.db, query, id)
}

// GetByUsername implements store.ProfileStore.GetByUsername.
func (s *PostgresProfileStore) GetByUsername(ctx context.Context, username string) (p *domain.Profile, err error) {
	defer observe("get_by_username", "profiles", time.Now(), &err)

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`
	return s.getOne(ctx, s.db, query, username)
}

// Update implements store.ProfileStore.Update. The update and the read-back
// share one transaction.
func (s *PostgresProfileStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update domain.ProfileUpdate,
) (p *domain.Profile, err error) {
	defer observe("update", "profiles", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE profiles
			SET full_name = $1, bio = $2, avatar_url = $3, updated_at = $4
			WHERE id = $5
		`, update.FullName, update.Bio, update.AvatarURL, time.Now().UTC(), id)
		if err != nil {
			return store.NewStoreError("profile", "update", MapError(err))
		}

		n, err := rowsAffected(result)
		if err != nil {
			return store.NewStoreError("profile", "update", err)
		}
		if n == 0 {
			return store.ErrProfileNotFound
		}

		p, err = s.getOne(ctx, tx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to update profile",
				slog.String("error", err.Error()),
				slog.String("profile_id", id.String()))
		}
		return nil, err
	}

	log.Info("profile updated", slog.String("profile_id", id.String()))
	return p, nil
}

func (s *PostgresProfileStore) getOne(ctx context.Context, db store.DBTX, query string, arg any) (*domain.Profile, error) {
	p, err := scanProfile(db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.FromContextOrDefault(ctx, s.logger).Debug("profile not found", slog.Any("key", arg))
			return nil, store.ErrProfileNotFound
		}
		return nil, store.NewStoreError("profile", "get", MapError(err))
	}
	return p, nil
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(
		&p.ID,
		&p.Username,
		&p.Email,
		&p.PasswordHash,
		&p.FullName,
		&p.Bio,
		&p.AvatarURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
