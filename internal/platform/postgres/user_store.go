package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/store"
)

// UserStore implements store.UserStore.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore returns a UserStore backed by db.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// WithTx implements store.UserStore.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{db: tx, logger: s.logger}
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.HashedPassword == "" {
		return domain.ErrEmptyHashedPassword
	}
	if err := user.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, hashed_password, learning_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.HashedPassword,
		string(user.LearningLevel), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsDuplicateError(mapped) {
			log.Debug("duplicate user", slog.String("user_id", user.ID.String()))
			return mapped
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return mapped
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return nil
}

const selectUser = `
	SELECT id, username, email, hashed_password, learning_level, created_at, updated_at
	FROM users`

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var level string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &level, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.LearningLevel = domain.LearningLevel(level)
	return &u, nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id))
	return s.userResult(ctx, u, err)
}

// GetByUsername implements store.UserStore.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, selectUser+` WHERE username = $1`, username))
	return s.userResult(ctx, u, err)
}

func (s *UserStore) userResult(ctx context.Context, u *domain.User, err error) (*domain.User, error) {
	if err == nil {
		return u, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrUserNotFound
	}
	logger.FromContextOrDefault(ctx, s.logger).Error("failed to load user", slog.String("error", err.Error()))
	return nil, MapError(err)
}
