package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/service/auth"
	"github.com/phrazzld/elearn-api/internal/store"
)

// RegisterInput is the data needed to create an account.
type RegisterInput struct {
	Username      string
	Email         string
	Password      string
	LearningLevel string
}

// UserService handles accounts and credential checks.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Authenticate returns ErrInvalidCredentials for an unknown username or a
	// wrong password.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type userService struct {
	users  store.UserStore
	tx     store.Transactor
	hasher auth.PasswordHasher
	logger *slog.Logger
}

var _ UserService = (*userService)(nil)

// NewUserService creates a UserService.
func NewUserService(
	users store.UserStore,
	tx store.Transactor,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		users:  users,
		tx:     tx,
		hasher: hasher,
		logger: logger.With(slog.String("component", "user_service")),
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	level, err := domain.ParseLearningLevel(in.LearningLevel)
	if err != nil {
		return nil, NewServiceError("register", "invalid learning level", err)
	}

	user, err := domain.NewUser(in.Username, in.Email, in.Password, level)
	if err != nil {
		log.Debug("rejected registration", slog.String("error", err.Error()))
		return nil, NewServiceError("register", "invalid user", err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, NewServiceError("register", "failed to hash password", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.users.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("registration conflict",
				slog.String("username", user.Username),
				slog.String("error", err.Error()))
		} else {
			log.Error("failed to save user", slog.String("error", err.Error()))
		}
		return nil, NewServiceError("register", "failed to save user", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login for unknown username")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.String("error", err.Error()))
		return nil, NewServiceError("authenticate", "failed to look up user", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login with wrong password", slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, NewServiceError("get_user", "failed to load user", err)
	}
	return user, nil
}
