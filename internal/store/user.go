package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
)

// UserStore persists users.
type UserStore interface {
	// Create stores a user whose HashedPassword is already set.
	// Returns ErrUsernameExists or ErrEmailExists on conflicts.
	Create(ctx context.Context, user *domain.User) error

	// GetByID returns ErrUserNotFound if no user has id.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername returns ErrUserNotFound if no user has username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// WithTx returns a UserStore bound to tx.
	WithTx(tx *sql.Tx) UserStore
}
