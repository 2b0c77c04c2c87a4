package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
)

// SessionStore persists learning sessions.
type SessionStore interface {
	Create(ctx context.Context, session *domain.LearningSession) error

	// GetByID returns ErrSessionNotFound if the session does not exist or
	// belongs to another user.
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error)

	// Update writes end time, duration and activities.
	Update(ctx context.Context, session *domain.LearningSession) error

	WithTx(tx *sql.Tx) SessionStore
}
