package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
)

// ProgressStore persists progress records. There is at most one record per
// user and topic.
type ProgressStore interface {
	// Create returns ErrProgressExists if a record for the pair exists.
	Create(ctx context.Context, record *domain.ProgressRecord) error

	// Get returns ErrProgressNotFound when there is no record for the pair.
	Get(ctx context.Context, userID, topicID uuid.UUID) (*domain.ProgressRecord, error)

	// ListByUser returns every record of the user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ProgressRecord, error)

	// Update writes score, completion, time spent and last access.
	// Returns ErrProgressNotFound if the record is gone.
	Update(ctx context.Context, record *domain.ProgressRecord) error

	WithTx(tx *sql.Tx) ProgressStore
}
