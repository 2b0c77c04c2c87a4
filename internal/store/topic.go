package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
)

// TopicStore persists topics. Reads are always scoped to the owning user.
type TopicStore interface {
	Create(ctx context.Context, topic *domain.Topic) error

	// GetByID returns ErrTopicNotFound when the topic does not exist or
	// belongs to another user.
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)

	// ListByUser returns the user's topics, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error)

	WithTx(tx *sql.Tx) TopicStore
}
