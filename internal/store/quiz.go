package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
)

// QuizStore persists quiz questions.
type QuizStore interface {
	// CreateMultiple inserts all quizzes or none of them.
	CreateMultiple(ctx context.Context, quizzes []*domain.Quiz) error

	// ListByTopic returns the questions of a topic in creation order.
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.Quiz, error)

	WithTx(tx *sql.Tx) QuizStore
}
