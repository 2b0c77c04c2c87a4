package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/store"
)

// QuizStore implements store.QuizStore.
type QuizStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.QuizStore = (*QuizStore)(nil)

// NewQuizStore returns a QuizStore backed by db.
func NewQuizStore(db store.DBTX, logger *slog.Logger) *QuizStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizStore{
		db:     db,
		logger: logger.With(slog.String("component", "quiz_store")),
	}
}

// WithTx implements store.QuizStore.
func (s *QuizStore) WithTx(tx *sql.Tx) store.QuizStore {
	return &QuizStore{db: tx, logger: s.logger}
}

// CreateMultiple implements store.QuizStore. Every quiz is validated before
// anything is written; callers wanting atomic inserts should run it inside a
// transaction.
func (s *QuizStore) CreateMultiple(ctx context.Context, quizzes []*domain.Quiz) error {
	if len(quizzes) == 0 {
		return nil
	}
	for _, q := range quizzes {
		if err := q.Validate(); err != nil {
			return err
		}
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO quizzes (id, topic_id, question, correct_answer, options, explanation, difficulty, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return MapError(err)
	}
	defer func() { _ = stmt.Close() }()

	for _, q := range quizzes {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("%w: options: %v", store.ErrInvalidEntity, err)
		}
		if _, err := stmt.ExecContext(ctx,
			q.ID, q.TopicID, q.Question, q.CorrectAnswer, options, q.Explanation, q.Difficulty, q.CreatedAt,
		); err != nil {
			log.Error("failed to insert quiz",
				slog.String("error", err.Error()),
				slog.String("topic_id", q.TopicID.String()))
			return MapError(err)
		}
	}

	log.Debug("quizzes created", slog.Int("count", len(quizzes)))
	return nil
}

// ListByTopic implements store.QuizStore.
func (s *QuizStore) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.Quiz, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, topic_id, question, correct_answer, options, explanation, difficulty, created_at
		FROM quizzes
		WHERE topic_id = $1
		ORDER BY position`, topicID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	quizzes := []*domain.Quiz{}
	for rows.Next() {
		var q domain.Quiz
		var options []byte
		if err := rows.Scan(&q.ID, &q.TopicID, &q.Question, &q.CorrectAnswer, &options,
			&q.Explanation, &q.Difficulty, &q.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("decode options of quiz %s: %w", q.ID, err)
		}
		if q.Options == nil {
			q.Options = []string{}
		}
		quizzes = append(quizzes, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return quizzes, nil
}
