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

// TopicStore implements store.TopicStore.
type TopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.TopicStore = (*TopicStore)(nil)

// NewTopicStore returns a TopicStore backed by db.
func NewTopicStore(db store.DBTX, logger *slog.Logger) *TopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

// WithTx implements store.TopicStore.
func (s *TopicStore) WithTx(tx *sql.Tx) store.TopicStore {
	return &TopicStore{db: tx, logger: s.logger}
}

// Create implements store.TopicStore.
func (s *TopicStore) Create(ctx context.Context, topic *domain.Topic) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := topic.Validate(); err != nil {
		return err
	}

	var content any
	if len(topic.Content) > 0 {
		content = []byte(topic.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO topics (id, user_id, title, description, content, difficulty_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		topic.ID, topic.UserID, topic.Title, topic.Description, content,
		string(topic.DifficultyLevel), topic.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create topic",
			slog.String("error", err.Error()),
			slog.String("topic_id", topic.ID.String()))
		return MapError(err)
	}

	log.Debug("topic created", slog.String("topic_id", topic.ID.String()))
	return nil
}

const selectTopic = `
	SELECT id, user_id, title, description, content, difficulty_level, created_at
	FROM topics`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTopic(row rowScanner) (*domain.Topic, error) {
	var t domain.Topic
	var content []byte
	var level string
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &content, &level, &t.CreatedAt); err != nil {
		return nil, err
	}
	if len(content) > 0 {
		t.Content = content
	}
	t.DifficultyLevel = domain.LearningLevel(level)
	return &t, nil
}

// GetByID implements store.TopicStore.
func (s *TopicStore) GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	t, err := scanTopic(s.db.QueryRowContext(ctx, selectTopic+` WHERE id = $1 AND user_id = $2`, topicID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTopicNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load topic", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return t, nil
}

// ListByUser implements store.TopicStore.
func (s *TopicStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error) {
	rows, err := s.db.QueryContext(ctx, selectTopic+` WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var topics []*domain.Topic
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, MapError(err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return topics, nil
}
