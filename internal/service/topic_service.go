package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/generation"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/store"
)

// CreateTopicInput is the data a learner sends to start a topic.
type CreateTopicInput struct {
	Title           string
	Description     string
	DifficultyLevel string
}

// TopicDetail is a topic together with its quiz questions.
type TopicDetail struct {
	Topic   *domain.Topic
	Quizzes []*domain.Quiz
}

// TopicSummary pairs a topic with the learner's progress on it. Progress is
// nil when no record exists.
type TopicSummary struct {
	Topic    *domain.Topic
	Progress *domain.ProgressRecord
}

// TopicService creates and reads topics.
type TopicService interface {
	// Create generates content for the topic and stores the topic, its quizzes
	// and an empty progress record in one transaction.
	Create(ctx context.Context, userID uuid.UUID, in CreateTopicInput) (*TopicDetail, error)
	List(ctx context.Context, userID uuid.UUID) ([]TopicSummary, error)
	// Get returns ErrTopicNotFound for topics owned by someone else.
	Get(ctx context.Context, userID, topicID uuid.UUID) (*TopicDetail, error)
}

type topicService struct {
	topics    store.TopicStore
	quizzes   store.QuizStore
	progress  store.ProgressStore
	tx        store.Transactor
	generator ContentGenerator
	logger    *slog.Logger
}

var _ TopicService = (*topicService)(nil)

// NewTopicService creates a TopicService.
func NewTopicService(
	topics store.TopicStore,
	quizzes store.QuizStore,
	progress store.ProgressStore,
	tx store.Transactor,
	generator ContentGenerator,
	logger *slog.Logger,
) TopicService {
	if logger == nil {
		logger = slog.Default()
	}
	return &topicService{
		topics:    topics,
		quizzes:   quizzes,
		progress:  progress,
		tx:        tx,
		generator: generator,
		logger:    logger.With(slog.String("component", "topic_service")),
	}
}

func (s *topicService) Create(ctx context.Context, userID uuid.UUID, in CreateTopicInput) (*TopicDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	level, err := domain.ParseLearningLevel(in.DifficultyLevel)
	if err != nil {
		return nil, NewServiceError("create_topic", "invalid difficulty level", err)
	}

	topic, err := domain.NewTopic(userID, in.Title, in.Description, level, nil)
	if err != nil {
		return nil, NewServiceError("create_topic", "invalid topic", err)
	}

	content := s.generator.Generate(ctx, topic.Title, string(level))
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, NewServiceError("create_topic", "failed to encode content", err)
	}
	topic.Content = raw

	quizzes := lo.FilterMap(content.Quizzes, func(q generation.QuizQuestion, i int) (*domain.Quiz, bool) {
		quiz, err := domain.NewQuiz(topic.ID, q.Question, q.Options, q.CorrectAnswer, q.Explanation, q.Difficulty)
		if err != nil {
			log.Warn("skipping generated question",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			return nil, false
		}
		return quiz, true
	})

	record, err := domain.NewProgressRecord(userID, topic.ID)
	if err != nil {
		return nil, NewServiceError("create_topic", "invalid progress record", err)
	}

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.topics.WithTx(tx).Create(ctx, topic); err != nil {
			return err
		}
		if len(quizzes) > 0 {
			if err := s.quizzes.WithTx(tx).CreateMultiple(ctx, quizzes); err != nil {
				return err
			}
		}
		return s.progress.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		log.Error("failed to save topic",
			slog.String("topic_id", topic.ID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("create_topic", "failed to save topic", err)
	}

	log.Info("topic created",
		slog.String("topic_id", topic.ID.String()),
		slog.Int("quiz_count", len(quizzes)))
	return &TopicDetail{Topic: topic, Quizzes: quizzes}, nil
}

func (s *topicService) List(ctx context.Context, userID uuid.UUID) ([]TopicSummary, error) {
	topics, err := s.topics.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("list_topics", "failed to list topics", err)
	}
	records, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("list_topics", "failed to list progress", err)
	}

	byTopic := lo.KeyBy(records, func(r *domain.ProgressRecord) uuid.UUID { return r.TopicID })
	return lo.Map(topics, func(t *domain.Topic, _ int) TopicSummary {
		return TopicSummary{Topic: t, Progress: byTopic[t.ID]}
	}), nil
}

func (s *topicService) Get(ctx context.Context, userID, topicID uuid.UUID) (*TopicDetail, error) {
	topic, err := s.topics.GetByID(ctx, userID, topicID)
	if err != nil {
		return nil, NewServiceError("get_topic", "failed to load topic", err)
	}
	quizzes, err := s.quizzes.ListByTopic(ctx, topic.ID)
	if err != nil {
		return nil, NewServiceError("get_topic", "failed to load quizzes", err)
	}
	return &TopicDetail{Topic: topic, Quizzes: quizzes}, nil
}
