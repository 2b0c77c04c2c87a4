package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/generation"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/store"
)

// QuizService grades submissions and builds adaptive quizzes.
type QuizService interface {
	// Submit grades answers, keyed by quiz ID, and stores the score on the
	// learner's progress record, creating the record if needed.
	Submit(ctx context.Context, userID, topicID uuid.UUID, answers map[uuid.UUID]string) (*domain.QuizScore, error)
	// Adaptive builds a quiz from the learner's level and last score on the
	// topic. A learner without a progress record counts as scoring 0.
	Adaptive(ctx context.Context, userID, topicID uuid.UUID) (*generation.AdaptiveQuiz, error)
}

type quizService struct {
	users     store.UserStore
	topics    store.TopicStore
	quizzes   store.QuizStore
	progress  store.ProgressStore
	tx        store.Transactor
	generator QuizGenerator
	logger    *slog.Logger
	now       func() time.Time
}

var _ QuizService = (*quizService)(nil)

// NewQuizService creates a QuizService.
func NewQuizService(
	users store.UserStore,
	topics store.TopicStore,
	quizzes store.QuizStore,
	progress store.ProgressStore,
	tx store.Transactor,
	generator QuizGenerator,
	logger *slog.Logger,
) QuizService {
	if logger == nil {
		logger = slog.Default()
	}
	return &quizService{
		users:     users,
		topics:    topics,
		quizzes:   quizzes,
		progress:  progress,
		tx:        tx,
		generator: generator,
		logger:    logger.With(slog.String("component", "quiz_service")),
		now:       time.Now,
	}
}

func (s *quizService) Submit(
	ctx context.Context,
	userID, topicID uuid.UUID,
	answers map[uuid.UUID]string,
) (*domain.QuizScore, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	topic, err := s.topics.GetByID(ctx, userID, topicID)
	if err != nil {
		return nil, NewServiceError("submit_quiz", "failed to load topic", err)
	}
	quizzes, err := s.quizzes.ListByTopic(ctx, topic.ID)
	if err != nil {
		return nil, NewServiceError("submit_quiz", "failed to load quizzes", err)
	}

	score := domain.ScoreQuiz(quizzes, answers)
	update := domain.ProgressUpdate{QuizScore: &score.Score}

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		progress := s.progress.WithTx(tx)

		record, err := progress.Get(ctx, userID, topic.ID)
		if errors.Is(err, store.ErrProgressNotFound) {
			record, err = domain.NewProgressRecord(userID, topic.ID)
			if err != nil {
				return err
			}
			if err := record.UpdateProgress(update, s.now()); err != nil {
				return err
			}
			return progress.Create(ctx, record)
		}
		if err != nil {
			return err
		}

		if err := record.UpdateProgress(update, s.now()); err != nil {
			return err
		}
		return progress.Update(ctx, record)
	})
	if err != nil {
		log.Error("failed to record quiz score",
			slog.String("topic_id", topic.ID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("submit_quiz", "failed to record score", err)
	}

	log.Info("quiz submitted",
		slog.String("topic_id", topic.ID.String()),
		slog.Float64("score", score.Score))
	return &score, nil
}

func (s *quizService) Adaptive(ctx context.Context, userID, topicID uuid.UUID) (*generation.AdaptiveQuiz, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, NewServiceError("adaptive_quiz", "failed to load user", err)
	}
	topic, err := s.topics.GetByID(ctx, userID, topicID)
	if err != nil {
		return nil, NewServiceError("adaptive_quiz", "failed to load topic", err)
	}

	var previous float64
	record, err := s.progress.Get(ctx, userID, topic.ID)
	switch {
	case err == nil:
		previous = record.QuizScore
	case !errors.Is(err, store.ErrProgressNotFound):
		return nil, NewServiceError("adaptive_quiz", "failed to load progress", err)
	}

	quiz := s.generator.Generate(ctx, topic.Title, string(user.LearningLevel), previous)
	return &quiz, nil
}
