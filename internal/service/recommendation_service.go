package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/store"
)

// Recommendations is what to study next along with the history it was
// derived from.
type Recommendations struct {
	Recommendations []string
	UserTopics      []string
	// PerformanceSummary maps topic title to the last quiz score.
	PerformanceSummary map[string]float64
}

// RecommendationService suggests topics based on a learner's history.
type RecommendationService interface {
	// Recommend returns ErrNotOwned unless requesterID equals userID.
	Recommend(ctx context.Context, requesterID, userID uuid.UUID) (*Recommendations, error)
}

type recommendationService struct {
	topics    store.TopicStore
	progress  store.ProgressStore
	generator RecommendationGenerator
	logger    *slog.Logger
}

var _ RecommendationService = (*recommendationService)(nil)

// NewRecommendationService creates a RecommendationService.
func NewRecommendationService(
	topics store.TopicStore,
	progress store.ProgressStore,
	generator RecommendationGenerator,
	logger *slog.Logger,
) RecommendationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &recommendationService{
		topics:    topics,
		progress:  progress,
		generator: generator,
		logger:    logger.With(slog.String("component", "recommendation_service")),
	}
}

func (s *recommendationService) Recommend(ctx context.Context, requesterID, userID uuid.UUID) (*Recommendations, error) {
	if requesterID != userID {
		logger.FromContextOrDefault(ctx, s.logger).Warn("recommendations requested for another user",
			slog.String("requester_id", requesterID.String()),
			slog.String("user_id", userID.String()))
		return nil, ErrNotOwned
	}

	topics, err := s.topics.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("recommend", "failed to list topics", err)
	}
	records, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("recommend", "failed to list progress", err)
	}

	titles := lo.Map(topics, func(t *domain.Topic, _ int) string { return t.Title })
	byTopic := lo.KeyBy(records, func(r *domain.ProgressRecord) uuid.UUID { return r.TopicID })
	performance := make(map[string]float64, len(records))
	for _, t := range topics {
		if r, ok := byTopic[t.ID]; ok {
			performance[t.Title] = r.QuizScore
		}
	}

	return &Recommendations{
		Recommendations:    s.generator.Generate(ctx, titles, performance),
		UserTopics:         titles,
		PerformanceSummary: performance,
	}, nil
}
