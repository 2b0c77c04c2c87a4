package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/elearn-api/internal/generation"
)

// ContentGenerator is a testify mock of the topic content generator.
type ContentGenerator struct {
	mock.Mock
}

func (m *ContentGenerator) Generate(ctx context.Context, topic, difficultyLevel string) generation.TopicContent {
	return m.Called(ctx, topic, difficultyLevel).Get(0).(generation.TopicContent)
}

// QuizGenerator is a testify mock of the adaptive quiz generator.
type QuizGenerator struct {
	mock.Mock
}

func (m *QuizGenerator) Generate(
	ctx context.Context,
	topic, userLevel string,
	previousPerformance float64,
) generation.AdaptiveQuiz {
	return m.Called(ctx, topic, userLevel, previousPerformance).Get(0).(generation.AdaptiveQuiz)
}

// RecommendationGenerator is a testify mock of the recommendation generator.
type RecommendationGenerator struct {
	mock.Mock
}

func (m *RecommendationGenerator) Generate(
	ctx context.Context,
	userTopics []string,
	performance map[string]float64,
) []string {
	recs, _ := m.Called(ctx, userTopics, performance).Get(0).([]string)
	return recs
}

// Provider is a testify mock of generation.Provider.
type Provider struct {
	mock.Mock
}

var _ generation.Provider = (*Provider)(nil)

func (m *Provider) Complete(ctx context.Context, req generation.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
