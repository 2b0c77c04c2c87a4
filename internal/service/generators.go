package service

import (
	"context"

	"github.com/phrazzld/elearn-api/internal/generation"
)

// ContentGenerator produces learning material for a new topic.
type ContentGenerator interface {
	Generate(ctx context.Context, topic, difficultyLevel string) generation.TopicContent
}

// QuizGenerator produces a quiz tuned to previous performance.
type QuizGenerator interface {
	Generate(ctx context.Context, topic, userLevel string, previousPerformance float64) generation.AdaptiveQuiz
}

// RecommendationGenerator suggests what to study next.
type RecommendationGenerator interface {
	Generate(ctx context.Context, userTopics []string, performance map[string]float64) []string
}

var (
	_ ContentGenerator        = (*generation.ContentGenerator)(nil)
	_ QuizGenerator           = (*generation.QuizGenerator)(nil)
	_ RecommendationGenerator = (*generation.RecommendationGenerator)(nil)
)
