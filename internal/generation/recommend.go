package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// RecommendationGenerator suggests what a learner should study next.
type RecommendationGenerator struct {
	caller
}

// NewRecommendationGenerator returns a RecommendationGenerator backed by provider.
func NewRecommendationGenerator(provider Provider, logger *slog.Logger, opts ...Option) *RecommendationGenerator {
	return &RecommendationGenerator{caller: newCaller(provider, logger, "recommendation_generator", opts)}
}

// Generate returns topic names extracted from the model's answer. The list is
// not deduplicated and may contain topics the learner already studied. An
// empty answer goes through the comma split and yields a single empty name.
// Any other failure yields a copy of DefaultRecommendations.
func (g *RecommendationGenerator) Generate(ctx context.Context, userTopics []string, performance map[string]float64) []string {
	ctx, span := g.startSpan(ctx, "generation.recommendations",
		attribute.Int("user_topics.count", len(userTopics)),
	)
	defer span.End()

	text, err := g.complete(ctx, recommendationPrompt(userTopics, performance), false)
	if errors.Is(err, ErrEmptyResponse) {
		text, err = "", nil
	}
	if err == nil {
		topics, ok := ExtractTopicList(text)
		if ok {
			span.SetAttributes(attribute.Int("recommendations.count", len(topics)))
			return topics
		}
		err = fmt.Errorf("%w: bracketed list is not valid JSON", ErrInvalidResponse)
	}

	g.fallback(ctx, span, "recommendations", err,
		slog.Int("user_topics", len(userTopics)),
	)
	return defaultRecommendations()
}
