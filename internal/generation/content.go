package generation

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// ContentGenerator produces learning material for a topic.
type ContentGenerator struct {
	caller
}

// NewContentGenerator returns a ContentGenerator backed by provider.
func NewContentGenerator(provider Provider, logger *slog.Logger, opts ...Option) *ContentGenerator {
	return &ContentGenerator{caller: newCaller(provider, logger, "content_generator", opts)}
}

// Generate returns content for topic at the given difficulty level. Any
// failure yields FallbackTopicContent(topic).
func (g *ContentGenerator) Generate(ctx context.Context, topic, difficultyLevel string) TopicContent {
	ctx, span := g.startSpan(ctx, "generation.topic_content",
		attribute.String("topic", topic),
		attribute.String("difficulty_level", difficultyLevel),
	)
	defer span.End()

	text, err := g.complete(ctx, contentPrompt(topic, difficultyLevel), true)
	if err == nil {
		var content TopicContent
		content, err = Parse[TopicContent](TopicContentSchema, text)
		if err == nil {
			span.SetAttributes(attribute.Int("quiz.count", len(content.Quizzes)))
			return content
		}
	}

	g.fallback(ctx, span, "topic_content", err,
		slog.String("topic", topic),
		slog.String("difficulty_level", difficultyLevel),
	)
	return FallbackTopicContent(topic)
}
