package generation

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// QuizGenerator produces quizzes that track learner performance.
type QuizGenerator struct {
	caller
}

// NewQuizGenerator returns a QuizGenerator backed by provider.
func NewQuizGenerator(provider Provider, logger *slog.Logger, opts ...Option) *QuizGenerator {
	return &QuizGenerator{caller: newCaller(provider, logger, "quiz_generator", opts)}
}

// Generate returns a quiz for topic whose difficulty follows
// DifficultyForScore(previousPerformance). Any failure yields
// FallbackAdaptiveQuiz(topic).
func (g *QuizGenerator) Generate(ctx context.Context, topic, userLevel string, previousPerformance float64) AdaptiveQuiz {
	difficulty := DifficultyForScore(previousPerformance)

	ctx, span := g.startSpan(ctx, "generation.adaptive_quiz",
		attribute.String("topic", topic),
		attribute.String("user_level", userLevel),
		attribute.Float64("previous_performance", previousPerformance),
		attribute.String("difficulty", string(difficulty)),
	)
	defer span.End()

	text, err := g.complete(ctx, adaptiveQuizPrompt(topic, userLevel, previousPerformance, difficulty), true)
	if err == nil {
		var quiz AdaptiveQuiz
		quiz, err = Parse[AdaptiveQuiz](AdaptiveQuizSchema, text)
		if err == nil {
			span.SetAttributes(attribute.Int("quiz.count", len(quiz.Questions)))
			return quiz
		}
	}

	g.fallback(ctx, span, "adaptive_quiz", err,
		slog.String("topic", topic),
		slog.String("difficulty", string(difficulty)),
	)
	return FallbackAdaptiveQuiz(topic)
}
