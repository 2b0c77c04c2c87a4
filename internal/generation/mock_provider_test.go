package generation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/elearn-api/internal/generation"
	"github.com/phrazzld/elearn-api/internal/mocks"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecommendationGeneratorRequest(t *testing.T) {
	t.Parallel()

	provider := &mocks.Provider{}
	provider.On("Complete", mock.Anything, mock.MatchedBy(func(req generation.Request) bool {
		return req.Model == "gpt-4o-mini" &&
			req.Temperature == generation.Temperature &&
			!req.JSONResponse &&
			len(req.Messages) > 0
	})).Return(`Try these: ["Channels", "Generics"]`, nil).Once()

	gen := generation.NewRecommendationGenerator(provider, quietLogger(), generation.WithModel("gpt-4o-mini"))
	got := gen.Generate(context.Background(), []string{"Go basics"}, map[string]float64{"Go basics": 85})

	assert.Equal(t, []string{"Channels", "Generics"}, got)
	provider.AssertExpectations(t)
}

func TestContentGeneratorFallsBackThroughRetries(t *testing.T) {
	t.Parallel()

	provider := &mocks.Provider{}
	provider.On("Complete", mock.Anything, mock.MatchedBy(func(req generation.Request) bool {
		return req.JSONResponse
	})).Return("", errors.New("503 service unavailable")).Times(3)

	retrying := generation.NewRetryingProvider(provider, generation.RetryPolicy{MaxRetries: 2}, quietLogger())
	gen := generation.NewContentGenerator(retrying, quietLogger())

	got := gen.Generate(context.Background(), "Rust ownership", "beginner")

	assert.Equal(t, generation.FallbackTopicContent("Rust ownership"), got)
	provider.AssertExpectations(t)
}
