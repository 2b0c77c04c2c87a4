package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/elearn-api/internal/config"
	"github.com/phrazzld/elearn-api/internal/generation"
	"github.com/phrazzld/elearn-api/internal/platform/anthropic"
	"github.com/phrazzld/elearn-api/internal/platform/gemini"
	"github.com/phrazzld/elearn-api/internal/platform/openai"
	"github.com/phrazzld/elearn-api/internal/platform/postgres"
	"github.com/phrazzld/elearn-api/internal/service"
	"github.com/phrazzld/elearn-api/internal/service/auth"
	"github.com/phrazzld/elearn-api/internal/store"
)

// application holds the wired dependencies shared by the router and the
// server lifecycle.
type application struct {
	config *config.Config
	logger *slog.Logger

	jwtService auth.JWTService

	userService           service.UserService
	topicService          service.TopicService
	quizService           service.QuizService
	progressService       service.ProgressService
	recommendationService service.RecommendationService
	sessionService        service.SessionService
}

// newApplication builds stores, generators and services on top of an open
// database connection.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	provider, err := newProvider(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	logger.Info("LLM provider initialized",
		slog.String("provider", cfg.LLM.Provider),
		slog.String("model", cfg.LLM.ModelName))

	genOpts := []generation.Option{
		generation.WithModel(cfg.LLM.ModelName),
		generation.WithTimeout(time.Duration(cfg.LLM.TimeoutSeconds) * time.Second),
	}

	users := postgres.NewUserStore(db, logger)
	topics := postgres.NewTopicStore(db, logger)
	quizzes := postgres.NewQuizStore(db, logger)
	progress := postgres.NewProgressStore(db, logger)
	sessions := postgres.NewSessionStore(db, logger)
	tx := store.DBTransactor{DB: db}

	app := &application{
		config:     cfg,
		logger:     logger,
		jwtService: jwtService,
		userService: service.NewUserService(
			users, tx, auth.NewBcryptHasher(cfg.Auth.BCryptCost), logger,
		),
		topicService: service.NewTopicService(
			topics, quizzes, progress, tx,
			generation.NewContentGenerator(provider, logger, genOpts...),
			logger,
		),
		quizService: service.NewQuizService(
			users, topics, quizzes, progress, tx,
			generation.NewQuizGenerator(provider, logger, genOpts...),
			logger,
		),
		progressService: service.NewProgressService(topics, progress, tx, logger),
		recommendationService: service.NewRecommendationService(
			topics, progress,
			generation.NewRecommendationGenerator(provider, logger, genOpts...),
			logger,
		),
		sessionService: service.NewSessionService(topics, sessions, tx, logger),
	}

	logger.Info("application initialized")
	return app, nil
}

// newProvider creates the configured LLM provider wrapped with retries.
func newProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Provider, error) {
	var (
		provider generation.Provider
		err      error
	)
	switch cfg.Provider {
	case "openai":
		provider, err = openai.New(openai.Config{
			APIKey:    cfg.APIKey,
			ModelName: cfg.ModelName,
			BaseURL:   cfg.BaseURL,
		}, logger)
	case "gemini":
		provider, err = gemini.New(ctx, gemini.Config{
			APIKey:    cfg.APIKey,
			ModelName: cfg.ModelName,
		}, logger)
	case "anthropic":
		provider, err = anthropic.New(anthropic.Config{
			APIKey:    cfg.APIKey,
			ModelName: cfg.ModelName,
			BaseURL:   cfg.BaseURL,
		}, logger)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return generation.NewRetryingProvider(provider, generation.RetryPolicy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  time.Duration(cfg.RetryDelaySeconds) * time.Second,
	}, logger), nil
}

// Run serves the API until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
