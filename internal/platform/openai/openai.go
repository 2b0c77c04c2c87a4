// Package openai implements generation.Provider with langchaingo's OpenAI
// client. Any OpenAI-compatible endpoint can be targeted through BaseURL.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"github.com/phrazzld/elearn-api/internal/generation"
)

// Config holds the settings for an OpenAI-compatible endpoint.
type Config struct {
	APIKey    string
	ModelName string
	// BaseURL overrides the default API endpoint when set.
	BaseURL string
}

// Provider sends completion requests through langchaingo.
type Provider struct {
	llm    llms.Model
	logger *slog.Logger
}

var _ generation.Provider = (*Provider)(nil)

// New builds a Provider from cfg.
func New(cfg Config, logger *slog.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openai API key is required", generation.ErrInvalidConfig)
	}

	opts := []lcopenai.Option{lcopenai.WithToken(cfg.APIKey)}
	if cfg.ModelName != "" {
		opts = append(opts, lcopenai.WithModel(cfg.ModelName))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		llm:    llm,
		logger: logger.With(slog.String("component", "openai_provider")),
	}, nil
}

// Complete implements generation.Provider.
func (p *Provider) Complete(ctx context.Context, req generation.Request) (string, error) {
	messages := make([]llms.MessageContent, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == generation.RoleSystem {
			role = llms.ChatMessageTypeSystem
		}
		messages = append(messages, llms.TextParts(role, m.Content))
	}

	callOpts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.Model != "" {
		callOpts = append(callOpts, llms.WithModel(req.Model))
	}
	if req.JSONResponse {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	p.logger.DebugContext(ctx, "calling openai", slog.String("model", req.Model), slog.Int("messages", len(messages)))

	resp, err := p.llm.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return "", classify(ctx, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", generation.ErrInvalidResponse)
	}

	choice := resp.Choices[0]
	if choice.StopReason == "content_filter" {
		return "", generation.ErrContentBlocked
	}
	if choice.Content == "" {
		return "", generation.ErrEmptyResponse
	}
	return choice.Content, nil
}

// statusPattern matches the status code langchaingo puts in its error text.
var statusPattern = regexp.MustCompile(`status code: (\d{3})`)

// classify maps client errors onto the generation taxonomy. Rate limits,
// request timeouts and 5xx stay transient; other 4xx are permanent.
func classify(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Join(ctxErr, err)
	}

	m := statusPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return fmt.Errorf("openai request failed: %w", err)
	}
	code, _ := strconv.Atoi(m[1])
	switch {
	case code == 408, code == 429, code >= 500:
		return fmt.Errorf("openai request failed with status %d: %w", code, err)
	case code >= 400:
		return fmt.Errorf("%w: status %d: %w", generation.ErrRequestRejected, code, err)
	default:
		return fmt.Errorf("openai request failed: %w", err)
	}
}
