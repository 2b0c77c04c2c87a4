// Package anthropic implements generation.Provider with the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/phrazzld/elearn-api/internal/generation"
)

const (
	// DefaultModel is used when neither the request nor Config names a
	// Claude model.
	DefaultModel = "claude-3-5-haiku-latest"
	// DefaultMaxTokens caps response length. Topic content runs to roughly
	// a thousand words plus JSON overhead.
	DefaultMaxTokens = 4096
)

// Config holds the settings for the Anthropic API.
type Config struct {
	APIKey    string
	ModelName string
	BaseURL   string
	MaxTokens int64
}

// Provider sends completion requests to Claude.
type Provider struct {
	client    anthropicsdk.Client
	model     string
	maxTokens int64
	logger    *slog.Logger
}

var _ generation.Provider = (*Provider)(nil)

// New builds a Provider from cfg. Retries are left to
// generation.RetryingProvider, so the SDK's own retry loop is disabled.
func New(cfg Config, logger *slog.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: anthropic API key is required", generation.ErrInvalidConfig)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.ModelName
	if !strings.HasPrefix(model, "claude") {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Provider{
		client:    anthropicsdk.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		logger:    logger.With(slog.String("component", "anthropic_provider")),
	}, nil
}

// Complete implements generation.Provider.
func (p *Provider) Complete(ctx context.Context, req generation.Request) (string, error) {
	model := p.model
	if strings.HasPrefix(req.Model, "claude") {
		model = req.Model
	}

	var system []anthropicsdk.TextBlockParam
	var messages []anthropicsdk.MessageParam
	for _, m := range req.Messages {
		if m.Role == generation.RoleSystem {
			system = append(system, anthropicsdk.TextBlockParam{Text: m.Content})
			continue
		}
		messages = append(messages, anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(m.Content)))
	}
	if len(messages) == 0 {
		return "", fmt.Errorf("%w: no user content in request", generation.ErrInvalidConfig)
	}

	p.logger.DebugContext(ctx, "calling anthropic", slog.String("model", model), slog.Int("messages", len(messages)))

	resp, err := p.client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:       anthropicsdk.Model(model),
		MaxTokens:   p.maxTokens,
		System:      system,
		Messages:    messages,
		Temperature: anthropicsdk.Float(req.Temperature),
	})
	if err != nil {
		return "", classify(ctx, err)
	}

	if string(resp.StopReason) == "refusal" {
		return "", generation.ErrContentBlocked
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropicsdk.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}
	if b.Len() == 0 {
		return "", generation.ErrEmptyResponse
	}
	return b.String(), nil
}

func classify(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Join(ctxErr, err)
	}

	var apiErr *anthropicsdk.Error
	if errors.As(err, &apiErr) {
		switch code := apiErr.StatusCode; {
		case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
			return fmt.Errorf("anthropic request failed with status %d: %w", code, err)
		case code >= http.StatusBadRequest:
			return fmt.Errorf("%w: status %d: %w", generation.ErrRequestRejected, code, err)
		}
	}
	return fmt.Errorf("anthropic request failed: %w", err)
}
