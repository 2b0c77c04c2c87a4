package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/phrazzld/elearn-api/internal/generation"
)

// DefaultModel is used when neither the request nor the config names a Gemini
// model.
const DefaultModel = "gemini-2.0-flash"

// Config holds the settings needed to reach the Gemini API.
type Config struct {
	APIKey    string
	ModelName string
}

// modelsAPI is the subset of *genai.Models used by Provider.
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Provider sends completion requests to Gemini.
type Provider struct {
	models modelsAPI
	model  string
	logger *slog.Logger
}

var _ generation.Provider = (*Provider)(nil)

// New creates a Gemini client from cfg.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is required", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newProvider(client.Models, cfg.ModelName, logger), nil
}

func newProvider(models modelsAPI, model string, logger *slog.Logger) *Provider {
	if !strings.HasPrefix(model, "gemini") {
		model = DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		models: models,
		model:  model,
		logger: logger.With(slog.String("component", "gemini_provider")),
	}
}

// Complete implements generation.Provider.
func (p *Provider) Complete(ctx context.Context, req generation.Request) (string, error) {
	model := p.model
	if req.Model != "" && strings.HasPrefix(req.Model, "gemini") {
		model = req.Model
	}

	temperature := float32(req.Temperature)
	config := &genai.GenerateContentConfig{Temperature: &temperature}
	if req.JSONResponse {
		config.ResponseMIMEType = "application/json"
	}

	var system []string
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Role == generation.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  "user",
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}},
		}
	}
	if len(contents) == 0 {
		return "", fmt.Errorf("%w: no user content in request", generation.ErrInvalidConfig)
	}

	p.logger.DebugContext(ctx, "calling gemini", slog.String("model", model), slog.Int("messages", len(contents)))

	resp, err := p.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", errors.Join(ctxErr, err)
		}
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", generation.ErrContentBlocked
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	if b.Len() == 0 {
		return "", generation.ErrEmptyResponse
	}
	return b.String(), nil
}
