package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/phrazzld/elearn-api/internal/redact"
)

const (
	// DefaultModel is used when no model name is configured.
	DefaultModel = "gpt-3.5-turbo"
	// DefaultTimeout bounds a single model call.
	DefaultTimeout = 30 * time.Second
	// Temperature is the sampling temperature for every request.
	Temperature = 0.7

	tracerName = "github.com/phrazzld/elearn-api/internal/generation"
)

// Option configures a generator.
type Option func(*caller)

// WithModel sets the model name sent to the provider.
func WithModel(model string) Option {
	return func(c *caller) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout bounds each provider call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *caller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *caller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// caller holds what the generators share: the provider, request settings and
// the logger used to report fallbacks.
type caller struct {
	provider Provider
	logger   *slog.Logger
	model    string
	timeout  time.Duration
	tracer   trace.Tracer
}

func newCaller(provider Provider, logger *slog.Logger, component string, opts []Option) caller {
	if logger == nil {
		logger = slog.Default()
	}
	c := caller{
		provider: provider,
		logger:   logger.With(slog.String("component", component)),
		model:    DefaultModel,
		timeout:  DefaultTimeout,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

type completion struct {
	text string
	err  error
}

// complete sends messages to the provider within the configured timeout. The
// deadline holds even if the provider ignores ctx.
func (c *caller) complete(ctx context.Context, messages []Message, jsonResponse bool) (string, error) {
	if c.provider == nil {
		return "", fmt.Errorf("%w: no provider configured", ErrInvalidConfig)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := Request{
		Model:        c.model,
		Temperature:  Temperature,
		Messages:     messages,
		JSONResponse: jsonResponse,
	}

	done := make(chan completion, 1)
	go func() {
		text, err := c.provider.Complete(ctx, req)
		done <- completion{text: text, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}
		if res.text == "" {
			return "", ErrEmptyResponse
		}
		return res.text, nil
	case <-ctx.Done():
		return "", fmt.Errorf("model call: %w", ctx.Err())
	}
}

func (c *caller) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("llm.model", c.model))
	return c.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// fallback logs a failed generation and marks the span.
func (c *caller) fallback(ctx context.Context, span trace.Span, operation string, err error, attrs ...slog.Attr) {
	safe := redact.Error(err)

	span.SetAttributes(attribute.Bool("generation.fallback", true))
	span.SetStatus(codes.Error, safe)

	args := []any{
		slog.String("operation", operation),
		slog.String("model", c.model),
		slog.String("error", safe),
	}
	for _, a := range attrs {
		args = append(args, a)
	}
	c.logger.WarnContext(ctx, "generation failed, using fallback", args...)
}
