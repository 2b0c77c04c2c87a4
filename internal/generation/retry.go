package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

// RetryPolicy controls how RetryingProvider retries transient failures.
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries int
	// BaseDelay is the backoff before the first retry. It doubles on every
	// further attempt and is scaled by a jitter factor in [0.5, 1.0).
	BaseDelay time.Duration
}

// RetryingProvider wraps a Provider with exponential backoff.
type RetryingProvider struct {
	next   Provider
	policy RetryPolicy
	logger *slog.Logger
}

// NewRetryingProvider returns next wrapped with policy. Negative MaxRetries
// and BaseDelay are treated as zero.
func NewRetryingProvider(next Provider, policy RetryPolicy, logger *slog.Logger) *RetryingProvider {
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}
	if policy.BaseDelay < 0 {
		policy.BaseDelay = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryingProvider{
		next:   next,
		policy: policy,
		logger: logger.With(slog.String("component", "llm_retry")),
	}
}

// IsPermanent reports whether err should not be retried.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrContentBlocked) ||
		errors.Is(err, ErrInvalidResponse) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrRequestRejected) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Complete calls the wrapped provider, retrying errors that are not permanent.
func (p *RetryingProvider) Complete(ctx context.Context, req Request) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= p.policy.MaxRetries; attempt++ {
		text, err := p.next.Complete(ctx, req)
		if err == nil {
			if attempt > 0 {
				p.logger.InfoContext(ctx, "model call succeeded after retry", slog.Int("attempt", attempt+1))
			}
			return text, nil
		}
		lastErr = err

		if IsPermanent(err) {
			return "", err
		}
		if attempt == p.policy.MaxRetries {
			break
		}

		backoff := float64(p.policy.BaseDelay) * math.Pow(2, float64(attempt))
		delay := time.Duration(backoff * (0.5 + rand.Float64()*0.5))

		p.logger.InfoContext(ctx, "retrying model call after delay",
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", p.policy.MaxRetries+1),
			slog.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return "", fmt.Errorf("%w: %w", ErrTransientFailure, ctx.Err())
		}
	}

	return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %w",
		ErrTransientFailure, p.policy.MaxRetries, lastErr)
}
