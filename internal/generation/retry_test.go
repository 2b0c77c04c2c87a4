package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryingProvider(t *testing.T) {
	transient := errors.New("503 service unavailable")

	tests := []struct {
		name          string
		errs          []error
		maxRetries    int
		expectedCalls int
		expectErr     error
	}{
		{name: "succeeds first time", errs: []error{nil}, maxRetries: 2, expectedCalls: 1},
		{name: "succeeds after transient errors", errs: []error{transient, transient, nil}, maxRetries: 2, expectedCalls: 3},
		{name: "gives up after max retries", errs: []error{transient, transient, transient}, maxRetries: 2, expectedCalls: 3, expectErr: ErrTransientFailure},
		{name: "permanent error is not retried", errs: []error{ErrContentBlocked}, maxRetries: 2, expectedCalls: 1, expectErr: ErrContentBlocked},
		{name: "no retries configured", errs: []error{transient}, maxRetries: 0, expectedCalls: 1, expectErr: ErrTransientFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			next := ProviderFunc(func(context.Context, Request) (string, error) {
				err := tt.errs[calls]
				calls++
				if err != nil {
					return "", err
				}
				return "ok", nil
			})
			p := NewRetryingProvider(next, RetryPolicy{MaxRetries: tt.maxRetries, BaseDelay: time.Millisecond}, discardLogger())

			text, err := p.Complete(context.Background(), Request{})

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", text)
		})
	}
}

func TestRetryingProviderStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	next := ProviderFunc(func(context.Context, Request) (string, error) {
		cancel()
		return "", errors.New("connection reset")
	})
	p := NewRetryingProvider(next, RetryPolicy{MaxRetries: 3, BaseDelay: time.Hour}, discardLogger())

	_, err := p.Complete(ctx, Request{})

	assert.ErrorIs(t, err, ErrTransientFailure)
	assert.ErrorIs(t, err, context.Canceled)
}
