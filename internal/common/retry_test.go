package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketprep/pocketprep/internal/service"
)

func TestWithRetry(t *testing.T) {
	opts := service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return nil
		}, opts)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return &RetryableError{Err: errors.New("transient"), Retryable: true}
			}
			return nil
		}, opts)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non-retryable error", func(t *testing.T) {
		calls := 0
		wrapped := errors.New("permanent")
		err := WithRetry(context.Background(), func() error {
			calls++
			return &RetryableError{Err: wrapped, Retryable: false}
		}, opts)
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return &RetryableError{Err: errors.New("always"), Retryable: true}
		}, opts)
		require.ErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, 3, calls)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := WithRetry(ctx, func() error {
			return &RetryableError{Err: errors.New("transient"), Retryable: true}
		}, opts)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRateLimit))
	assert.False(t, IsRetryable(ErrNotAvailable))
	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("x"), Retryable: true}))
	assert.False(t, IsRetryable(errors.New("plain")))
}
