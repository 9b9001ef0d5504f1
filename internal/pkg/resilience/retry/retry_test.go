package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRateLimited = errors.New("max rate limit reached")

func fastRetry(opts ...Option) Retry {
	return New(append([]Option{
		WithDelay(time.Millisecond),
		WithMaxDelay(5 * time.Millisecond),
	}, opts...)...)
}

func TestRetry_Execute(t *testing.T) {
	t.Run("successful operation runs once", func(t *testing.T) {
		callCount := 0

		err := fastRetry().Execute(t.Context(), func() error {
			callCount++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, callCount)
	})

	t.Run("retries until the operation succeeds", func(t *testing.T) {
		callCount := 0

		err := fastRetry(WithAttempts(3)).Execute(t.Context(), func() error {
			callCount++
			if callCount < 2 {
				return errRateLimited
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, callCount)
	})

	t.Run("returns the last error once attempts run out", func(t *testing.T) {
		callCount := 0

		err := fastRetry(WithAttempts(3)).Execute(t.Context(), func() error {
			callCount++
			return errRateLimited
		})

		require.ErrorIs(t, err, errRateLimited)
		assert.Equal(t, 3, callCount)
	})

	t.Run("returns every error when last error only is disabled", func(t *testing.T) {
		err := fastRetry(WithAttempts(2), WithLastErrorOnly(false)).Execute(t.Context(), func() error {
			return errRateLimited
		})

		require.ErrorIs(t, err, errRateLimited)
		assert.Contains(t, err.Error(), "#1")
		assert.Contains(t, err.Error(), "#2")
	})

	t.Run("does not retry errors rejected by the predicate", func(t *testing.T) {
		var (
			callCount = 0
			permanent = errors.New("invalid api key")
		)

		err := fastRetry(
			WithAttempts(5),
			WithRetryIf(func(err error) bool { return errors.Is(err, errRateLimited) }),
		).Execute(t.Context(), func() error {
			callCount++
			return permanent
		})

		require.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, callCount)
	})

	t.Run("retries errors accepted by the predicate", func(t *testing.T) {
		callCount := 0

		err := fastRetry(
			WithAttempts(5),
			WithRetryIf(func(err error) bool { return errors.Is(err, errRateLimited) }),
		).Execute(t.Context(), func() error {
			callCount++
			if callCount < 4 {
				return errRateLimited
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 4, callCount)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		callCount := 0

		err := New(WithAttempts(5), WithDelay(time.Second)).Execute(ctx, func() error {
			callCount++
			cancel()
			return errRateLimited
		})

		require.Error(t, err)
		assert.Equal(t, 1, callCount)
	})
}
