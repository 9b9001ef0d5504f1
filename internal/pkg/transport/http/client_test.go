package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetryableClient(t *testing.T) {
	t.Run("uses default configuration when no options are provided", func(t *testing.T) {
		client := newRetryableClient()

		assert.Equal(t, 5*time.Second, client.HTTPClient.Timeout)
		assert.Equal(t, 1*time.Second, client.RetryWaitMin)
		assert.Equal(t, 5*time.Second, client.RetryWaitMax)
		assert.Equal(t, 2, client.RetryMax)
		assert.IsType(t, leveledLogger{}, client.Logger)
	})

	t.Run("applies provided options", func(t *testing.T) {
		client := newRetryableClient(
			WithTimeout(10*time.Second),
			WithRetryWaitMin(200*time.Millisecond),
			WithRetryWaitMax(10*time.Second),
			WithRetryMax(5),
		)

		assert.Equal(t, 10*time.Second, client.HTTPClient.Timeout)
		assert.Equal(t, 200*time.Millisecond, client.RetryWaitMin)
		assert.Equal(t, 10*time.Second, client.RetryWaitMax)
		assert.Equal(t, 5, client.RetryMax)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("retries server errors until the request succeeds", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(
			WithRetryMax(3),
			WithRetryWaitMin(time.Millisecond),
			WithRetryWaitMax(2*time.Millisecond),
		)

		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		res, err := client.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("applies the timeout to each attempt separately", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(
			WithTimeout(100*time.Millisecond),
			WithRetryMax(1),
			WithRetryWaitMin(time.Millisecond),
			WithRetryWaitMax(2*time.Millisecond),
		)

		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		res, err := client.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(
			WithRetryMax(1),
			WithRetryWaitMin(time.Millisecond),
			WithRetryWaitMax(2*time.Millisecond),
		)

		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		_, err = client.Do(req)
		require.Error(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})
}
