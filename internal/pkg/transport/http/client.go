// Package http builds the outbound HTTP client shared by the chain adapters.
// Requests are retried by go-retryablehttp on connection errors and
// retryable status codes; retry diagnostics go to the service logger.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gabapcia/maxdelta/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration // per attempt, each retry gets a fresh budget
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
}

// Option configures the client returned by NewClient.
type Option func(*config)

// NewClient returns a standard *http.Client backed by a retryablehttp
// transport. Defaults: 5s timeout, 1s to 5s backoff, 2 retries.
func NewClient(opts ...Option) *http.Client {
	return newRetryableClient(opts...).StandardClient()
}

func newRetryableClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			logger.Warn(req.Context(), "retrying outbound request",
				"http.method", req.Method,
				"http.host", req.URL.Host,
				"attempt", attempt,
			)
		}
	}
	return client
}

// leveledLogger forwards retryablehttp diagnostics to the service logger.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, kv ...any) { logger.Error(context.Background(), msg, kv...) }
func (leveledLogger) Info(msg string, kv ...any) { logger.Debug(context.Background(), msg, kv...) }
func (leveledLogger) Debug(msg string, kv ...any) { logger.Debug(context.Background(), msg, kv...) }
func (leveledLogger) Warn(msg string, kv ...any) { logger.Warn(context.Background(), msg, kv...) }

// WithTimeout sets the maximum duration of a single request attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum backoff between retries.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum backoff between retries.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
