package config

import (
	"testing"
	"time"

	"github.com/gabapcia/maxdelta/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("ETHERSCAN_API_KEY", "key")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, Config{
			ChainProvider:     ProviderEtherscan,
			EtherscanAPIKey:   "key",
			EtherscanBaseURL:  "https://api.etherscan.io/api",
			HTTPTimeout:       5 * time.Second,
			HTTPRetryMax:      2,
			HTTPRetryWaitMin:  time.Second,
			HTTPRetryWaitMax:  5 * time.Second,
			RateLimitAttempts: 3,
			BlockWindow:       101,
			FetchConcurrency:  1,
			LogLevel:          "info",
			ServiceName:       "maxdelta",
		}, cfg)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("CHAIN_PROVIDER", "jsonrpc")
		t.Setenv("JSONRPC_ENDPOINT", "http://localhost:8545")
		t.Setenv("BLOCK_WINDOW", "10")
		t.Setenv("FETCH_CONCURRENCY", "4")
		t.Setenv("REQUEST_TIMEOUT", "30s")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("TELEMETRY_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ProviderJSONRPC, cfg.ChainProvider)
		assert.Equal(t, "http://localhost:8545", cfg.JSONRPCEndpoint)
		assert.Equal(t, uint64(10), cfg.BlockWindow)
		assert.Equal(t, 4, cfg.FetchConcurrency)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.TelemetryEnabled)
	})

	t.Run("requires an api key for etherscan", func(t *testing.T) {
		t.Setenv("ETHERSCAN_API_KEY", "")

		_, err := Load()
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "'ETHERSCAN_API_KEY'")
	})

	t.Run("requires an endpoint for jsonrpc", func(t *testing.T) {
		t.Setenv("CHAIN_PROVIDER", "jsonrpc")

		_, err := Load()
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "'JSONRPC_ENDPOINT'")
	})

	t.Run("rejects an unknown provider", func(t *testing.T) {
		t.Setenv("CHAIN_PROVIDER", "infura")

		_, err := Load()
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "'CHAIN_PROVIDER'")
	})

	t.Run("rejects a zero block window", func(t *testing.T) {
		t.Setenv("ETHERSCAN_API_KEY", "key")
		t.Setenv("BLOCK_WINDOW", "0")

		_, err := Load()
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "'BLOCK_WINDOW'")
	})

	t.Run("fails on a malformed value", func(t *testing.T) {
		t.Setenv("ETHERSCAN_API_KEY", "key")
		t.Setenv("HTTP_TIMEOUT", "soon")

		_, err := Load()
		require.Error(t, err)
		assert.NotErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "read environment")
	})
}
