// Package config loads the service settings from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/maxdelta/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Chain providers accepted in CHAIN_PROVIDER.
const (
	ProviderEtherscan = "etherscan"
	ProviderJSONRPC   = "jsonrpc"
)

// Config holds every setting read at startup.
type Config struct {
	ChainProvider    string `envconfig:"CHAIN_PROVIDER" default:"etherscan" validate:"oneof=etherscan jsonrpc"`
	EtherscanAPIKey  string `envconfig:"ETHERSCAN_API_KEY" validate:"required_if=ChainProvider etherscan"`
	EtherscanBaseURL string `envconfig:"ETHERSCAN_BASE_URL" default:"https://api.etherscan.io/api" validate:"required,url"`
	EtherscanChainID uint64 `envconfig:"ETHERSCAN_CHAIN_ID" default:"0"`
	JSONRPCEndpoint  string `envconfig:"JSONRPC_ENDPOINT" validate:"required_if=ChainProvider jsonrpc"`

	HTTPTimeout       time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s" validate:"gt=0"`
	HTTPRetryMax      int           `envconfig:"HTTP_RETRY_MAX" default:"2" validate:"min=0"`
	HTTPRetryWaitMin  time.Duration `envconfig:"HTTP_RETRY_WAIT_MIN" default:"1s" validate:"gte=0"`
	HTTPRetryWaitMax  time.Duration `envconfig:"HTTP_RETRY_WAIT_MAX" default:"5s" validate:"gtefield=HTTPRetryWaitMin"`
	RateLimitAttempts uint          `envconfig:"RATE_LIMIT_ATTEMPTS" default:"3" validate:"min=1"`

	BlockWindow      uint64        `envconfig:"BLOCK_WINDOW" default:"101" validate:"min=1"`
	FetchConcurrency int           `envconfig:"FETCH_CONCURRENCY" default:"1" validate:"min=1"`
	RequestTimeout   time.Duration `envconfig:"REQUEST_TIMEOUT" default:"0s" validate:"gte=0"`

	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"maxdelta" validate:"required"`
}

// Load reads the environment, applies defaults and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
