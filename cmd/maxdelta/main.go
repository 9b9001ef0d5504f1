package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/maxdelta/internal/balancechange"
	"github.com/gabapcia/maxdelta/internal/config"
	"github.com/gabapcia/maxdelta/internal/handlers/cli"
	"github.com/gabapcia/maxdelta/internal/infra/blockchain/etherscan"
	"github.com/gabapcia/maxdelta/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/maxdelta/internal/infra/cache/memory"
	"github.com/gabapcia/maxdelta/internal/pkg/logger"
	"github.com/gabapcia/maxdelta/internal/pkg/telemetry"
	"github.com/gabapcia/maxdelta/internal/pkg/transport/http"
	"github.com/gabapcia/maxdelta/internal/pkg/transport/jsonrpc"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				logger.Warn(ctx, "failed to flush telemetry", "error", err)
			}
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	svc := balancechange.New(newBlockchain(cfg), memory.New(),
		balancechange.WithWindowSize(cfg.BlockWindow),
		balancechange.WithFetchConcurrency(cfg.FetchConcurrency),
		balancechange.WithRequestTimeout(cfg.RequestTimeout),
	)
	defer svc.Close()

	return cli.Run(ctx, svc)
}

// newBlockchain builds the chain data source selected by CHAIN_PROVIDER.
func newBlockchain(cfg config.Config) balancechange.Blockchain {
	httpClient := http.NewClient(
		http.WithTimeout(cfg.HTTPTimeout),
		http.WithRetryMax(cfg.HTTPRetryMax),
		http.WithRetryWaitMin(cfg.HTTPRetryWaitMin),
		http.WithRetryWaitMax(cfg.HTTPRetryWaitMax),
	)

	if cfg.ChainProvider == config.ProviderJSONRPC {
		return ethereum.NewClient(jsonrpc.NewClient(httpClient, cfg.JSONRPCEndpoint))
	}

	return etherscan.NewClient(httpClient, cfg.EtherscanBaseURL, cfg.EtherscanAPIKey,
		etherscan.WithChainID(cfg.EtherscanChainID),
		etherscan.WithRateLimitAttempts(cfg.RateLimitAttempts),
	)
}
