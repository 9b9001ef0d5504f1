// Package balancechange finds the account with the largest absolute net
// balance change over the most recent blocks of a chain.
//
// A computation resolves the chain tip, fetches the trailing window of blocks
// (cache first), accumulates per-address deltas into a Ledger and selects the
// entry with the largest magnitude.
package balancechange

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/maxdelta/internal/pkg/logger"

	"github.com/alitto/pond/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultWindowSize is the number of blocks, ending at the chain tip, covered by a computation.
const DefaultWindowSize = 101

// Service computes the max balance change over the latest blocks.
type Service interface {
	// MaxBalanceChange returns the address whose balance changed the most,
	// in absolute terms, over the latest window of blocks.
	//
	// It returns ErrTipUnavailable when the chain tip cannot be resolved, a
	// *BlockFetchError naming the failing height when a block cannot be
	// retrieved, and ErrUnexpected for any other failure. No partial result
	// is ever returned.
	MaxBalanceChange(ctx context.Context) (MaxBalanceChange, error)

	// Close releases the worker pool, waiting for in-flight fetches.
	Close()
}

// service is the default implementation of Service.
type service struct {
	blockchain     Blockchain    // source of chain tip and block contents
	cache          BlockCache    // blocks already fetched by previous computations
	windowSize     uint64        // number of blocks per computation
	requestTimeout time.Duration // bound for a whole computation, zero disables it
	pool           pond.Pool     // nil when fetching sequentially
	instruments    instruments
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// config holds optional settings for the service.
type config struct {
	windowSize       uint64
	fetchConcurrency int
	requestTimeout   time.Duration
}

// Option configures the service.
type Option func(*config)

// WithWindowSize sets how many blocks, ending at the chain tip, are analyzed.
// Values below one are ignored.
//
// Default: 101.
func WithWindowSize(n uint64) Option {
	return func(c *config) {
		if n > 0 {
			c.windowSize = n
		}
	}
}

// WithFetchConcurrency sets how many blocks may be fetched at the same time.
// A value of one (or less) fetches blocks strictly in height order.
//
// Default: 1.
func WithFetchConcurrency(n int) Option {
	return func(c *config) {
		c.fetchConcurrency = n
	}
}

// WithRequestTimeout bounds the duration of a single computation.
// Zero disables the timeout.
//
// Default: disabled.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *config) {
		c.requestTimeout = d
	}
}

// New creates the service. When cache is nil, blocks are never memoized.
//
// Parameters:
//   - blockchain: source of the chain tip and of block contents.
//   - cache: store for previously fetched blocks, may be nil.
//   - opts: optional settings such as window size and fetch concurrency.
//
// Returns:
//   - A ready service. Call Close to release its worker pool.
func New(blockchain Blockchain, cache BlockCache, opts ...Option) *service {
	cfg := config{
		windowSize:       DefaultWindowSize,
		fetchConcurrency: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cache == nil {
		cache = nopCache{}
	}

	var pool pond.Pool
	if cfg.fetchConcurrency > 1 {
		pool = pond.NewPool(cfg.fetchConcurrency)
	}

	return &service{
		blockchain:     blockchain,
		cache:          cache,
		windowSize:     cfg.windowSize,
		requestTimeout: cfg.requestTimeout,
		pool:           pool,
		instruments:    newInstruments(),
	}
}

// blockRange returns the inclusive range of heights analyzed for tip.
// When the chain is shorter than the window the range starts at genesis.
func (s *service) blockRange(tip uint64) (from, to uint64) {
	if tip < s.windowSize-1 {
		return 0, tip
	}

	return tip - (s.windowSize - 1), tip
}

// MaxBalanceChange implements the Service interface.
func (s *service) MaxBalanceChange(ctx context.Context) (result MaxBalanceChange, err error) {
	ctx, span := s.instruments.tracer.Start(ctx, "balancechange.MaxBalanceChange")
	defer span.End()

	startedAt := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "recovered from panic while calculating max balance change", "panic", r)
			result, err = MaxBalanceChange{}, ErrUnexpected
		}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		s.instruments.recordComputation(ctx, time.Since(startedAt), err)
	}()

	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	return s.maxBalanceChange(ctx, span)
}

// maxBalanceChange runs the resolve, fetch, aggregate and select steps.
func (s *service) maxBalanceChange(ctx context.Context, span trace.Span) (MaxBalanceChange, error) {
	tip, err := s.blockchain.LatestHeight(ctx)
	if err != nil {
		logger.Error(ctx, "failed to fetch latest block number", "error", err)
		return MaxBalanceChange{}, ErrTipUnavailable
	}

	from, to := s.blockRange(tip)
	span.SetAttributes(
		attribute.Int64("block.from", int64(from)),
		attribute.Int64("block.to", int64(to)),
	)

	blocks, err := s.fetchBlocks(ctx, from, to)
	if err != nil {
		var fetchErr *BlockFetchError
		if errors.As(err, &fetchErr) {
			logger.Error(ctx, "failed to fetch block",
				"block.height", fetchErr.Height,
				"error", fetchErr.Err,
			)
		}

		return MaxBalanceChange{}, err
	}

	ledger, err := Aggregate(blocks)
	if err != nil {
		logger.Error(ctx, "failed to aggregate balance changes",
			"block.from", from,
			"block.to", to,
			"error", err,
		)
		return MaxBalanceChange{}, ErrUnexpected
	}

	result := SelectMaxChange(ledger)

	logger.Info(ctx, "max balance change calculated",
		"block.from", from,
		"block.to", to,
		"ledger.size", ledger.Len(),
		"address", result.Address,
		"magnitude", result.Magnitude.String(),
	)

	return result, nil
}

// Close implements the Service interface.
func (s *service) Close() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}
