package balancechange

import (
	"context"
	"errors"

	"github.com/gabapcia/maxdelta/internal/pkg/logger"
)

// fetchBlock returns the block at height, serving it from the cache when
// possible. Successfully fetched blocks are added to the cache.
func (s *service) fetchBlock(ctx context.Context, height uint64) (Block, error) {
	if block, ok := s.cache.Get(height); ok {
		s.instruments.recordCacheLookup(ctx, true)
		return block, nil
	}

	s.instruments.recordCacheLookup(ctx, false)

	block, err := s.blockchain.BlockByHeight(ctx, height)
	if err != nil {
		return Block{}, &BlockFetchError{Height: height, Err: err}
	}

	if block.Transactions == nil {
		return Block{}, &BlockFetchError{Height: height, Err: ErrMissingTransactions}
	}

	s.cache.Put(height, block)
	return block, nil
}

// fetchBlocks retrieves every block in [from, to], in height order.
//
// With a fetch concurrency of one the blocks are requested strictly one after
// the other and the loop stops at the first failure. Otherwise the requests
// are spread over the worker pool; the first failure cancels the remaining
// ones and is returned once every in-flight request has finished.
func (s *service) fetchBlocks(ctx context.Context, from, to uint64) ([]Block, error) {
	if s.pool == nil {
		return s.fetchBlocksSequentially(ctx, from, to)
	}

	return s.fetchBlocksConcurrently(ctx, from, to)
}

// fetchBlocksSequentially fetches the range one height at a time.
func (s *service) fetchBlocksSequentially(ctx context.Context, from, to uint64) ([]Block, error) {
	blocks := make([]Block, 0, to-from+1)
	for height := from; height <= to; height++ {
		block, err := s.fetchBlock(ctx, height)
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, block)
	}

	return blocks, nil
}

// fetchBlocksConcurrently fetches the range through the worker pool.
//
// Once a request fails the group context is cancelled and the remaining
// requests give up. The reported failure is the one with the lowest height
// that did not fail only because of that cancellation.
func (s *service) fetchBlocksConcurrently(ctx context.Context, from, to uint64) ([]Block, error) {
	var (
		blocks   = make([]Block, to-from+1)
		failures = make([]error, len(blocks))
		group    = s.pool.NewGroupContext(ctx)
		groupCtx = group.Context()
	)

	for i := range blocks {
		height := from + uint64(i)
		group.SubmitErr(func() error {
			if err := groupCtx.Err(); err != nil {
				failures[i] = &BlockFetchError{Height: height, Err: err}
				return failures[i]
			}

			block, err := s.fetchBlock(groupCtx, height)
			if err != nil {
				failures[i] = err
				return err
			}

			blocks[i] = block
			return nil
		})
	}

	err := group.Wait()
	if err == nil {
		return blocks, nil
	}

	if fetchErr := lowestFetchError(ctx, failures); fetchErr != nil {
		return nil, fetchErr
	}

	logger.Error(ctx, "block fetch worker failed",
		"block.from", from,
		"block.to", to,
		"error", err,
	)
	return nil, ErrUnexpected
}

// lowestFetchError picks the failure to report out of the per-height results.
// While the caller's context is live, failures caused only by the group
// cancellation are skipped. It returns nil when no height failed on its own,
// as happens when a worker panics.
func lowestFetchError(ctx context.Context, failures []error) *BlockFetchError {
	for _, err := range failures {
		var fetchErr *BlockFetchError
		if !errors.As(err, &fetchErr) {
			continue
		}

		if errors.Is(fetchErr.Err, context.Canceled) && ctx.Err() == nil {
			continue
		}

		return fetchErr
	}

	return nil
}
