package balancechange

import "context"

// Blockchain is the chain data source consumed by the service.
//
// Implementations talk to an external provider. Each call may fail
// independently and the service never retries them; any retry or backoff
// policy belongs to the implementation itself.
type Blockchain interface {
	// LatestHeight returns the height of the current chain tip.
	LatestHeight(ctx context.Context) (uint64, error)

	// BlockByHeight returns the full block at the given height, including
	// its transactions.
	BlockByHeight(ctx context.Context, height uint64) (Block, error)
}
