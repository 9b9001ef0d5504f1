package ethereum

import (
	"context"
	"fmt"

	"github.com/gabapcia/maxdelta/internal/balancechange"
	"github.com/gabapcia/maxdelta/internal/infra/blockchain"
	"github.com/gabapcia/maxdelta/internal/pkg/types"
)

// LatestHeight calls eth_blockNumber.
func (c *client) LatestHeight(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	height, err := blockchain.DecodeHeight(data)
	if err != nil {
		return 0, fmt.Errorf("decode block number: %w", err)
	}

	return height, nil
}

// BlockByHeight calls eth_getBlockByNumber with full transaction objects.
func (c *client) BlockByHeight(ctx context.Context, height uint64) (balancechange.Block, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", types.HexFromUint64(height), true)
	if err != nil {
		return balancechange.Block{}, err
	}

	block, err := blockchain.DecodeBlock(data)
	if err != nil {
		return balancechange.Block{}, fmt.Errorf("decode block %d: %w", height, err)
	}

	return block, nil
}
