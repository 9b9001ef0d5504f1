// Package memory provides a process-local balancechange.BlockCache.
package memory

import (
	"github.com/gabapcia/maxdelta/internal/balancechange"

	"github.com/puzpuzpuz/xsync/v4"
)

// cache keeps every fetched block in memory for the lifetime of the process.
// There is no eviction: a computation only touches the trailing window of
// blocks, so the working set grows by roughly one block per new chain tip.
type cache struct {
	blocks *xsync.Map[uint64, balancechange.Block]
}

// Compile-time assertion to ensure cache implements the BlockCache interface.
var _ balancechange.BlockCache = (*cache)(nil)

// New returns an empty block cache that is safe for concurrent use.
func New() *cache {
	return &cache{
		blocks: xsync.NewMap[uint64, balancechange.Block](),
	}
}

// Get implements the balancechange.BlockCache interface.
func (c *cache) Get(height uint64) (balancechange.Block, bool) {
	return c.blocks.Load(height)
}

// Put implements the balancechange.BlockCache interface.
// Storing a height twice keeps the last block written.
func (c *cache) Put(height uint64, block balancechange.Block) {
	c.blocks.Store(height, block)
}

// Len returns the number of cached blocks.
func (c *cache) Len() int {
	return c.blocks.Size()
}
