package balancechange

// BlockCache memoizes fetched blocks by height.
//
// Blocks are immutable once fetched, so implementations may treat a second
// Put for the same height as a harmless overwrite. Implementations must be
// safe for concurrent use.
type BlockCache interface {
	// Get returns the cached block for height and whether it was present.
	Get(height uint64) (Block, bool)

	// Put stores block under height.
	Put(height uint64, block Block)
}

// nopCache is a BlockCache that never stores anything.
type nopCache struct{}

// Get always reports a miss.
func (nopCache) Get(uint64) (Block, bool) {
	return Block{}, false
}

// Put discards the block.
func (nopCache) Put(uint64, Block) {}
