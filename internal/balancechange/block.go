package balancechange

// Transaction represents a value transfer included in a block.
//
// Value is kept in the provider's wire representation (a 0x-prefixed hex
// quantity or a decimal string) and is only parsed, with arbitrary precision,
// during aggregation.
type Transaction struct {
	Hash  string // Unique transaction hash identifier
	From  string // Sender address, always present
	To    string // Recipient address, empty for contract creation
	Value string // Transferred value in wei, as received from the provider
}

// Block represents a blockchain block with its height and the ordered list
// of transactions it contains.
//
// A nil Transactions slice means the provider did not return a transaction
// list at all, which is treated as a failed fetch. An empty, non-nil slice
// is a valid block with no transactions.
type Block struct {
	Height       uint64        // Block height
	Hash         string        // Unique block hash
	Transactions []Transaction // Transactions contained in the block
}
