// Package blockchain holds the wire model shared by the chain adapters.
// Etherscan's proxy module and a plain Ethereum node both return blocks in
// the eth_getBlockByNumber JSON shape decoded here.
package blockchain

import (
	"encoding/json"
	"errors"

	"github.com/gabapcia/maxdelta/internal/balancechange"
	"github.com/gabapcia/maxdelta/internal/pkg/types"
)

// ErrBlockNotFound is returned when the provider answers with a null block.
var ErrBlockNotFound = errors.New("block not found")

type (
	// TransactionResponse is a transaction object as returned with full
	// transaction objects requested.
	TransactionResponse struct {
		Hash             string    `json:"hash"`
		BlockNumber      string    `json:"blockNumber"`
		TransactionIndex string    `json:"transactionIndex"`
		From             string    `json:"from"`
		To               string    `json:"to"`
		Value            string    `json:"value"`
		Gas              string    `json:"gas"`
		GasPrice         string    `json:"gasPrice"`
		Input            string    `json:"input"`
		Nonce            string    `json:"nonce"`
		Type             string    `json:"type"`
	}

	// BlockResponse is a block object. Transactions stays nil when the
	// provider omits the field or sends null.
	BlockResponse struct {
		Hash         string                `json:"hash"`
		ParentHash   string                `json:"parentHash"`
		Number       types.Hex             `json:"number"`
		Timestamp    string                `json:"timestamp"`
		Miner        string                `json:"miner"`
		GasUsed      string                `json:"gasUsed"`
		GasLimit     string                `json:"gasLimit"`
		Transactions []TransactionResponse `json:"transactions"`
	}
)

// ToTransaction converts the wire transaction. A null destination decodes
// to the empty string, which marks a contract creation.
func (t TransactionResponse) ToTransaction() balancechange.Transaction {
	return balancechange.Transaction{
		Hash:  t.Hash,
		From:  t.From,
		To:    t.To,
		Value: t.Value,
	}
}

// ToBlock converts the wire block, keeping a nil transaction list nil.
func (b BlockResponse) ToBlock() balancechange.Block {
	var transactions []balancechange.Transaction
	if b.Transactions != nil {
		transactions = make([]balancechange.Transaction, len(b.Transactions))
		for i, t := range b.Transactions {
			transactions[i] = t.ToTransaction()
		}
	}

	return balancechange.Block{
		Height:       b.Number.Uint64(),
		Hash:         b.Hash,
		Transactions: transactions,
	}
}

// DecodeBlock decodes an eth_getBlockByNumber result. A null result yields
// ErrBlockNotFound.
func DecodeBlock(data json.RawMessage) (balancechange.Block, error) {
	if len(data) == 0 || string(data) == "null" {
		return balancechange.Block{}, ErrBlockNotFound
	}

	var block BlockResponse
	if err := json.Unmarshal(data, &block); err != nil {
		return balancechange.Block{}, err
	}

	return block.ToBlock(), nil
}

// DecodeHeight decodes an eth_blockNumber result.
func DecodeHeight(data json.RawMessage) (uint64, error) {
	var height types.Hex
	if err := json.Unmarshal(data, &height); err != nil {
		return 0, err
	}

	return height.Uint64(), nil
}
