package balancechange

import (
	"fmt"
	"iter"
	"math/big"
	"strings"

	"github.com/gabapcia/maxdelta/internal/pkg/types"
)

// Ledger accumulates the signed net value change of every address touched
// by a range of blocks.
//
// Addresses are stored lowercase and entries are created at zero on first
// reference. Iteration follows first-reference order.
type Ledger struct {
	deltas types.DefaultMap[string, *big.Int]
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		deltas: types.NewDefaultMap[string](func() *big.Int { return new(big.Int) }),
	}
}

// normalizeAddress maps every spelling of an address onto a single ledger key.
func normalizeAddress(address string) string {
	return strings.ToLower(address)
}

// Debit subtracts value from the address entry.
func (l *Ledger) Debit(address string, value *big.Int) {
	delta := l.deltas.Get(normalizeAddress(address))
	delta.Sub(delta, value)
}

// Credit adds value to the address entry.
func (l *Ledger) Credit(address string, value *big.Int) {
	delta := l.deltas.Get(normalizeAddress(address))
	delta.Add(delta, value)
}

// Delta returns a copy of the accumulated change for address, or zero if the
// address was never referenced.
func (l *Ledger) Delta(address string) *big.Int {
	delta, ok := l.deltas.Lookup(normalizeAddress(address))
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(delta)
}

// Len returns the number of addresses in the ledger.
func (l *Ledger) Len() int {
	return l.deltas.Len()
}

// Sum returns the total of every entry in the ledger.
func (l *Ledger) Sum() *big.Int {
	sum := new(big.Int)
	for _, delta := range l.deltas.All() {
		sum.Add(sum, delta)
	}
	return sum
}

// All iterates over the ledger entries in first-reference order.
// The yielded values are owned by the ledger and must not be modified.
func (l *Ledger) All() iter.Seq2[string, *big.Int] {
	return l.deltas.All()
}

// ParseValue decodes a transaction value from its wire representation.
//
// Hex quantities ("0x3e8") and decimal strings ("1000") are accepted. The
// result has arbitrary precision; negative values are rejected.
func ParseValue(raw string) (*big.Int, error) {
	var (
		digits = strings.TrimSpace(raw)
		base   = 10
	)

	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits, base = digits[2:], 16
	}

	value, ok := new(big.Int).SetString(digits, base)
	if !ok || value.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}

	return value, nil
}

// Aggregate builds the ledger for the given blocks.
//
// For every transaction the value is subtracted from the sender and, when a
// recipient is present, added to it. Contract creations have no recipient,
// so only the debit is applied and the value leaves the ledger.
//
// Aggregate is pure: the same blocks always produce the same ledger.
func Aggregate(blocks []Block) (*Ledger, error) {
	ledger := NewLedger()

	for _, block := range blocks {
		for _, tx := range block.Transactions {
			value, err := ParseValue(tx.Value)
			if err != nil {
				return nil, fmt.Errorf("block %d transaction %s: %w", block.Height, tx.Hash, err)
			}

			ledger.Debit(tx.From, value)

			if tx.To != "" {
				ledger.Credit(tx.To, value)
			}
		}
	}

	return ledger, nil
}
