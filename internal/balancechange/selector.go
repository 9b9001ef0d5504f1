package balancechange

import (
	"encoding/json"
	"math/big"
)

// MaxBalanceChange is the address with the largest absolute net balance
// change over a block range.
type MaxBalanceChange struct {
	Address   string   // Lowercase address, empty when no address changed
	Magnitude *big.Int // Absolute value of the net change, in wei
}

// MarshalJSON encodes the result as {"address": ..., "balanceChange": ...},
// with the magnitude as a decimal string.
func (m MaxBalanceChange) MarshalJSON() ([]byte, error) {
	magnitude := "0"
	if m.Magnitude != nil {
		magnitude = m.Magnitude.String()
	}

	return json.Marshal(struct {
		Address       string `json:"address"`
		BalanceChange string `json:"balanceChange"`
	}{
		Address:       m.Address,
		BalanceChange: magnitude,
	})
}

// SelectMaxChange returns the ledger entry with the largest absolute delta.
//
// Entries are visited in first-reference order and a later entry only wins
// when it is strictly greater, so on exact ties the address referenced first
// is selected. An empty ledger yields an empty address with zero magnitude.
func SelectMaxChange(ledger *Ledger) MaxBalanceChange {
	best := MaxBalanceChange{Magnitude: new(big.Int)}

	magnitude := new(big.Int)
	for address, delta := range ledger.All() {
		magnitude.Abs(delta)
		if magnitude.Cmp(best.Magnitude) > 0 {
			best.Address = address
			best.Magnitude.Set(magnitude)
		}
	}

	return best
}
