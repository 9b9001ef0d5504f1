package blockchain

import (
	"encoding/json"
	"testing"

	"github.com/gabapcia/maxdelta/internal/balancechange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBlock(t *testing.T) {
	t.Run("converts a full block", func(t *testing.T) {
		data := json.RawMessage(`{
			"hash": "0xblockhash",
			"number": "0x96",
			"transactions": [
				{"hash": "0x1", "from": "0xAA", "to": "0xBB", "value": "0x3e8"},
				{"hash": "0x2", "from": "0xCC", "to": null, "value": "0x0"}
			]
		}`)

		block, err := DecodeBlock(data)
		require.NoError(t, err)

		assert.Equal(t, balancechange.Block{
			Height: 150,
			Hash:   "0xblockhash",
			Transactions: []balancechange.Transaction{
				{Hash: "0x1", From: "0xAA", To: "0xBB", Value: "0x3e8"},
				{Hash: "0x2", From: "0xCC", To: "", Value: "0x0"},
			},
		}, block)
	})

	t.Run("keeps an empty transaction list empty", func(t *testing.T) {
		block, err := DecodeBlock(json.RawMessage(`{"number": "0x1", "transactions": []}`))
		require.NoError(t, err)

		assert.NotNil(t, block.Transactions)
		assert.Empty(t, block.Transactions)
	})

	t.Run("keeps a missing transaction list nil", func(t *testing.T) {
		block, err := DecodeBlock(json.RawMessage(`{"number": "0x1"}`))
		require.NoError(t, err)

		assert.Nil(t, block.Transactions)
	})

	t.Run("does not validate the transaction block number", func(t *testing.T) {
		data := json.RawMessage(`{
			"number": "0x96",
			"transactions": [
				{"hash": "0x1", "blockNumber": null, "from": "0xAA", "value": "0x1"},
				{"hash": "0x2", "blockNumber": "150", "from": "0xBB", "value": "0x2"}
			]
		}`)

		block, err := DecodeBlock(data)
		require.NoError(t, err)

		assert.Equal(t, []balancechange.Transaction{
			{Hash: "0x1", From: "0xAA", Value: "0x1"},
			{Hash: "0x2", From: "0xBB", Value: "0x2"},
		}, block.Transactions)
	})

	t.Run("returns ErrBlockNotFound for a null result", func(t *testing.T) {
		_, err := DecodeBlock(json.RawMessage(`null`))
		assert.ErrorIs(t, err, ErrBlockNotFound)

		_, err = DecodeBlock(nil)
		assert.ErrorIs(t, err, ErrBlockNotFound)
	})

	t.Run("rejects an invalid block number", func(t *testing.T) {
		_, err := DecodeBlock(json.RawMessage(`{"number": "150", "transactions": []}`))
		assert.Error(t, err)
	})
}

func TestDecodeHeight(t *testing.T) {
	t.Run("decodes a hex quantity", func(t *testing.T) {
		height, err := DecodeHeight(json.RawMessage(`"0xc8"`))
		require.NoError(t, err)
		assert.Equal(t, uint64(200), height)
	})

	t.Run("rejects a non-hex value", func(t *testing.T) {
		_, err := DecodeHeight(json.RawMessage(`"200"`))
		assert.Error(t, err)
	})

	t.Run("rejects a non-string value", func(t *testing.T) {
		_, err := DecodeHeight(json.RawMessage(`200`))
		assert.Error(t, err)
	})
}
