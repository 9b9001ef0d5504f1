package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexFromString(t *testing.T) {
	t.Run("accepts a valid quantity", func(t *testing.T) {
		h, err := HexFromString("0xc8")
		require.NoError(t, err)
		assert.Equal(t, Hex("0xc8"), h)
	})

	t.Run("rejects a decimal string", func(t *testing.T) {
		_, err := HexFromString("200")
		require.Error(t, err)
	})
}

func TestHexFromUint64(t *testing.T) {
	t.Run("encodes zero", func(t *testing.T) {
		assert.Equal(t, Hex("0x0"), HexFromUint64(0))
	})

	t.Run("encodes a block height in lowercase", func(t *testing.T) {
		assert.Equal(t, Hex("0x1298bcd"), HexFromUint64(19500237))
	})

	t.Run("round trips through Uint64", func(t *testing.T) {
		assert.Equal(t, uint64(180), HexFromUint64(180).Uint64())
	})
}

func TestHex_MarshalJSON(t *testing.T) {
	t.Run("encodes as a JSON string", func(t *testing.T) {
		data, err := json.Marshal(Hex("0x64"))
		require.NoError(t, err)
		assert.JSONEq(t, `"0x64"`, string(data))
	})
}

func TestHex_UnmarshalJSON(t *testing.T) {
	t.Run("valid lowercase hex", func(t *testing.T) {
		input := `"0x1a"`
		var h Hex

		err := json.Unmarshal([]byte(input), &h)
		require.NoError(t, err)
		assert.Equal(t, Hex("0x1a"), h)
	})

	t.Run("valid uppercase hex", func(t *testing.T) {
		input := `"0X2F"`
		var h Hex

		err := json.Unmarshal([]byte(input), &h)
		require.NoError(t, err)
		assert.Equal(t, Hex("0X2F"), h)
	})

	t.Run("missing 0x prefix", func(t *testing.T) {
		input := `"1a"`
		var h Hex

		err := json.Unmarshal([]byte(input), &h)
		require.Error(t, err)
	})

	t.Run("invalid hex characters", func(t *testing.T) {
		input := `"0xZZZ"`
		var h Hex

		err := json.Unmarshal([]byte(input), &h)
		require.Error(t, err)
	})

	t.Run("not a string", func(t *testing.T) {
		input := `42`
		var h Hex

		err := json.Unmarshal([]byte(input), &h)
		require.Error(t, err)
	})
}

func TestHex_Uint64(t *testing.T) {
	t.Run("0x0a should be 10", func(t *testing.T) {
		var h Hex = "0x0a"
		assert.Equal(t, uint64(10), h.Uint64())
	})

	t.Run("0X10 should be 16", func(t *testing.T) {
		var h Hex = "0X10"
		assert.Equal(t, uint64(16), h.Uint64())
	})

	t.Run("invalid hex returns 0", func(t *testing.T) {
		var h Hex = "0xZZZ"
		assert.Equal(t, uint64(0), h.Uint64())
	})

	t.Run("empty value returns 0", func(t *testing.T) {
		var h Hex
		assert.Equal(t, uint64(0), h.Uint64())
	})
}
