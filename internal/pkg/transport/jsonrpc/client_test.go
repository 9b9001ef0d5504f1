package jsonrpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when there is no error object", func(t *testing.T) {
		assert.NoError(t, response{JsonRPC: "2.0"}.Err())
	})

	t.Run("wraps the error object", func(t *testing.T) {
		err := response{
			JsonRPC: "2.0",
			Error:   &rpcError{Code: -32601, Message: "method not found"},
		}.Err()

		require.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Contains(t, err.Error(), "[-32601]")
		assert.Contains(t, err.Error(), "method not found")
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("sends a JSON-RPC 2.0 request and returns the raw result", func(t *testing.T) {
		var received request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      received.ID,
				"result":  "0xc8",
			})
		}))
		defer server.Close()

		c := NewClient(server.Client(), server.URL)

		result, err := c.Fetch(t.Context(), "eth_getBlockByNumber", "0x96", true)
		require.NoError(t, err)

		assert.JSONEq(t, `"0xc8"`, string(result))
		assert.Equal(t, "2.0", received.JsonRPC)
		assert.Equal(t, "eth_getBlockByNumber", received.Method)
		assert.Equal(t, []any{"0x96", true}, received.Params)
		assert.NotEmpty(t, received.ID)
	})

	t.Run("sends an empty params array when none are given", func(t *testing.T) {
		var raw map[string]json.RawMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":"0x1"}`))
		}))
		defer server.Close()

		_, err := NewClient(server.Client(), server.URL).Fetch(t.Context(), "eth_blockNumber")
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(raw["params"]))
	})

	t.Run("returns a null result without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":null}`))
		}))
		defer server.Close()

		result, err := NewClient(server.Client(), server.URL).Fetch(t.Context(), "eth_getBlockByNumber", "0xffff", true)
		require.NoError(t, err)
		assert.Equal(t, "null", string(result))
	})

	t.Run("returns the JSON-RPC error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32601,"message":"method not found"}}`))
		}))
		defer server.Close()

		result, err := NewClient(server.Client(), server.URL).Fetch(t.Context(), "eth_unknown")
		require.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "method not found")
	})

	t.Run("reports a non-2xx status without a JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "forbidden", http.StatusForbidden)
		}))
		defer server.Close()

		result, err := NewClient(server.Client(), server.URL).Fetch(t.Context(), "eth_blockNumber")
		require.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("fails on a malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		}))
		defer server.Close()

		result, err := NewClient(server.Client(), server.URL).Fetch(t.Context(), "eth_blockNumber")
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "invalid character")
	})

	t.Run("fails when the node is unreachable", func(t *testing.T) {
		server := httptest.NewServer(nil)
		server.Close()

		result, err := NewClient(server.Client(), server.URL).Fetch(t.Context(), "eth_blockNumber")
		require.Error(t, err)
		assert.Nil(t, result)
	})
}
