// Package ethereum reads blocks from an Ethereum-compatible node over JSON-RPC.
package ethereum

import (
	"github.com/gabapcia/maxdelta/internal/balancechange"
	"github.com/gabapcia/maxdelta/internal/pkg/transport/jsonrpc"
)

// client implements balancechange.Blockchain on top of a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client
}

var _ balancechange.Blockchain = (*client)(nil)

// NewClient returns a chain data source backed by conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
