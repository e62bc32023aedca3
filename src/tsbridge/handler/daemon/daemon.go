// Package daemon wires incoming editor connections to the bridge controller.
package daemon

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally"
	controller "github.com/tsbridge/tsbridge/src/tsbridge/controller/daemon"
	"github.com/tsbridge/tsbridge/src/tsbridge/entity"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
)

// Handler accepts editor connections and hands each one a request router.
type Handler = jsonrpcfx.ConnectionManager

// New constructs the connection manager and registers it with the JSON-RPC module.
func New(ctrl controller.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, stats tally.Scope) (Handler, error) {
	c := jsonRPCConnectionManager{
		daemon: ctrl,
		stats:  stats.SubScope("json_rpc"),
	}
	if err := jsonrpcmod.RegisterConnectionManager(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

type jsonRPCConnectionManager struct {
	daemon controller.Controller
	stats  tally.Scope
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router jsonrpcfx.Router, err error) {
	id, err := c.daemon.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	r := jsonRPCRouter{
		daemon: c.daemon,
		uuid:   id,
		stats:  c.stats,
	}

	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure session is removed even if no Exit call has been received.
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.daemon.EndSession(ctx, id)
}
