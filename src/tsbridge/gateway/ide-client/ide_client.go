// Package ideclient sends outbound notifications to the connected editor.
package ideclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const _errSendToClient = "sending notification to editor: %w"

// Gateway is used to send outbound notifications to the editor. The bridge
// serves a single editor connection at a time; a second concurrent
// registration is rejected until the active client deregisters.
type Gateway interface {
	// RegisterClient registers the client for a newly initialized editor
	// connection. It fails while another client is registered.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient removes the client once its connection is closed.
	DeregisterClient(ctx context.Context, id uuid.UUID) error

	// Methods from the protocol.Client interface used by this bridge.
	PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error
	LogMessage(ctx context.Context, params *protocol.LogMessageParams) error
	ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error
}

type gateway struct {
	clientMu sync.Mutex
	clientID uuid.UUID
	client   protocol.Client
	logger   *zap.Logger
}

// New returns a Gateway for sending editor notifications.
func New(logger *zap.Logger) Gateway {
	return &gateway{logger: logger}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	g.clientMu.Lock()
	defer g.clientMu.Unlock()

	if g.client != nil {
		// The subprocess keys open files by absolute path with no session
		// axis; a second editor would corrupt the first one's document state.
		return fmt.Errorf("an editor client is already connected (%s)", g.clientID)
	}
	g.clientID = id
	g.client = protocol.ClientDispatcher(*conn, g.logger)
	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.clientMu.Lock()
	defer g.clientMu.Unlock()

	if g.clientID != id {
		return nil
	}
	g.clientID = uuid.Nil
	g.client = nil
	return nil
}

func (g *gateway) PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
	c, err := g.getClient()
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return c.PublishDiagnostics(ctx, params)
}

func (g *gateway) LogMessage(ctx context.Context, params *protocol.LogMessageParams) error {
	c, err := g.getClient()
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return c.LogMessage(ctx, params)
}

func (g *gateway) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	c, err := g.getClient()
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return c.ShowMessage(ctx, params)
}

func (g *gateway) getClient() (protocol.Client, error) {
	g.clientMu.Lock()
	defer g.clientMu.Unlock()

	if g.client == nil {
		return nil, fmt.Errorf("no editor client registered")
	}
	return g.client, nil
}
