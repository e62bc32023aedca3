// Package daemon implements the bridge's business logic: it translates each
// editor operation into analysis subprocess requests and reshapes the results.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally"
	"github.com/tsbridge/tsbridge/src/tsbridge/controller/diagnostics"
	"github.com/tsbridge/tsbridge/src/tsbridge/entity"
	ideclient "github.com/tsbridge/tsbridge/src/tsbridge/gateway/ide-client"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/clock"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey    = "daemon"
	_serverName = "tsbridge"

	// Delay handed to the subprocess before it begins re-analysis, so rapid
	// consecutive edits coalesce into one diagnostics pass.
	_geterrDelayMillis = 100
)

// Module provides the Controller for fx.
var Module = fx.Provide(New)

// Controller orchestrates the business logic for each request.
type Controller interface {
	// Lifecycle methods.
	Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error)
	Initialized(ctx context.Context, params *protocol.InitializedParams) error
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error

	// Document lifecycle methods.
	DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error
	DidChange(ctx context.Context, params *entity.DidChangeParams) error
	DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error
	DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error

	// Code intel methods.
	Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error)
	DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]protocol.SymbolInformation, error)
	Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error)
	CompletionResolve(ctx context.Context, item *protocol.CompletionItem) (*protocol.CompletionItem, error)
	Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error)
	Rename(ctx context.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error)
	References(ctx context.Context, params *protocol.ReferenceParams) ([]protocol.Location, error)

	// Workspace methods.
	WorkspaceSymbol(ctx context.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error)

	// Connection management for the serving layer.
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, id uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner  fx.Shutdowner
	TSServer    tsserver.Client
	Diagnostics diagnostics.Controller
	IdeGateway  ideclient.Gateway
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
	Clock       clock.Clock
}

type controller struct {
	shutdowner  fx.Shutdowner
	ts          tsserver.Client
	diagnostics diagnostics.Controller
	ideGateway  ideclient.Gateway
	logger      *zap.SugaredLogger
	stats       tally.Scope
	files       *openFileStore

	rootMu   sync.Mutex
	rootPath string
}

// New constructs the controller and registers it as the subprocess event handler.
func New(p Params) (Controller, error) {
	c := &controller{
		shutdowner:  p.Shutdowner,
		ts:          p.TSServer,
		diagnostics: p.Diagnostics,
		ideGateway:  p.IdeGateway,
		logger:      p.Logger.With("component", _nameKey),
		stats:       p.Stats.SubScope(_nameKey),
		files:       newOpenFileStore(p.Clock),
	}

	if err := p.TSServer.SetEventHandler(c.handleEvent); err != nil {
		return nil, fmt.Errorf("registering event handler: %w", err)
	}
	if err := p.TSServer.SetStderrHandler(c.forwardStderr); err != nil {
		return nil, fmt.Errorf("registering stderr handler: %w", err)
	}
	return c, nil
}

// forwardStderr relays a subprocess stderr line to the connected editor as a
// log message. Errors are ignored; there may be no client connected yet.
func (c *controller) forwardStderr(line string) {
	_ = c.ideGateway.LogMessage(context.Background(), &protocol.LogMessageParams{
		Type:    protocol.MessageTypeLog,
		Message: line,
	})
}

func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generating session id: %w", err)
	}
	if err := c.ideGateway.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}
	c.stats.Counter("sessions").Inc(1)
	return id, nil
}

func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	return c.ideGateway.DeregisterClient(ctx, id)
}

// isTransportFailure reports whether a request error is terminal for the
// caller, as opposed to the subprocess declining to produce a result.
func isTransportFailure(err error) bool {
	return errors.Is(err, tsserver.ErrClosed) ||
		errors.Is(err, tsserver.ErrTimeout) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// refused logs and absorbs a semantic refusal so the caller sees a neutral
// result. Transport failures are never absorbed.
func (c *controller) refused(command string, err error) bool {
	if err == nil || isTransportFailure(err) {
		return false
	}
	c.stats.Counter("refusals").Inc(1)
	c.logger.Debugw("subprocess declined request", "command", command, "error", err)
	return true
}
