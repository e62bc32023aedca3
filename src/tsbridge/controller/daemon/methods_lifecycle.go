package daemon

import (
	"context"

	"go.lsp.dev/protocol"
)

// Initialize records the workspace root and advertises the bridge's
// capabilities: incremental sync, completion with resolve, definition,
// document symbols, hover, rename, references and workspace symbols.
func (c *controller) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	root := params.RootPath
	if params.RootURI != "" {
		root = params.RootURI.Filename()
	}

	c.rootMu.Lock()
	c.rootPath = root
	c.rootMu.Unlock()
	c.logger.Infow("initialized", "rootPath", root)

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindIncremental,
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider:   true,
				TriggerCharacters: []string{".", "\"", "'", "/", "@", "<"},
			},
			DefinitionProvider:      true,
			DocumentSymbolProvider:  true,
			HoverProvider:           true,
			RenameProvider:          true,
			ReferencesProvider:      true,
			WorkspaceSymbolProvider: true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name: _serverName,
		},
	}, nil
}

// Initialized is sent after the client received the initialize result.
func (c *controller) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

// Shutdown stops the analysis subprocess. Restarting requires a new daemon.
func (c *controller) Shutdown(ctx context.Context) error {
	if err := c.ts.Stop(ctx); err != nil {
		// The subprocess may already have exited on its own.
		c.logger.Debugw("stopping subprocess during shutdown", "error", err)
	}
	return nil
}

// Exit asks the daemon process to exit.
func (c *controller) Exit(ctx context.Context) error {
	return c.shutdowner.Shutdown()
}

func (c *controller) root() string {
	c.rootMu.Lock()
	defer c.rootMu.Unlock()
	return c.rootPath
}
