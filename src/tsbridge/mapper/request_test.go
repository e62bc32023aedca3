package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsbridge/tsbridge/src/tsbridge/factory"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

func TestRequestToInitializeParams(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		params := protocol.InitializeParams{
			RootURI:   uri.File("/workspace"),
			ProcessID: 5555,
		}
		validReq := factory.JSONRPCRequest(protocol.MethodInitialize, params)
		result, err := RequestToInitializeParams(validReq)
		assert.NoError(t, err)
		assert.Equal(t, params.RootURI, result.RootURI)
		assert.Equal(t, params.ProcessID, result.ProcessID)
	})

	t.Run("invalid params", func(t *testing.T) {
		invalidReq := factory.JSONRPCRequest(protocol.MethodInitialize, struct {
			ProcessID string `json:"processId"`
		}{
			ProcessID: "not a number",
		})
		_, err := RequestToInitializeParams(invalidReq)
		assert.Error(t, err)
	})
}

func TestRequestToInitializedParams(t *testing.T) {
	validReq := factory.JSONRPCNotification(protocol.MethodInitialized, protocol.InitializedParams{})
	_, err := RequestToInitializedParams(validReq)
	assert.NoError(t, err)
}

func TestRequestToDidOpenTextDocumentParams(t *testing.T) {
	params := protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  uri.File("/workspace/a.ts"),
			Text: "let x = 1",
		},
	}
	validReq := factory.JSONRPCNotification(protocol.MethodTextDocumentDidOpen, params)
	result, err := RequestToDidOpenTextDocumentParams(validReq)
	assert.NoError(t, err)
	assert.Equal(t, params.TextDocument.URI, result.TextDocument.URI)
	assert.Equal(t, params.TextDocument.Text, result.TextDocument.Text)
}

func TestRequestToDidChangeParams(t *testing.T) {
	t.Run("incremental change keeps its range", func(t *testing.T) {
		validReq := factory.JSONRPCNotification(protocol.MethodTextDocumentDidChange, map[string]interface{}{
			"textDocument": map[string]interface{}{"uri": "file:///workspace/a.ts", "version": 2},
			"contentChanges": []map[string]interface{}{{
				"range": map[string]interface{}{
					"start": map[string]interface{}{"line": 1, "character": 2},
					"end":   map[string]interface{}{"line": 1, "character": 4},
				},
				"text": "y",
			}},
		})
		result, err := RequestToDidChangeParams(validReq)
		require.NoError(t, err)
		require.Len(t, result.ContentChanges, 1)
		require.NotNil(t, result.ContentChanges[0].Range)
		assert.Equal(t, protocol.Position{Line: 1, Character: 2}, result.ContentChanges[0].Range.Start)
		assert.Equal(t, "y", result.ContentChanges[0].Text)
	})

	t.Run("full text change has no range", func(t *testing.T) {
		validReq := factory.JSONRPCNotification(protocol.MethodTextDocumentDidChange, map[string]interface{}{
			"textDocument":   map[string]interface{}{"uri": "file:///workspace/a.ts", "version": 3},
			"contentChanges": []map[string]interface{}{{"text": "entire new text"}},
		})
		result, err := RequestToDidChangeParams(validReq)
		require.NoError(t, err)
		require.Len(t, result.ContentChanges, 1)
		assert.Nil(t, result.ContentChanges[0].Range)
		assert.Equal(t, "entire new text", result.ContentChanges[0].Text)
	})
}

func TestRequestToDefinitionParams(t *testing.T) {
	params := protocol.DefinitionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri.File("/workspace/a.ts")},
			Position:     protocol.Position{Line: 3, Character: 7},
		},
	}
	validReq := factory.JSONRPCRequest(protocol.MethodTextDocumentDefinition, params)
	result, err := RequestToDefinitionParams(validReq)
	assert.NoError(t, err)
	assert.Equal(t, params.Position, result.Position)
}

func TestRequestToRenameParams(t *testing.T) {
	params := protocol.RenameParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri.File("/workspace/a.ts")},
			Position:     protocol.Position{Line: 3, Character: 7},
		},
		NewName: "renamed",
	}
	validReq := factory.JSONRPCRequest(protocol.MethodTextDocumentRename, params)
	result, err := RequestToRenameParams(validReq)
	assert.NoError(t, err)
	assert.Equal(t, "renamed", result.NewName)
}

func TestRequestToWorkspaceSymbolParams(t *testing.T) {
	params := protocol.WorkspaceSymbolParams{Query: "Widget"}
	validReq := factory.JSONRPCRequest(protocol.MethodWorkspaceSymbol, params)
	result, err := RequestToWorkspaceSymbolParams(validReq)
	assert.NoError(t, err)
	assert.Equal(t, "Widget", result.Query)
}

func TestRequestToCompletionItem(t *testing.T) {
	item := protocol.CompletionItem{Label: "toString"}
	validReq := factory.JSONRPCRequest(protocol.MethodCompletionItemResolve, item)
	result, err := RequestToCompletionItem(validReq)
	assert.NoError(t, err)
	assert.Equal(t, "toString", result.Label)
}
