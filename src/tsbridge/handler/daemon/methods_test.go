package daemon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tally "github.com/uber-go/tally"
	"github.com/tsbridge/tsbridge/src/tsbridge/controller/daemon/daemonmock"
	"github.com/tsbridge/tsbridge/src/tsbridge/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func TestRoutedMethods(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		setReturn        func(c *daemonmock.MockController, result interface{}, err error)
		params           interface{}
		controllerResult interface{}
	}{
		{
			name:   "Initialize",
			method: protocol.MethodInitialize,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				r := result.(*protocol.InitializeResult)
				c.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(r, err)
			},
			params:           protocol.InitializeParams{},
			controllerResult: &protocol.InitializeResult{},
		},
		{
			name:   "Initialized",
			method: protocol.MethodInitialized,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				c.EXPECT().Initialized(gomock.Any(), gomock.Any()).Return(err)
			},
			params: protocol.InitializedParams{},
		},
		{
			name:   "DidOpen",
			method: protocol.MethodTextDocumentDidOpen,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				c.EXPECT().DidOpen(gomock.Any(), gomock.Any()).Return(err)
			},
			params: protocol.DidOpenTextDocumentParams{},
		},
		{
			name:   "DidChange",
			method: protocol.MethodTextDocumentDidChange,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				c.EXPECT().DidChange(gomock.Any(), gomock.Any()).Return(err)
			},
			params: entity.DidChangeParams{},
		},
		{
			name:   "DidClose",
			method: protocol.MethodTextDocumentDidClose,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				c.EXPECT().DidClose(gomock.Any(), gomock.Any()).Return(err)
			},
			params: protocol.DidCloseTextDocumentParams{},
		},
		{
			name:   "DidSave",
			method: protocol.MethodTextDocumentDidSave,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				c.EXPECT().DidSave(gomock.Any(), gomock.Any()).Return(err)
			},
			params: protocol.DidSaveTextDocumentParams{},
		},
		{
			name:   "GotoDefinition",
			method: protocol.MethodTextDocumentDefinition,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				r := result.([]protocol.Location)
				c.EXPECT().Definition(gomock.Any(), gomock.Any()).Return(r, err)
			},
			params:           protocol.DefinitionParams{},
			controllerResult: []protocol.Location{{}},
		},
		{
			name:   "DocumentSymbol",
			method: protocol.MethodTextDocumentDocumentSymbol,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				r := result.([]protocol.SymbolInformation)
				c.EXPECT().DocumentSymbol(gomock.Any(), gomock.Any()).Return(r, err)
			},
			params:           protocol.DocumentSymbolParams{},
			controllerResult: []protocol.SymbolInformation{{}},
		},
		{
			name:   "Completion",
			method: protocol.MethodTextDocumentCompletion,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				r := result.(*protocol.CompletionList)
				c.EXPECT().Completion(gomock.Any(), gomock.Any()).Return(r, err)
			},
			params:           protocol.CompletionParams{},
			controllerResult: &protocol.CompletionList{},
		},
		{
			name:   "CompletionResolve",
			method: protocol.MethodCompletionItemResolve,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				r := result.(*protocol.CompletionItem)
				c.EXPECT().CompletionResolve(gomock.Any(), gomock.Any()).Return(r, err)
			},
			params:           protocol.CompletionItem{},
			controllerResult: &protocol.CompletionItem{},
		},
		{
			name:   "Hover",
			method: protocol.MethodTextDocumentHover,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				r := result.(*protocol.Hover)
				c.EXPECT().Hover(gomock.Any(), gomock.Any()).Return(r, err)
			},
			params:           protocol.HoverParams{},
			controllerResult: &protocol.Hover{},
		},
		{
			name:   "Rename",
			method: protocol.MethodTextDocumentRename,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				r := result.(*protocol.WorkspaceEdit)
				c.EXPECT().Rename(gomock.Any(), gomock.Any()).Return(r, err)
			},
			params:           protocol.RenameParams{},
			controllerResult: &protocol.WorkspaceEdit{},
		},
		{
			name:   "References",
			method: protocol.MethodTextDocumentReferences,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				r := result.([]protocol.Location)
				c.EXPECT().References(gomock.Any(), gomock.Any()).Return(r, err)
			},
			params:           protocol.ReferenceParams{},
			controllerResult: []protocol.Location{{}},
		},
		{
			name:   "WorkspaceSymbol",
			method: protocol.MethodWorkspaceSymbol,
			setReturn: func(c *daemonmock.MockController, result interface{}, err error) {
				r := result.([]protocol.SymbolInformation)
				c.EXPECT().WorkspaceSymbol(gomock.Any(), gomock.Any()).Return(r, err)
			},
			params:           protocol.WorkspaceSymbolParams{},
			controllerResult: []protocol.SymbolInformation{{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()
			replier := newMockReplier()

			c := daemonmock.NewMockController(ctrl)
			r := jsonRPCRouter{
				daemon: c,
				stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
			}

			// Valid params.
			tt.setReturn(c, tt.controllerResult, nil)
			req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), tt.method, tt.params)
			err := r.HandleReq(ctx, replier, req)
			assert.NoError(t, err)

			// Invalid params.
			req, _ = jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), tt.method, 5)
			err = r.HandleReq(ctx, replier, req)
			assert.Error(t, err)

			// Controller error.
			tt.setReturn(c, tt.controllerResult, errors.New("err"))
			req, _ = jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), tt.method, tt.params)
			err = r.HandleReq(ctx, replier, req)
			assert.Error(t, err)
		})
	}
}

func TestShutdownAndExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	replier := newMockReplier()

	c := daemonmock.NewMockController(ctrl)
	r := jsonRPCRouter{
		daemon: c,
		stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
	}

	c.EXPECT().Shutdown(gomock.Any()).Return(nil)
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), protocol.MethodShutdown, nil)
	assert.NoError(t, r.HandleReq(ctx, replier, req))

	c.EXPECT().Exit(gomock.Any()).Return(nil)
	notif, _ := jsonrpc2.NewNotification(protocol.MethodExit, nil)
	assert.NoError(t, r.HandleReq(ctx, replier, notif))
}
