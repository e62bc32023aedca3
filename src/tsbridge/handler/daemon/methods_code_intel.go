package daemon

import (
	"context"

	"github.com/tsbridge/tsbridge/src/tsbridge/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) GotoDefinition(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDefinitionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.daemon.Definition(ctx, params)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) DocumentSymbol(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDocumentSymbolParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.daemon.DocumentSymbol(ctx, params)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) Completion(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCompletionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.daemon.Completion(ctx, params)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) CompletionResolve(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	item, err := mapper.RequestToCompletionItem(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.daemon.CompletionResolve(ctx, item)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) Hover(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToHoverParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.daemon.Hover(ctx, params)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) Rename(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToRenameParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.daemon.Rename(ctx, params)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) References(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToReferenceParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.daemon.References(ctx, params)
	return reply(ctx, result, err)
}
