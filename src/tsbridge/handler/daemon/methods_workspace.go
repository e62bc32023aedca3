package daemon

import (
	"context"

	"github.com/tsbridge/tsbridge/src/tsbridge/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) WorkspaceSymbol(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToWorkspaceSymbolParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.daemon.WorkspaceSymbol(ctx, params)
	return reply(ctx, result, err)
}
