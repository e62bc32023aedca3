package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"github.com/tsbridge/tsbridge/src/tsbridge/mapper"
	"go.lsp.dev/protocol"
)

const _navToMaxResults = 256

// WorkspaceSymbol searches symbols project-wide. The subprocess protocol has
// no root-only query, so the search is scoped to the most recently touched
// open file, falling back to the initialization root when nothing is open.
func (c *controller) WorkspaceSymbol(ctx context.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	scope := c.files.mostRecent()
	if scope == "" {
		scope = c.root()
	}
	if scope == "" {
		return nil, errors.New("workspace symbol search before initialization")
	}

	body, err := c.ts.Request(ctx, tsserver.CommandNavTo, tsserver.NavToArgs{
		SearchValue:    params.Query,
		File:           scope,
		MaxResultCount: _navToMaxResults,
	})
	if err != nil {
		if c.refused(tsserver.CommandNavTo, err) {
			return []protocol.SymbolInformation{}, nil
		}
		return nil, err
	}

	var items []tsserver.NavToItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("parsing navto response: %w", err)
	}
	return mapper.NavToItemsToLSP(items), nil
}
