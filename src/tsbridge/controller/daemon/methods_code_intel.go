package daemon

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"github.com/tsbridge/tsbridge/src/tsbridge/mapper"
	"go.lsp.dev/protocol"
)

func (c *controller) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	args := mapper.PositionToFileLocationArgs(params.TextDocument.URI, params.Position)

	body, err := c.ts.Request(ctx, tsserver.CommandDefinition, args)
	if err != nil {
		if c.refused(tsserver.CommandDefinition, err) {
			return []protocol.Location{}, nil
		}
		return nil, err
	}

	var spans []tsserver.FileSpan
	if err := json.Unmarshal(body, &spans); err != nil {
		return nil, fmt.Errorf("parsing definition response: %w", err)
	}
	return mapper.FileSpansToLocations(spans), nil
}

func (c *controller) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]protocol.SymbolInformation, error) {
	args := tsserver.FileArgs{File: mapper.URIToPath(params.TextDocument.URI)}

	body, err := c.ts.Request(ctx, tsserver.CommandNavTree, args)
	if err != nil {
		if c.refused(tsserver.CommandNavTree, err) {
			return []protocol.SymbolInformation{}, nil
		}
		return nil, err
	}

	var tree tsserver.NavigationTree
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("parsing navtree response: %w", err)
	}
	return mapper.FlattenNavigationTree(&tree, params.TextDocument.URI), nil
}

func (c *controller) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	loc := mapper.PositionToLocation(params.Position)
	args := tsserver.CompletionsArgs{
		File:   mapper.URIToPath(params.TextDocument.URI),
		Line:   loc.Line,
		Offset: loc.Offset,
	}

	body, err := c.ts.Request(ctx, tsserver.CommandCompletions, args)
	if err != nil {
		if c.refused(tsserver.CommandCompletions, err) {
			return &protocol.CompletionList{Items: []protocol.CompletionItem{}}, nil
		}
		return nil, err
	}

	var entries []tsserver.CompletionEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parsing completions response: %w", err)
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        mapper.CompletionEntriesToLSP(entries, params.TextDocument.URI, params.Position),
	}, nil
}

func (c *controller) CompletionResolve(ctx context.Context, item *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	data, err := mapper.ItemToCompletionData(item)
	if err != nil || data.File == "" {
		// An item without usable resolve data is returned as-is.
		c.logger.Debugw("completion item missing resolve data", "label", item.Label)
		return item, nil
	}

	body, err := c.ts.Request(ctx, tsserver.CommandCompletionDetails, tsserver.CompletionDetailsArgs{
		File:       data.File,
		Line:       data.Line,
		Offset:     data.Offset,
		EntryNames: []string{item.Label},
	})
	if err != nil {
		if c.refused(tsserver.CommandCompletionDetails, err) {
			return item, nil
		}
		return nil, err
	}

	var details []tsserver.CompletionEntryDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("parsing completion details response: %w", err)
	}
	mapper.ApplyCompletionDetails(item, details)
	return item, nil
}

func (c *controller) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	args := mapper.PositionToFileLocationArgs(params.TextDocument.URI, params.Position)

	body, err := c.ts.Request(ctx, tsserver.CommandQuickInfo, args)
	if err != nil {
		if c.refused(tsserver.CommandQuickInfo, err) {
			return nil, nil
		}
		return nil, err
	}

	var info tsserver.QuickInfoBody
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("parsing quickinfo response: %w", err)
	}
	return mapper.QuickInfoToHover(&info), nil
}

// Rename returns an edit set with zero changes when the subprocess reports
// the location as non-renamable; a refusal to rename is a valid result, not
// an error.
func (c *controller) Rename(ctx context.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
	loc := mapper.PositionToLocation(params.Position)

	body, err := c.ts.Request(ctx, tsserver.CommandRename, tsserver.RenameArgs{
		File:   mapper.URIToPath(params.TextDocument.URI),
		Line:   loc.Line,
		Offset: loc.Offset,
	})
	if err != nil {
		if c.refused(tsserver.CommandRename, err) {
			return mapper.RenameBodyToWorkspaceEdit(nil, params.NewName), nil
		}
		return nil, err
	}

	var rename tsserver.RenameBody
	if err := json.Unmarshal(body, &rename); err != nil {
		return nil, fmt.Errorf("parsing rename response: %w", err)
	}
	if !rename.Info.CanRename {
		c.logger.Debugw("location not renamable", "reason", rename.Info.LocalizedErrorText)
	}
	return mapper.RenameBodyToWorkspaceEdit(&rename, params.NewName), nil
}

func (c *controller) References(ctx context.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	args := mapper.PositionToFileLocationArgs(params.TextDocument.URI, params.Position)

	body, err := c.ts.Request(ctx, tsserver.CommandReferences, args)
	if err != nil {
		if c.refused(tsserver.CommandReferences, err) {
			return []protocol.Location{}, nil
		}
		return nil, err
	}

	var refs tsserver.ReferencesBody
	if err := json.Unmarshal(body, &refs); err != nil {
		return nil, fmt.Errorf("parsing references response: %w", err)
	}
	return mapper.ReferencesToLocations(&refs), nil
}
