package mapper

import (
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// RenameBodyToWorkspaceEdit converts rename locations into an LSP workspace
// edit applying newText at every occurrence. A refusal to rename (canRename
// false) or an empty location set yields an edit with zero changes.
func RenameBodyToWorkspaceEdit(body *tsserver.RenameBody, newText string) *protocol.WorkspaceEdit {
	edit := &protocol.WorkspaceEdit{Changes: map[uri.URI][]protocol.TextEdit{}}
	if body == nil || !body.Info.CanRename {
		return edit
	}

	for _, group := range body.Locs {
		docURI := uri.File(group.File)
		for _, span := range group.Locs {
			edit.Changes[docURI] = append(edit.Changes[docURI], protocol.TextEdit{
				Range:   SpanToRange(span),
				NewText: newText,
			})
		}
	}
	return edit
}

// FileSpansToLocations converts definition results into LSP locations.
func FileSpansToLocations(spans []tsserver.FileSpan) []protocol.Location {
	result := make([]protocol.Location, 0, len(spans))
	for _, s := range spans {
		result = append(result, FileSpanToLocation(s))
	}
	return result
}

// ReferencesToLocations converts reference occurrences into LSP locations.
func ReferencesToLocations(body *tsserver.ReferencesBody) []protocol.Location {
	if body == nil {
		return []protocol.Location{}
	}
	result := make([]protocol.Location, 0, len(body.Refs))
	for _, ref := range body.Refs {
		result = append(result, protocol.Location{
			URI: uri.File(ref.File),
			Range: protocol.Range{
				Start: LocationToPosition(ref.Start),
				End:   LocationToPosition(ref.End),
			},
		})
	}
	return result
}

// QuickInfoToHover converts a quickinfo body into an LSP hover. An empty
// display string yields nil so the editor shows nothing instead of an empty
// popup.
func QuickInfoToHover(body *tsserver.QuickInfoBody) *protocol.Hover {
	if body == nil || body.DisplayString == "" {
		return nil
	}

	value := body.DisplayString
	if body.Documentation != "" {
		value += "\n\n" + body.Documentation
	}

	hoverRange := protocol.Range{
		Start: LocationToPosition(body.Start),
		End:   LocationToPosition(body.End),
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: value,
		},
		Range: &hoverRange,
	}
}
