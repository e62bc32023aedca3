package mapper

import (
	"encoding/json"
	"strings"

	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// CompletionData rides along on each completion item so the later resolve call
// can re-address the originating position.
type CompletionData struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Offset int    `json:"offset"`
}

// CompletionEntriesToLSP converts completion entries into LSP completion
// items, attaching resolve data for the originating position.
func CompletionEntriesToLSP(entries []tsserver.CompletionEntry, docURI uri.URI, pos protocol.Position) []protocol.CompletionItem {
	loc := PositionToLocation(pos)
	data := CompletionData{File: URIToPath(docURI), Line: loc.Line, Offset: loc.Offset}

	result := make([]protocol.CompletionItem, 0, len(entries))
	for _, e := range entries {
		result = append(result, protocol.CompletionItem{
			Label:    e.Name,
			Kind:     completionKindToLSP(e.Kind),
			SortText: e.SortText,
			Data:     data,
		})
	}
	return result
}

// ItemToCompletionData recovers the resolve data from a completion item after
// its round trip through the editor.
func ItemToCompletionData(item *protocol.CompletionItem) (CompletionData, error) {
	raw, err := json.Marshal(item.Data)
	if err != nil {
		return CompletionData{}, wrapErrParse(err)
	}
	var data CompletionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return CompletionData{}, wrapErrParse(err)
	}
	return data, nil
}

// ApplyCompletionDetails fills documentation and detail onto a resolved item.
func ApplyCompletionDetails(item *protocol.CompletionItem, details []tsserver.CompletionEntryDetails) {
	for _, d := range details {
		if d.Name != item.Label {
			continue
		}
		item.Detail = joinDisplayParts(d.DisplayParts)
		if doc := joinDisplayParts(d.Documentation); doc != "" {
			item.Documentation = doc
		}
		return
	}
}

func joinDisplayParts(parts []tsserver.SymbolDisplayPart) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func completionKindToLSP(kind string) protocol.CompletionItemKind {
	switch kind {
	case "method", "construct":
		return protocol.CompletionItemKindMethod
	case "function", "local function":
		return protocol.CompletionItemKindFunction
	case "class":
		return protocol.CompletionItemKindClass
	case "interface":
		return protocol.CompletionItemKindInterface
	case "enum":
		return protocol.CompletionItemKindEnum
	case "module", "external module name":
		return protocol.CompletionItemKindModule
	case "property", "getter", "setter":
		return protocol.CompletionItemKindProperty
	case "keyword":
		return protocol.CompletionItemKindKeyword
	case "const", "let", "var", "local var", "parameter":
		return protocol.CompletionItemKindVariable
	case "alias":
		return protocol.CompletionItemKindReference
	case "directory", "script":
		return protocol.CompletionItemKindFile
	default:
		return protocol.CompletionItemKindText
	}
}
