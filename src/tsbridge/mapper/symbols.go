package mapper

import (
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// FlattenNavigationTree converts the hierarchical symbol tree returned by the
// subprocess into a flat ordered list of symbols. A node's range spans from
// the start of its first source span to the end of its last; its container
// name is the display text of its parent. Nodes with no spans carry no
// position information and are skipped, but their children are still visited.
func FlattenNavigationTree(tree *tsserver.NavigationTree, docURI uri.URI) []protocol.SymbolInformation {
	result := make([]protocol.SymbolInformation, 0)
	flattenNavigationTree(tree, "", docURI, &result)
	return result
}

func flattenNavigationTree(node *tsserver.NavigationTree, container string, docURI uri.URI, out *[]protocol.SymbolInformation) {
	if node == nil {
		return
	}

	if len(node.Spans) > 0 {
		*out = append(*out, protocol.SymbolInformation{
			Name: node.Text,
			Kind: SymbolKindToLSP(node.Kind),
			Location: protocol.Location{
				URI: docURI,
				Range: protocol.Range{
					Start: LocationToPosition(node.Spans[0].Start),
					End:   LocationToPosition(node.Spans[len(node.Spans)-1].End),
				},
			},
			ContainerName: container,
		})
	}

	for i := range node.ChildItems {
		flattenNavigationTree(&node.ChildItems[i], node.Text, docURI, out)
	}
}

// NavToItemsToLSP converts workspace symbol search results.
func NavToItemsToLSP(items []tsserver.NavToItem) []protocol.SymbolInformation {
	result := make([]protocol.SymbolInformation, 0, len(items))
	for _, item := range items {
		result = append(result, protocol.SymbolInformation{
			Name: item.Name,
			Kind: SymbolKindToLSP(item.Kind),
			Location: protocol.Location{
				URI: uri.File(item.File),
				Range: protocol.Range{
					Start: LocationToPosition(item.Start),
					End:   LocationToPosition(item.End),
				},
			},
			ContainerName: item.ContainerName,
		})
	}
	return result
}

// SymbolKindToLSP maps the subprocess's symbol kind strings onto LSP kinds.
func SymbolKindToLSP(kind string) protocol.SymbolKind {
	switch kind {
	case "module", "external module name":
		return protocol.SymbolKindModule
	case "class", "local class":
		return protocol.SymbolKindClass
	case "interface":
		return protocol.SymbolKindInterface
	case "enum":
		return protocol.SymbolKindEnum
	case "enum member":
		return protocol.SymbolKindEnumMember
	case "function", "local function":
		return protocol.SymbolKindFunction
	case "method":
		return protocol.SymbolKindMethod
	case "constructor", "construct":
		return protocol.SymbolKindConstructor
	case "property", "getter", "setter":
		return protocol.SymbolKindProperty
	case "var", "let", "local var", "parameter":
		return protocol.SymbolKindVariable
	case "const":
		return protocol.SymbolKindConstant
	case "string":
		return protocol.SymbolKindString
	case "alias":
		return protocol.SymbolKindNamespace
	case "type":
		return protocol.SymbolKindTypeParameter
	default:
		return protocol.SymbolKindVariable
	}
}
