package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

func span(startLine, startOffset, endLine, endOffset int) tsserver.TextSpan {
	return tsserver.TextSpan{
		Start: tsserver.Location{Line: startLine, Offset: startOffset},
		End:   tsserver.Location{Line: endLine, Offset: endOffset},
	}
}

func TestFlattenNavigationTree(t *testing.T) {
	docURI := uri.File("/workspace/a.ts")
	tree := &tsserver.NavigationTree{
		// The root node has no spans; it contributes no symbol of its own.
		Text: "<root>",
		Kind: "script",
		ChildItems: []tsserver.NavigationTree{
			{
				Text:  "Widget",
				Kind:  "class",
				Spans: []tsserver.TextSpan{span(1, 1, 10, 2)},
				ChildItems: []tsserver.NavigationTree{
					{Text: "render", Kind: "method", Spans: []tsserver.TextSpan{span(3, 3, 5, 4)}},
				},
			},
			{Text: "helper", Kind: "function", Spans: []tsserver.TextSpan{span(12, 1, 14, 2)}},
		},
	}

	symbols := FlattenNavigationTree(tree, docURI)
	require.Len(t, symbols, 3)

	assert.Equal(t, "Widget", symbols[0].Name)
	assert.Equal(t, protocol.SymbolKindClass, symbols[0].Kind)
	assert.Equal(t, "<root>", symbols[0].ContainerName)
	assert.Equal(t, docURI, symbols[0].Location.URI)

	assert.Equal(t, "render", symbols[1].Name)
	assert.Equal(t, protocol.SymbolKindMethod, symbols[1].Kind)
	assert.Equal(t, "Widget", symbols[1].ContainerName)

	assert.Equal(t, "helper", symbols[2].Name)
	assert.Equal(t, protocol.SymbolKindFunction, symbols[2].Kind)
}

func TestFlattenVisitsChildrenOfSpanlessNodes(t *testing.T) {
	tree := &tsserver.NavigationTree{
		Text: "outer",
		ChildItems: []tsserver.NavigationTree{
			{
				Text: "middle", // also spanless
				ChildItems: []tsserver.NavigationTree{
					{Text: "inner", Kind: "const", Spans: []tsserver.TextSpan{span(1, 1, 1, 5)}},
				},
			},
		},
	}

	symbols := FlattenNavigationTree(tree, uri.File("/workspace/a.ts"))
	require.Len(t, symbols, 1)
	assert.Equal(t, "inner", symbols[0].Name)
	assert.Equal(t, "middle", symbols[0].ContainerName)
}

func TestFlattenRangeSpansFirstToLast(t *testing.T) {
	tree := &tsserver.NavigationTree{
		Text:  "merged",
		Kind:  "interface",
		Spans: []tsserver.TextSpan{span(2, 1, 4, 2), span(8, 1, 10, 2)},
	}

	symbols := FlattenNavigationTree(tree, uri.File("/workspace/a.ts"))
	require.Len(t, symbols, 1)
	assert.Equal(t, protocol.Position{Line: 1, Character: 0}, symbols[0].Location.Range.Start)
	assert.Equal(t, protocol.Position{Line: 9, Character: 1}, symbols[0].Location.Range.End)
}

func TestFlattenNilTree(t *testing.T) {
	symbols := FlattenNavigationTree(nil, uri.File("/workspace/a.ts"))
	assert.NotNil(t, symbols)
	assert.Empty(t, symbols)
}

func TestNavToItemsToLSP(t *testing.T) {
	symbols := NavToItemsToLSP([]tsserver.NavToItem{{
		Name:          "Widget",
		Kind:          "class",
		File:          "/workspace/w.ts",
		Start:         tsserver.Location{Line: 1, Offset: 1},
		End:           tsserver.Location{Line: 1, Offset: 7},
		ContainerName: "widgets",
	}})
	require.Len(t, symbols, 1)
	assert.Equal(t, uri.File("/workspace/w.ts"), symbols[0].Location.URI)
	assert.Equal(t, "widgets", symbols[0].ContainerName)
	assert.Equal(t, protocol.SymbolKindClass, symbols[0].Kind)
}

func TestSymbolKindToLSP(t *testing.T) {
	assert.Equal(t, protocol.SymbolKindMethod, SymbolKindToLSP("method"))
	assert.Equal(t, protocol.SymbolKindVariable, SymbolKindToLSP("let"))
	assert.Equal(t, protocol.SymbolKindConstant, SymbolKindToLSP("const"))
	assert.Equal(t, protocol.SymbolKindModule, SymbolKindToLSP("external module name"))
	// Unrecognized kinds degrade to variable rather than dropping the symbol.
	assert.Equal(t, protocol.SymbolKindVariable, SymbolKindToLSP("weird new kind"))
}
