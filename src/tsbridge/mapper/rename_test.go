package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

func TestRenameBodyToWorkspaceEdit(t *testing.T) {
	body := &tsserver.RenameBody{
		Info: tsserver.RenameInfo{CanRename: true},
		Locs: []tsserver.SpanGroup{
			{
				File: "/workspace/a.ts",
				Locs: []tsserver.TextSpan{span(1, 5, 1, 8), span(7, 10, 7, 13)},
			},
			{
				File: "/workspace/b.ts",
				Locs: []tsserver.TextSpan{span(2, 1, 2, 4)},
			},
		},
	}

	edit := RenameBodyToWorkspaceEdit(body, "renamed")
	require.Len(t, edit.Changes, 2)

	aEdits := edit.Changes[uri.File("/workspace/a.ts")]
	require.Len(t, aEdits, 2)
	assert.Equal(t, "renamed", aEdits[0].NewText)
	assert.Equal(t, protocol.Position{Line: 0, Character: 4}, aEdits[0].Range.Start)

	bEdits := edit.Changes[uri.File("/workspace/b.ts")]
	require.Len(t, bEdits, 1)
}

func TestRenameRefusalYieldsEmptyEdit(t *testing.T) {
	body := &tsserver.RenameBody{
		Info: tsserver.RenameInfo{CanRename: false, LocalizedErrorText: "cannot rename library symbol"},
		Locs: []tsserver.SpanGroup{{
			File: "/workspace/a.ts",
			Locs: []tsserver.TextSpan{span(1, 1, 1, 2)},
		}},
	}

	edit := RenameBodyToWorkspaceEdit(body, "renamed")
	require.NotNil(t, edit)
	assert.Empty(t, edit.Changes)
}

func TestRenameNilBodyYieldsEmptyEdit(t *testing.T) {
	edit := RenameBodyToWorkspaceEdit(nil, "renamed")
	require.NotNil(t, edit)
	assert.Empty(t, edit.Changes)
}

func TestReferencesToLocations(t *testing.T) {
	locs := ReferencesToLocations(&tsserver.ReferencesBody{
		Refs: []tsserver.ReferenceEntry{
			{
				File:  "/workspace/a.ts",
				Start: tsserver.Location{Line: 1, Offset: 5},
				End:   tsserver.Location{Line: 1, Offset: 8},
				IsDef: true,
			},
			{
				File:  "/workspace/b.ts",
				Start: tsserver.Location{Line: 3, Offset: 1},
				End:   tsserver.Location{Line: 3, Offset: 4},
			},
		},
	})
	require.Len(t, locs, 2)
	assert.Equal(t, uri.File("/workspace/a.ts"), locs[0].URI)
	assert.Equal(t, protocol.Position{Line: 0, Character: 4}, locs[0].Range.Start)
	assert.Equal(t, uri.File("/workspace/b.ts"), locs[1].URI)
}

func TestQuickInfoToHover(t *testing.T) {
	hover := QuickInfoToHover(&tsserver.QuickInfoBody{
		Kind:          "const",
		DisplayString: "const x: number",
		Documentation: "The answer.",
		Start:         tsserver.Location{Line: 1, Offset: 7},
		End:           tsserver.Location{Line: 1, Offset: 8},
	})
	require.NotNil(t, hover)

	content := hover.Contents
	assert.Equal(t, protocol.Markdown, content.Kind)
	assert.Equal(t, "const x: number\n\nThe answer.", content.Value)
	require.NotNil(t, hover.Range)
	assert.Equal(t, protocol.Position{Line: 0, Character: 6}, hover.Range.Start)
}

func TestQuickInfoWithoutDisplayStringYieldsNil(t *testing.T) {
	assert.Nil(t, QuickInfoToHover(&tsserver.QuickInfoBody{}))
	assert.Nil(t, QuickInfoToHover(nil))
}
