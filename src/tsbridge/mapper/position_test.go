package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

func TestPositionLocationRoundTrip(t *testing.T) {
	positions := []protocol.Position{
		{Line: 0, Character: 0},
		{Line: 0, Character: 41},
		{Line: 117, Character: 0},
		{Line: 5, Character: 12},
	}
	for _, pos := range positions {
		assert.Equal(t, pos, LocationToPosition(PositionToLocation(pos)))
	}
}

func TestPositionToLocationIsOneBased(t *testing.T) {
	loc := PositionToLocation(protocol.Position{Line: 0, Character: 0})
	assert.Equal(t, tsserver.Location{Line: 1, Offset: 1}, loc)
}

func TestSpanToRange(t *testing.T) {
	r := SpanToRange(tsserver.TextSpan{
		Start: tsserver.Location{Line: 3, Offset: 1},
		End:   tsserver.Location{Line: 4, Offset: 10},
	})
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 2, Character: 0},
		End:   protocol.Position{Line: 3, Character: 9},
	}, r)
}

func TestPositionToFileLocationArgs(t *testing.T) {
	args := PositionToFileLocationArgs(uri.File("/workspace/a.ts"), protocol.Position{Line: 9, Character: 4})
	assert.Equal(t, tsserver.FileLocationArgs{File: "/workspace/a.ts", Line: 10, Offset: 5}, args)
}

func TestURIToPath(t *testing.T) {
	assert.Equal(t, "/workspace/src/index.ts", URIToPath(uri.File("/workspace/src/index.ts")))
}
