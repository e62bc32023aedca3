package mapper

import (
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// PositionToLocation converts a zero-based LSP position to a one-based
// subprocess location. The conversion is exact in both directions.
func PositionToLocation(p protocol.Position) tsserver.Location {
	return tsserver.Location{
		Line:   int(p.Line) + 1,
		Offset: int(p.Character) + 1,
	}
}

// LocationToPosition converts a one-based subprocess location to a zero-based
// LSP position.
func LocationToPosition(l tsserver.Location) protocol.Position {
	return protocol.Position{
		Line:      uint32(l.Line - 1),
		Character: uint32(l.Offset - 1),
	}
}

// SpanToRange converts a subprocess text span to an LSP range.
func SpanToRange(s tsserver.TextSpan) protocol.Range {
	return protocol.Range{
		Start: LocationToPosition(s.Start),
		End:   LocationToPosition(s.End),
	}
}

// FileSpanToLocation converts a subprocess file span to an LSP location.
func FileSpanToLocation(s tsserver.FileSpan) protocol.Location {
	return protocol.Location{
		URI: uri.File(s.File),
		Range: protocol.Range{
			Start: LocationToPosition(s.Start),
			End:   LocationToPosition(s.End),
		},
	}
}

// URIToPath converts an editor document URI to the absolute file path used to
// key subprocess state.
func URIToPath(docURI uri.URI) string {
	return docURI.Filename()
}

// PositionToFileLocationArgs builds the file/line/offset argument triple for a
// position-addressed subprocess request.
func PositionToFileLocationArgs(docURI uri.URI, p protocol.Position) tsserver.FileLocationArgs {
	loc := PositionToLocation(p)
	return tsserver.FileLocationArgs{
		File:   URIToPath(docURI),
		Line:   loc.Line,
		Offset: loc.Offset,
	}
}
