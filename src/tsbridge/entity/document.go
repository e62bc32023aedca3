package entity

import (
	"time"

	"go.lsp.dev/protocol"
)

// OpenDocument tracks one file currently open in the editor. LastTouched
// orders re-analysis requests, least recently touched first.
type OpenDocument struct {
	Path        string
	LastTouched time.Time
}

// ContentChange mirrors protocol.TextDocumentContentChangeEvent but keeps the
// absence of the optional range observable, so a rangeless edit can be
// degraded to a full-text resynchronization instead of being misread as an
// insertion at the top of the file.
type ContentChange struct {
	Range       *protocol.Range `json:"range,omitempty"`
	RangeLength uint32          `json:"rangeLength,omitempty"`
	Text        string          `json:"text"`
}

// DidChangeParams is the incoming textDocument/didChange payload.
type DidChangeParams struct {
	TextDocument   protocol.VersionedTextDocumentIdentifier `json:"textDocument"`
	ContentChanges []ContentChange                          `json:"contentChanges"`
}
