package daemon

import (
	"context"
	"encoding/json"

	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"github.com/tsbridge/tsbridge/src/tsbridge/mapper"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// handleEvent routes unsolicited subprocess events. Diagnostics are handed to
// the coordinator; anything else is logged and ignored.
func (c *controller) handleEvent(e tsserver.Event) {
	ctx := context.Background()

	switch e.Name {
	case tsserver.EventSyntaxDiag:
		c.applyDiagnostics(ctx, e, c.diagnostics.AddSyntactic)
	case tsserver.EventSemanticDiag:
		c.applyDiagnostics(ctx, e, c.diagnostics.AddSemantic)
	default:
		c.stats.Counter("ignored_events").Inc(1)
		c.logger.Debugw("ignoring unhandled event", "event", e.Name)
	}
}

func (c *controller) applyDiagnostics(ctx context.Context, e tsserver.Event, apply func(context.Context, uri.URI, []protocol.Diagnostic)) {
	var body tsserver.DiagnosticEventBody
	if err := json.Unmarshal(e.Body, &body); err != nil {
		c.logger.Warnw("discarding malformed diagnostic event", "event", e.Name, "error", err)
		return
	}
	apply(ctx, uri.File(body.File), mapper.DiagnosticsToLSP(body.Diagnostics))
}
