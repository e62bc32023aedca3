package mapper

import (
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"go.lsp.dev/protocol"
)

const _diagnosticSource = "tsserver"

// DiagnosticsToLSP converts subprocess diagnostics to LSP diagnostics.
func DiagnosticsToLSP(diags []tsserver.Diagnostic) []protocol.Diagnostic {
	result := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		diag := protocol.Diagnostic{
			Range: protocol.Range{
				Start: LocationToPosition(d.Start),
				End:   LocationToPosition(d.End),
			},
			Message:  d.Text,
			Severity: categoryToSeverity(d.Category),
			Source:   _diagnosticSource,
		}
		if d.Code != 0 {
			diag.Code = int32(d.Code)
		}
		result = append(result, diag)
	}
	return result
}

func categoryToSeverity(category string) protocol.DiagnosticSeverity {
	switch category {
	case "warning":
		return protocol.DiagnosticSeverityWarning
	case "suggestion":
		return protocol.DiagnosticSeverityHint
	case "message":
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}
