package daemon

import (
	"context"
	"errors"
	"fmt"

	"github.com/tsbridge/tsbridge/src/tsbridge/entity"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"github.com/tsbridge/tsbridge/src/tsbridge/mapper"
	"go.lsp.dev/protocol"
	"go.uber.org/multierr"
)

// DidOpen registers the file, pushes its full text to the subprocess, and
// schedules re-analysis of all open files.
func (c *controller) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	path := mapper.URIToPath(params.TextDocument.URI)
	c.files.open(path)
	c.diagnostics.Open(ctx, params.TextDocument.URI)

	if err := c.ts.Notify(tsserver.CommandOpen, tsserver.OpenArgs{
		File:        path,
		FileContent: params.TextDocument.Text,
	}); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	c.requestDiagnostics()
	return nil
}

// DidChange forwards each incremental edit and refreshes the file's touch
// timestamp. An edit without a range cannot be applied incrementally; it
// degrades to a full-text resynchronization with a logged warning.
func (c *controller) DidChange(ctx context.Context, params *entity.DidChangeParams) error {
	path := mapper.URIToPath(params.TextDocument.URI)
	if !c.files.touch(path) {
		return fmt.Errorf("change for file not open: %s", path)
	}

	var errs error
	for _, change := range params.ContentChanges {
		if change.Range == nil {
			c.logger.Warnw("change event without range, resynchronizing full text", "file", path)
			errs = multierr.Append(errs, c.ts.Notify(tsserver.CommandOpen, tsserver.OpenArgs{
				File:        path,
				FileContent: change.Text,
			}))
			continue
		}

		start := mapper.PositionToLocation(change.Range.Start)
		end := mapper.PositionToLocation(change.Range.End)
		errs = multierr.Append(errs, c.ts.Notify(tsserver.CommandChange, tsserver.ChangeArgs{
			File:         path,
			Line:         start.Line,
			Offset:       start.Offset,
			EndLine:      end.Line,
			EndOffset:    end.Offset,
			InsertString: change.Text,
		}))
	}
	if errs != nil {
		return errs
	}

	c.requestDiagnostics()
	return nil
}

// DidClose removes the file from the open set, discards its diagnostics, and
// notifies the subprocess.
func (c *controller) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	path := mapper.URIToPath(params.TextDocument.URI)
	c.files.close(path)
	c.diagnostics.Close(ctx, params.TextDocument.URI)

	return c.ts.Notify(tsserver.CommandClose, tsserver.FileArgs{File: path})
}

// DidSave requires no subprocess notification; the subprocess tracks the
// in-editor contents, not the on-disk state.
func (c *controller) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	return nil
}

// requestDiagnostics asks the subprocess to re-analyze every open file, least
// recently touched first.
func (c *controller) requestDiagnostics() {
	files := c.files.orderedLeastRecent()
	if len(files) == 0 {
		return
	}

	if err := c.ts.Notify(tsserver.CommandGeterr, tsserver.GeterrArgs{
		Files: files,
		Delay: _geterrDelayMillis,
	}); err != nil {
		c.logger.Warnw("failed to request re-analysis", "error", err)
		if errors.Is(err, tsserver.ErrClosed) {
			_ = c.ideGateway.ShowMessage(context.Background(), &protocol.ShowMessageParams{
				Type:    protocol.MessageTypeError,
				Message: "analysis subprocess is not running; diagnostics are unavailable",
			})
		}
	}
}
