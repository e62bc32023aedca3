// Package diagnostics reconciles the independently arriving syntactic and
// semantic diagnostic subsets into one coherent publication per file.
package diagnostics

import (
	"context"
	"sync"

	tally "github.com/uber-go/tally"
	ideclient "github.com/tsbridge/tsbridge/src/tsbridge/gateway/ide-client"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "diagnostics"

// Module provides the Controller for fx.
var Module = fx.Provide(New)

// Controller coalesces per-file diagnostic subsets and publishes a full
// replacement snapshot to the editor on every update.
type Controller interface {
	// Open registers a file as eligible for diagnostic publication.
	Open(ctx context.Context, docURI uri.URI)
	// AddSyntactic replaces the file's syntactic subset and republishes.
	AddSyntactic(ctx context.Context, docURI uri.URI, diags []protocol.Diagnostic)
	// AddSemantic replaces the file's semantic subset and republishes.
	AddSemantic(ctx context.Context, docURI uri.URI, diags []protocol.Diagnostic)
	// Close discards the file's bucket; no further publish occurs for the
	// file unless it is reopened. Events racing a close are dropped silently.
	Close(ctx context.Context, docURI uri.URI)
}

// bucket holds the most recent diagnostic subsets for one open file. A nil
// slot means that kind has not been computed yet this generation.
type bucket struct {
	syntactic []protocol.Diagnostic
	semantic  []protocol.Diagnostic
}

type controller struct {
	ideGateway ideclient.Gateway
	logger     *zap.SugaredLogger
	stats      tally.Scope

	bucketsMu sync.Mutex
	buckets   map[uri.URI]*bucket
}

// Params are inbound parameters to construct a new Controller.
type Params struct {
	fx.In

	IdeGateway ideclient.Gateway
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

// New creates a diagnostics coordinator.
func New(p Params) Controller {
	return &controller{
		ideGateway: p.IdeGateway,
		logger:     p.Logger.With("component", _nameKey),
		stats:      p.Stats.SubScope(_nameKey),
		buckets:    make(map[uri.URI]*bucket),
	}
}

func (c *controller) Open(ctx context.Context, docURI uri.URI) {
	c.bucketsMu.Lock()
	defer c.bucketsMu.Unlock()
	c.buckets[docURI] = &bucket{}
}

func (c *controller) AddSyntactic(ctx context.Context, docURI uri.URI, diags []protocol.Diagnostic) {
	c.apply(ctx, docURI, diags, func(b *bucket, d []protocol.Diagnostic) { b.syntactic = d })
}

func (c *controller) AddSemantic(ctx context.Context, docURI uri.URI, diags []protocol.Diagnostic) {
	c.apply(ctx, docURI, diags, func(b *bucket, d []protocol.Diagnostic) { b.semantic = d })
}

func (c *controller) Close(ctx context.Context, docURI uri.URI) {
	c.bucketsMu.Lock()
	defer c.bucketsMu.Unlock()
	delete(c.buckets, docURI)
}

// apply updates one slot and publishes the union of both. The most recently
// delivered set of a kind is authoritative; a stale redelivery cannot be told
// apart from a fresh update.
func (c *controller) apply(ctx context.Context, docURI uri.URI, diags []protocol.Diagnostic, set func(*bucket, []protocol.Diagnostic)) {
	if diags == nil {
		diags = []protocol.Diagnostic{}
	}

	c.bucketsMu.Lock()
	b, ok := c.buckets[docURI]
	if !ok {
		c.bucketsMu.Unlock()
		// The file was closed; the event raced the close.
		c.stats.Counter("dropped").Inc(1)
		return
	}
	set(b, diags)

	merged := make([]protocol.Diagnostic, 0, len(b.syntactic)+len(b.semantic))
	merged = append(merged, b.syntactic...)
	merged = append(merged, b.semantic...)
	c.bucketsMu.Unlock()

	c.stats.Counter("published").Inc(1)
	if err := c.ideGateway.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         docURI,
		Diagnostics: merged,
	}); err != nil {
		c.logger.Errorw("publishing diagnostics", "uri", docURI, "error", err)
	}
}
