package diagnostics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	tally "github.com/uber-go/tally"
	"github.com/tsbridge/tsbridge/src/tsbridge/gateway/ide-client/ideclientmock"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var _docURI = uri.File("/workspace/sample.ts")

func diag(msg string) protocol.Diagnostic {
	return protocol.Diagnostic{
		Message: msg,
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 1},
		},
	}
}

func newTestController(t *testing.T) (*controller, *ideclientmock.MockGateway) {
	ctrl := gomock.NewController(t)
	gateway := ideclientmock.NewMockGateway(ctrl)
	c := New(Params{
		IdeGateway: gateway,
		Logger:     zap.NewNop().Sugar(),
		Stats:      tally.NewTestScope("testing", make(map[string]string)),
	}).(*controller)
	return c, gateway
}

func TestSyntacticThenSemanticPublishesTwice(t *testing.T) {
	c, gateway := newTestController(t)
	ctx := context.Background()

	s1 := []protocol.Diagnostic{diag("missing semicolon")}
	m1 := []protocol.Diagnostic{diag("type mismatch")}

	var published [][]protocol.Diagnostic
	gateway.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, params *protocol.PublishDiagnosticsParams) error {
			assert.Equal(t, _docURI, params.URI)
			published = append(published, params.Diagnostics)
			return nil
		})

	c.Open(ctx, _docURI)
	c.AddSyntactic(ctx, _docURI, s1)
	c.AddSemantic(ctx, _docURI, m1)

	assert.Equal(t, s1, published[0])
	assert.Equal(t, append(append([]protocol.Diagnostic{}, s1...), m1...), published[1])
}

func TestArrivalOrderAcrossKindsIsIrrelevant(t *testing.T) {
	c, gateway := newTestController(t)
	ctx := context.Background()

	var last []protocol.Diagnostic
	gateway.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, params *protocol.PublishDiagnosticsParams) error {
			last = params.Diagnostics
			return nil
		})

	c.Open(ctx, _docURI)
	c.AddSemantic(ctx, _docURI, []protocol.Diagnostic{diag("type mismatch")})
	c.AddSyntactic(ctx, _docURI, []protocol.Diagnostic{diag("missing semicolon")})

	// Union contains both kinds regardless of which arrived first.
	assert.Len(t, last, 2)
}

func TestLatestOfAKindReplacesPrior(t *testing.T) {
	c, gateway := newTestController(t)
	ctx := context.Background()

	var last []protocol.Diagnostic
	gateway.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, params *protocol.PublishDiagnosticsParams) error {
			last = params.Diagnostics
			return nil
		})

	c.Open(ctx, _docURI)
	c.AddSyntactic(ctx, _docURI, []protocol.Diagnostic{diag("first pass"), diag("second issue")})
	c.AddSyntactic(ctx, _docURI, []protocol.Diagnostic{diag("fixed up")})

	assert.Equal(t, []protocol.Diagnostic{diag("fixed up")}, last)
}

func TestClearOnNewGeneration(t *testing.T) {
	c, gateway := newTestController(t)
	ctx := context.Background()

	var last []protocol.Diagnostic
	gateway.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, params *protocol.PublishDiagnosticsParams) error {
			last = params.Diagnostics
			return nil
		})

	c.Open(ctx, _docURI)
	c.AddSyntactic(ctx, _docURI, []protocol.Diagnostic{diag("missing semicolon")})

	// An empty set is a valid update and clears the slot on publish.
	c.AddSyntactic(ctx, _docURI, nil)
	assert.Empty(t, last)
}

func TestCloseDropsSubsequentEvents(t *testing.T) {
	c, gateway := newTestController(t)
	ctx := context.Background()

	gateway.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Times(1).Return(nil)

	c.Open(ctx, _docURI)
	c.AddSyntactic(ctx, _docURI, []protocol.Diagnostic{diag("missing semicolon")})
	c.Close(ctx, _docURI)

	// No publish for either kind after close.
	c.AddSyntactic(ctx, _docURI, []protocol.Diagnostic{diag("stale")})
	c.AddSemantic(ctx, _docURI, []protocol.Diagnostic{diag("stale")})
}

func TestEventForNeverOpenedFileDropped(t *testing.T) {
	c, _ := newTestController(t)

	// No publish expectation: the gateway must not be called.
	c.AddSemantic(context.Background(), _docURI, []protocol.Diagnostic{diag("stray")})
}

func TestNoPublishBeforeFirstEvent(t *testing.T) {
	c, _ := newTestController(t)

	c.Open(context.Background(), _docURI)
	// Opening alone publishes nothing.
}
