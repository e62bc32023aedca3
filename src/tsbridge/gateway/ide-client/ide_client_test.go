package ideclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsbridge/tsbridge/src/tsbridge/factory"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

func TestRegisterAndDeregisterClient(t *testing.T) {
	ctx := context.Background()
	g := New(zap.NewNop()).(*gateway)

	id := factory.UUID()
	var conn jsonrpc2.Conn
	require.NoError(t, g.RegisterClient(ctx, id, &conn))
	assert.Equal(t, id, g.clientID)
	assert.NotNil(t, g.client)

	// Deregistering a different ID leaves the active client in place.
	require.NoError(t, g.DeregisterClient(ctx, factory.UUID()))
	assert.NotNil(t, g.client)

	require.NoError(t, g.DeregisterClient(ctx, id))
	assert.Nil(t, g.client)
}

func TestSecondConcurrentClientRejected(t *testing.T) {
	ctx := context.Background()
	g := New(zap.NewNop()).(*gateway)

	first := factory.UUID()
	second := factory.UUID()
	var conn jsonrpc2.Conn
	require.NoError(t, g.RegisterClient(ctx, first, &conn))

	// A second editor must not silently steal the first one's notifications.
	require.Error(t, g.RegisterClient(ctx, second, &conn))
	assert.Equal(t, first, g.clientID)

	// Once the first disconnects, a new client may register.
	require.NoError(t, g.DeregisterClient(ctx, first))
	require.NoError(t, g.RegisterClient(ctx, second, &conn))
	assert.Equal(t, second, g.clientID)
}

func TestNotificationsWithoutClientFail(t *testing.T) {
	ctx := context.Background()
	g := New(zap.NewNop())

	assert.Error(t, g.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{}))
	assert.Error(t, g.LogMessage(ctx, &protocol.LogMessageParams{}))
	assert.Error(t, g.ShowMessage(ctx, &protocol.ShowMessageParams{}))
}
