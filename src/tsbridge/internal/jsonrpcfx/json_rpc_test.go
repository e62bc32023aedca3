package jsonrpcfx

import (
	"context"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func newProvider(t *testing.T, yaml string) config.Provider {
	t.Helper()
	provider, err := config.NewYAML(config.Source(strings.NewReader(yaml)))
	require.NoError(t, err)
	return provider
}

type fakeConnectionManager struct {
	removed []uuid.UUID
}

func (f *fakeConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (Router, error) {
	return nil, nil
}

func (f *fakeConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	f.removed = append(f.removed, id)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		params  func(t *testing.T) Params
		wantErr bool
	}{
		{
			name:    "missing required params",
			params:  func(t *testing.T) Params { return Params{} },
			wantErr: true,
		},
		{
			name: "all required params are present",
			params: func(t *testing.T) Params {
				return Params{
					Lifecycle: fxtest.NewLifecycle(t),
					Config:    newProvider(t, "jsonrpc:\n  address: 127.0.0.1:0\n"),
					Logger:    zap.NewNop().Sugar(),
				}
			},
		},
		{
			name: "missing address",
			params: func(t *testing.T) Params {
				return Params{
					Lifecycle: fxtest.NewLifecycle(t),
					Config:    newProvider(t, "jsonrpc:\n  other: value\n"),
					Logger:    zap.NewNop().Sugar(),
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.params(t))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterConnectionManager(t *testing.T) {
	m := module{}
	mgr := &fakeConnectionManager{}

	// first call should return no error
	assert.NoError(t, m.RegisterConnectionManager(mgr))

	// duplicate call should return error
	assert.Error(t, m.RegisterConnectionManager(mgr))
}

func TestServeStreamWithoutConnectionManager(t *testing.T) {
	m := module{logger: zap.NewNop().Sugar()}

	var conn jsonrpc2.Conn
	assert.Error(t, m.ServeStream(context.Background(), conn))
}

func TestSetupBeforeConfig(t *testing.T) {
	m := module{}
	assert.Error(t, m.setup())
}

func TestSetupListensOnConfiguredAddress(t *testing.T) {
	m := module{Address: "127.0.0.1:0"}
	require.NoError(t, m.setup())
	defer m.ln.Close()
	assert.NotNil(t, m.ln)
}
