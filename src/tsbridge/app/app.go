// Package app assembles the tsbridge daemon's Fx application.
package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally"
	daemonctrl "github.com/tsbridge/tsbridge/src/tsbridge/controller/daemon"
	"github.com/tsbridge/tsbridge/src/tsbridge/controller/diagnostics"
	ideclient "github.com/tsbridge/tsbridge/src/tsbridge/gateway/ide-client"
	handler "github.com/tsbridge/tsbridge/src/tsbridge/handler/daemon"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/clock"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/core"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/jsonrpcfx"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/serverinfofile"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/tsserver"
	"go.uber.org/fx"
)

// Module defines the tsbridge application module.
var Module = fx.Options(
	core.ConfigModule,
	core.LoggerModule,
	clock.Module,
	jsonrpcfx.Module,
	serverinfofile.Module,
	tsserver.Module,
	diagnostics.Module,
	daemonctrl.Module,
	fx.Provide(ideclient.New),
	fx.Provide(handler.New),
	fx.Invoke(func(h handler.Handler) {}),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "tsbridge",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
)
