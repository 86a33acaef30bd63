package logger

import (
	"context"

	"go.uber.org/fx"

	"opsdash/internal/config"
)

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Invoke(registerFlush),
)

// registerFlush delivers pending error reports when the application stops
func registerFlush(lc fx.Lifecycle, log Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if app, ok := log.(*AppLogger); ok {
				app.Flush(config.ShutdownTimeout)
			}

			return nil
		},
	})
}
