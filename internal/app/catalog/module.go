package catalog

import "go.uber.org/fx"

// Module provides the catalog loader and watcher
var Module = fx.Options(
	fx.Provide(
		NewLoader,
		NewWatcher,
	),
)
