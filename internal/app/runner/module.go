package runner

import (
	"go.uber.org/fx"
)

// Module provides the headless runner
var Module = fx.Options(
	fx.Provide(
		NewRunner,
	),
)
