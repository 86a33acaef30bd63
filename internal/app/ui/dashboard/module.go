package dashboard

import (
	"go.uber.org/fx"
)

// Module provides the interactive dashboard
var Module = fx.Options(
	fx.Provide(
		NewUI,
	),
)
