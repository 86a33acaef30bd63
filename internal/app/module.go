package app

import (
	"go.uber.org/fx"

	"opsdash/internal/app/bus"
	"opsdash/internal/app/catalog"
	"opsdash/internal/app/cli"
	"opsdash/internal/app/generator"
	"opsdash/internal/app/logs"
	"opsdash/internal/app/monitor"
	"opsdash/internal/app/runner"
	"opsdash/internal/app/ui/dashboard"
	"opsdash/internal/config/logger"
)

var Module = fx.Options(
	cli.Module,
	logger.Module,
	bus.Module,
	catalog.Module,
	monitor.Module,
	logs.Module,
	generator.Module,
	runner.Module,
	dashboard.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
