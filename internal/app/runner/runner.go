package runner

//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"opsdash/internal/app/bus"
	"opsdash/internal/app/catalog"
	"opsdash/internal/app/controller"
	"opsdash/internal/app/logs"
	"opsdash/internal/config"
	"opsdash/internal/config/logger"
)

// Runner streams records to stdout without the TUI
type Runner interface {
	Run(ctx context.Context, opts controller.Options) error
}

type runner struct {
	cfg       *config.Config
	loader    catalog.Loader
	watcher   catalog.Watcher
	formatter *logs.Formatter
	bus       bus.Bus
	log       logger.Logger
	out       io.Writer
	signals   func(chan<- os.Signal)
}

// NewRunner creates a headless runner writing to stdout
func NewRunner(
	cfg *config.Config,
	loader catalog.Loader,
	watcher catalog.Watcher,
	formatter *logs.Formatter,
	b bus.Bus,
	log logger.Logger,
) Runner {
	return &runner{
		cfg:       cfg,
		loader:    loader,
		watcher:   watcher,
		formatter: formatter,
		bus:       b,
		log:       log.WithComponent("RUNNER"),
		out:       os.Stdout,
		signals: func(ch chan<- os.Signal) {
			signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		},
	}
}

// Run owns the stream until ctx is cancelled or a termination signal arrives
func (r *runner) Run(ctx context.Context, opts controller.Options) error {
	r.publishPhase(bus.PhaseStartup)
	defer r.publishPhase(bus.PhaseStopped)

	res, err := r.loader.Load(r.cfg.Catalog.Paths)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	r.log.Debug().Msgf("Loaded %d templates from %d files", len(res.Catalog), len(res.Files))

	ctrl, err := controller.New(r.cfg, res.Catalog, opts, r.bus, r.log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgChan := r.bus.Subscribe(ctx)

	if err := r.watcher.Start(ctx); err != nil {
		r.log.Warn().Err(err).Msg("Catalog hot reload disabled")
	}
	defer r.watcher.Close()

	sigChan := make(chan os.Signal, 1)

	r.signals(sigChan)
	defer signal.Stop(sigChan)

	filter := ctrl.Filter()
	r.formatter.RenderBanner(r.out, logs.Banner{
		Filter:   filter,
		Interval: ctrl.Interval(),
		Capacity: ctrl.Capacity(),
		Paused:   ctrl.IsPaused(),
		Catalog:  len(ctrl.Catalog()),
	})

	for _, rec := range ctrl.Visible() {
		if err := r.formatter.Write(r.out, rec); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	if err := ctrl.Start(ctx); err != nil {
		return err
	}
	defer ctrl.Stop()

	r.publishPhase(bus.PhaseRunning)
	defer r.publishPhase(bus.PhaseStopping)

	return r.loop(ctx, ctrl, msgChan, sigChan)
}

// loop is the single owner of the controller
func (r *runner) loop(ctx context.Context, ctrl controller.Controller, msgChan <-chan bus.Message, sigChan <-chan os.Signal) error {
	for {
		select {
		case sig := <-sigChan:
			r.bus.Publish(bus.Message{
				Type:     bus.EventSignal,
				Data:     bus.Signal{Name: sig.String()},
				Critical: true,
			})
			r.log.Info().Msgf("Received signal %s, stopping stream...", sig)

			return nil
		case <-ctx.Done():
			r.log.Info().Msg("Context cancelled, stopping stream...")
			return nil
		case now := <-ctrl.Ticks():
			rec, ok := ctrl.Tick(now)
			if !ok || !ctrl.Filter().Matches(rec) {
				continue
			}

			if err := r.formatter.Write(r.out, rec); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
		case msg, ok := <-msgChan:
			if !ok {
				msgChan = nil
				continue
			}

			r.handleMessage(ctrl, msg)
		}
	}
}

// handleMessage applies bus events that concern the running stream
func (r *runner) handleMessage(ctrl controller.Controller, msg bus.Message) {
	switch msg.Type {
	case bus.EventCatalogReloaded:
		if data, ok := msg.Data.(bus.CatalogReloaded); ok {
			if err := ctrl.ApplyCatalog(data.Catalog); err == nil {
				r.log.Info().Msgf("Catalog reloaded from %v", data.Files)
			}
		}
	case bus.EventCatalogFailed:
		if data, ok := msg.Data.(bus.CatalogFailed); ok {
			r.log.Warn().Err(data.Error).Msgf("Catalog reload failed for %v", data.Files)
		}
	}
}

func (r *runner) publishPhase(phase bus.Phase) {
	r.bus.Publish(bus.Message{
		Type:     bus.EventPhaseChanged,
		Data:     bus.PhaseChanged{Phase: phase},
		Critical: true,
	})
}
