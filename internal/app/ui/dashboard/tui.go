package dashboard

//go:generate mockgen -source=tui.go -destination=tui_mock.go -package=dashboard

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"opsdash/internal/app/bus"
	"opsdash/internal/app/catalog"
	"opsdash/internal/app/controller"
	"opsdash/internal/app/errors"
	"opsdash/internal/app/monitor"
	"opsdash/internal/config"
	"opsdash/internal/config/logger"
)

// UI runs the interactive log stream dashboard
type UI interface {
	Run(ctx context.Context, opts controller.Options) error
}

type ui struct {
	cfg     *config.Config
	loader  catalog.Loader
	watcher catalog.Watcher
	bus     bus.Bus
	monitor monitor.Monitor
	log     logger.Logger
	signals func(chan<- os.Signal)
	options []tea.ProgramOption
}

// NewUI creates the dashboard
func NewUI(
	cfg *config.Config,
	loader catalog.Loader,
	watcher catalog.Watcher,
	b bus.Bus,
	mon monitor.Monitor,
	log logger.Logger,
) UI {
	return &ui{
		cfg:     cfg,
		loader:  loader,
		watcher: watcher,
		bus:     b,
		monitor: mon,
		log:     log,
		signals: func(ch chan<- os.Signal) {
			signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		},
		options: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run owns the stream inside a Bubble Tea program until the user quits or ctx is cancelled
func (u *ui) Run(ctx context.Context, opts controller.Options) error {
	u.publishPhase(bus.PhaseStartup)
	defer u.publishPhase(bus.PhaseStopped)

	res, err := u.loader.Load(u.cfg.Catalog.Paths)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ctrl, err := controller.New(u.cfg, res.Catalog, opts, u.bus, u.log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, ctrl, u.bus, u.monitor, u.log)

	if err := u.watcher.Start(ctx); err != nil {
		u.log.Warn().Err(err).Msg("Catalog hot reload disabled")
	}
	defer u.watcher.Close()

	sigChan := make(chan os.Signal, 1)

	u.signals(sigChan)
	defer signal.Stop(sigChan)

	go u.forwardSignals(ctx, sigChan)

	if err := ctrl.Start(ctx); err != nil {
		return err
	}
	defer ctrl.Stop()

	options := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithoutSignalHandler()}, u.options...)
	p := tea.NewProgram(model, options...)

	u.log.Debug().Msg("TUI: Program created, starting event loop")

	u.publishPhase(bus.PhaseRunning)
	defer u.publishPhase(bus.PhaseStopping)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	return nil
}

// forwardSignals turns termination signals into a critical bus event the model quits on
func (u *ui) forwardSignals(ctx context.Context, sigChan <-chan os.Signal) {
	select {
	case <-ctx.Done():
	case sig := <-sigChan:
		u.log.Info().Msgf("Received signal %s, closing dashboard...", sig)
		u.bus.Publish(bus.Message{
			Type:     bus.EventSignal,
			Data:     bus.Signal{Name: sig.String()},
			Critical: true,
		})
	}
}

func (u *ui) publishPhase(phase bus.Phase) {
	u.bus.Publish(bus.Message{
		Type:     bus.EventPhaseChanged,
		Data:     bus.PhaseChanged{Phase: phase},
		Critical: true,
	})
}
