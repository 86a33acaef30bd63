package dashboard

import (
	"context"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"opsdash/internal/app/bus"
	"opsdash/internal/app/controller"
	"opsdash/internal/app/monitor"
	"opsdash/internal/app/ui/components"
	"opsdash/internal/config/logger"
)

// Model is the Bubble Tea model of the log stream dashboard.
// Update is the only place the controller is mutated.
type Model struct {
	ctx     context.Context
	ctrl    controller.Controller
	monitor monitor.Monitor
	msgChan <-chan bus.Message

	state struct {
		autoscroll  bool
		quitting    bool
		appCPU      float64
		appMEM      float64
		notice      string
		noticeTicks int
	}

	ui struct {
		ready       bool
		width       int
		height      int
		keys        KeyMap
		searchKeys  searchKeyMap
		tickCounter int
		showTips    bool
		tipOffset   int
		help        help.Model
		viewport    viewport.Model
		search      textinput.Model
		searching   bool
		pulse       *components.Pulse
	}

	log logger.Logger
}

// NewModel creates the dashboard model and subscribes it to the bus
func NewModel(
	ctx context.Context,
	ctrl controller.Controller,
	b bus.Bus,
	mon monitor.Monitor,
	log logger.Logger,
) Model {
	log = log.WithComponent("UI")

	m := Model{
		ctx:     ctx,
		ctrl:    ctrl,
		monitor: mon,
		msgChan: b.Subscribe(ctx),
		log:     log,
	}

	m.state.autoscroll = true

	m.ui.keys = DefaultKeyMap()
	m.ui.searchKeys = searchKeyMap{apply: m.ui.keys.Apply, cancel: m.ui.keys.Cancel}
	m.ui.showTips = true
	m.ui.tipOffset = rand.IntN(len(components.Tips)) //nolint:gosec // not security-critical
	m.ui.help = help.New()
	m.ui.viewport = viewport.New(0, 0)
	m.ui.search = newSearchInput(ctrl.Filter().Query)
	m.ui.pulse = components.NewPulse()

	if !ctrl.IsPaused() {
		m.ui.pulse.Start()
	}

	log.Debug().Msg("Created model and subscribed to events")

	return m
}

// newSearchInput creates the search box prefilled with the active query
func newSearchInput(query string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "trace id, route, message…"
	ti.CharLimit = components.SearchCharLimit
	ti.Width = components.SearchInputWidth
	ti.SetValue(query)

	return ti
}

// Init starts the stream, bus, animation and stats loops
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForTickCmd(m.ctx, m.ctrl.Ticks()),
		waitForMsgCmd(m.msgChan),
		tickCmd(),
		statsWorkerCmd(m.ctx, &m),
	)
}

// helpKeys returns the bindings shown in the help line
func (m Model) helpKeys() help.KeyMap {
	if m.ui.searching {
		return m.ui.searchKeys
	}

	return m.ui.keys
}
