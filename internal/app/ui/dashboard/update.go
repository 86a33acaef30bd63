package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"opsdash/internal/app/bus"
	"opsdash/internal/app/stream"
	"opsdash/internal/app/ui/components"
)

// Tick timing constants
const (
	tickInterval       = components.UITickInterval
	tickCounterMaximum = 1000000
)

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// tickMsg signals a UI tick for animations, notices and tips
type tickMsg time.Time

// streamTickMsg carries a scheduler tick to the session owner
type streamTickMsg time.Time

// channelClosedMsg signals the event channel has closed
type channelClosedMsg struct{}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.ready = true
		m.resize(msg.Width, msg.Height)
		m.updateContent()

		return m, nil

	case streamTickMsg:
		if _, ok := m.ctrl.Tick(time.Time(msg)); ok {
			m.updateContent()
		}

		return m, waitForTickCmd(m.ctx, m.ctrl.Ticks())

	case tickMsg:
		m.ui.tickCounter++

		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		m.ui.pulse.Update()

		if m.state.noticeTicks > 0 {
			m.state.noticeTicks--
			if m.state.noticeTicks == 0 {
				m.state.notice = ""
			}
		}

		return m, tickCmd()

	case statsUpdateMsg:
		m.applyStatsUpdate(msg)

		return m, statsWorkerCmd(m.ctx, &m)

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		m.log.Warn().Msg("TUI: Event channel closed, quitting")

		return m.quit()
	}

	if m.ui.searching {
		var cmd tea.Cmd

		m.ui.search, cmd = m.ui.search.Update(msg)

		return m, cmd
	}

	return m, nil
}

// resize fits the panel and the viewport to the terminal
func (m *Model) resize(width, height int) {
	m.ui.width = width
	m.ui.height = height
	m.ui.help.Width = m.panelWidth() - 1

	m.ui.viewport.Width = max(m.panelWidth()-components.PanelInnerPadding, 1)
	m.ui.viewport.Height = max(m.panelHeight()-components.PanelHeightPadding-m.searchHeight(), 1)
}

// panelWidth is the outer width of the bordered panel
func (m Model) panelWidth() int {
	return max(m.ui.width-components.PanelWidthPadding, components.MinPanelWidth)
}

// panelHeight is the outer height of the bordered panel, excluding help and tip lines
func (m Model) panelHeight() int {
	return max(m.ui.height-components.PanelHeightPadding, components.MinPanelHeight)
}

// searchHeight is the number of panel lines taken by the search box
func (m Model) searchHeight() int {
	if m.ui.searching || m.ctrl.Filter().Query != "" {
		return 1
	}

	return 0
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		m.log.Warn().Msg("TUI: Force quit requested, exiting immediately")
		return m.quit()
	}

	if m.state.quitting {
		return m, nil
	}

	if m.ui.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.ui.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.ui.keys.Pause):
		if err := m.ctrl.Toggle(m.ctx); err != nil {
			m.log.Error().Err(err).Msg("Failed to toggle stream")
		}

		m.syncPulse()

		return m, nil

	case key.Matches(msg, m.ui.keys.Clear):
		m.ctrl.Clear()
		m.updateContent()

		return m, nil

	case key.Matches(msg, m.ui.keys.CycleLevel):
		if err := m.ctrl.CycleLevel(); err != nil {
			m.log.Error().Err(err).Msg("Failed to change level filter")
		}

		m.updateContent()

		return m, nil

	case key.Matches(msg, m.ui.keys.LevelAll):
		return m.setLevel(stream.FilterAll)

	case key.Matches(msg, m.ui.keys.LevelInfo):
		return m.setLevel(stream.FilterInfo)

	case key.Matches(msg, m.ui.keys.LevelWarn):
		return m.setLevel(stream.FilterWarn)

	case key.Matches(msg, m.ui.keys.LevelError):
		return m.setLevel(stream.FilterError)

	case key.Matches(msg, m.ui.keys.Search):
		m.ui.searching = true
		m.resize(m.ui.width, m.ui.height)

		return m, m.ui.search.Focus()

	case key.Matches(msg, m.ui.keys.Cancel):
		if m.ctrl.Filter().Query != "" {
			m.ui.search.SetValue("")
			m.applyQuery("")
		}

		return m, nil

	case key.Matches(msg, m.ui.keys.Autoscroll):
		m.state.autoscroll = !m.state.autoscroll
		if m.state.autoscroll {
			m.ui.viewport.GotoBottom()
		}

		return m, nil

	case key.Matches(msg, m.ui.keys.ToggleTips):
		m.ui.showTips = !m.ui.showTips
		return m, nil
	}

	return m.handleScrollKey(msg)
}

// handleSearchKey routes keys to the focused search box; typing filters live
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.Apply):
		m.ui.searching = false
		m.ui.search.Blur()
		m.applyQuery(m.ui.search.Value())

		return m, nil

	case key.Matches(msg, m.ui.keys.Cancel):
		m.ui.searching = false
		m.ui.search.Blur()
		m.ui.search.SetValue("")
		m.applyQuery("")

		return m, nil
	}

	var cmd tea.Cmd

	m.ui.search, cmd = m.ui.search.Update(msg)

	if m.ui.search.Value() != m.ctrl.Filter().Query {
		m.applyQuery(m.ui.search.Value())
	}

	return m, cmd
}

// handleScrollKey moves the viewport; scrolling up turns autoscroll off, reaching the bottom turns it back on
func (m Model) handleScrollKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.Up):
		m.ui.viewport.ScrollUp(1)
	case key.Matches(msg, m.ui.keys.PageUp):
		m.ui.viewport.PageUp()
	case key.Matches(msg, m.ui.keys.Top):
		m.ui.viewport.GotoTop()
	case key.Matches(msg, m.ui.keys.Down):
		m.ui.viewport.ScrollDown(1)
	case key.Matches(msg, m.ui.keys.PageDown):
		m.ui.viewport.PageDown()
	case key.Matches(msg, m.ui.keys.Bottom):
		m.ui.viewport.GotoBottom()
	default:
		return m, nil
	}

	m.state.autoscroll = m.ui.viewport.AtBottom()

	return m, nil
}

// setLevel applies a level filter and refreshes the view
func (m Model) setLevel(level stream.LevelFilter) (tea.Model, tea.Cmd) {
	if err := m.ctrl.SetLevelFilter(level); err != nil {
		m.log.Error().Err(err).Msg("Failed to change level filter")
	}

	m.updateContent()

	return m, nil
}

// applyQuery changes the text filter and refits the layout
func (m *Model) applyQuery(query string) {
	m.ctrl.SetQuery(query)
	m.resize(m.ui.width, m.ui.height)
	m.updateContent()
}

// syncPulse runs the live indicator only while streaming
func (m *Model) syncPulse() {
	if m.ctrl.IsPaused() {
		m.ui.pulse.Stop()
		return
	}

	m.ui.pulse.Start()
}

// quit releases the scheduler and exits the program
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.state.quitting = true
	m.ctrl.Stop()

	return m, tea.Quit
}

// handleMessage reacts to bus events
func (m Model) handleMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case bus.EventStreamPaused:
		m.showNotice("stream paused")
		m.syncPulse()
	case bus.EventStreamResumed:
		m.showNotice("stream resumed")
		m.syncPulse()
	case bus.EventBufferCleared:
		m.showNotice("logs cleared")
	case bus.EventCatalogReloaded:
		if data, ok := msg.Data.(bus.CatalogReloaded); ok {
			if err := m.ctrl.ApplyCatalog(data.Catalog); err != nil {
				m.showNotice("catalog rejected: " + err.Error())
			} else {
				m.showNotice(fmt.Sprintf("catalog reloaded (%d templates)", len(data.Catalog)))
			}
		}
	case bus.EventCatalogFailed:
		if data, ok := msg.Data.(bus.CatalogFailed); ok {
			m.showNotice("catalog reload failed: " + data.Error.Error())
		}
	case bus.EventSignal:
		return m.quit()
	}

	return m, waitForMsgCmd(m.msgChan)
}

// showNotice displays a transient message in the status line
func (m *Model) showNotice(text string) {
	m.state.notice = text
	m.state.noticeTicks = components.NoticeTicks
}

// waitForTickCmd waits for the next scheduler tick; only one is outstanding at a time
func waitForTickCmd(ctx context.Context, ticks <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticks:
			return streamTickMsg(now)
		}
	}
}

// waitForMsgCmd returns a command that waits for the next bus message
func waitForMsgCmd(msgChan <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgChan
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}

// tickCmd returns a command that sends a UI tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
