package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"opsdash/internal/app/stream"
	"opsdash/internal/app/ui/components"
	"opsdash/internal/config"
)

const panelTitle = "logs"

// View returns the rendered dashboard
func (m Model) View() string {
	if m.state.quitting {
		return ""
	}

	if !m.ui.ready {
		return "Initializing…"
	}

	panel := components.RenderPanel(components.PanelOptions{
		Title:   panelTitle,
		Badge:   m.renderBadge(),
		Status:  m.renderStatus(),
		Content: m.renderContent(),
		Stats:   m.renderAppStats(),
		Version: m.renderVersion(),
		Help:    m.renderHelp(),
		Tip:     m.renderTip(),
		Height:  m.panelHeight(),
		Width:   m.panelWidth(),
	})

	return components.AppContainerStyle.Render(panel)
}

// renderBadge renders the line count and the active level filter
func (m Model) renderBadge() string {
	stats := m.ctrl.Stats()
	level := m.ctrl.Filter().Level

	levelText := level.String()
	if level != stream.FilterAll {
		levelText = components.LevelStyle(stream.Level(level)).Render(levelText)
	}

	return components.BadgeStyle.Render(fmt.Sprintf("%d lines", stats.Total)) + " " + levelText
}

// renderStatus renders the transient notice and the live/paused indicator
func (m Model) renderStatus() string {
	var parts []string

	if m.state.notice != "" {
		parts = append(parts, components.NoticeStyle.Render(m.state.notice))
	}

	if m.ctrl.IsPaused() {
		parts = append(parts, m.ui.pulse.Render(components.PausedStyle)+" "+components.PausedStyle.Render("paused"))
	} else {
		parts = append(parts, m.ui.pulse.Render(components.LiveStyle)+" "+components.LiveStyle.Render("live"))
	}

	if !m.state.autoscroll {
		parts = append(parts, components.HelpStyle.Render("scroll locked"))
	}

	return strings.Join(parts, " ")
}

// renderContent renders the search box and the log viewport
func (m Model) renderContent() string {
	var lines []string

	if m.ui.searching {
		lines = append(lines, m.ui.search.View())
	} else if query := m.ctrl.Filter().Query; query != "" {
		lines = append(lines, components.HelpStyle.Render("/ "+query))
	}

	lines = append(lines, m.ui.viewport.View())

	return strings.Join(lines, "\n")
}

// renderVersion renders the version string
func (m Model) renderVersion() string {
	return fmt.Sprintf("v%s", config.Version)
}

// renderAppStats renders the dashboard's own CPU and memory usage
func (m Model) renderAppStats() string {
	if m.state.appCPU == 0 && m.state.appMEM == 0 {
		return ""
	}

	return fmt.Sprintf("cpu %s • mem %s", formatCPU(m.state.appCPU), formatMEM(m.state.appMEM))
}

// renderHelp renders the help text with keybindings
func (m Model) renderHelp() string {
	return components.HelpStyle.Render(m.ui.help.View(m.helpKeys()))
}

// renderTip returns the current rotating tip or empty string if tips are disabled
func (m Model) renderTip() string {
	if !m.ui.showTips {
		return ""
	}

	return components.TipAt(m.ui.tickCounter + m.ui.tipOffset*components.TipRotationTicks)
}

// updateContent re-renders the visible records into the viewport
func (m *Model) updateContent() {
	width := m.ui.viewport.Width
	if width <= 0 {
		width = components.DefaultViewportWidth
	}

	oldYOffset := m.ui.viewport.YOffset

	records := m.ctrl.Visible()
	query := m.ctrl.Filter().Query

	var b strings.Builder

	if len(records) == 0 {
		b.WriteString(m.emptyState())
	}

	for i, rec := range records {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(renderRecord(rec, query, width))
	}

	m.ui.viewport.SetContent(b.String())

	if m.state.autoscroll {
		m.ui.viewport.GotoBottom()
		return
	}

	maxYOffset := max(m.ui.viewport.TotalLineCount()-m.ui.viewport.Height, 0)
	m.ui.viewport.SetYOffset(min(oldYOffset, maxYOffset))
}

// emptyState explains why nothing is shown
func (m Model) emptyState() string {
	if m.ctrl.Stats().Total == 0 {
		if m.ctrl.IsPaused() {
			return components.EmptyStateStyle.Render("Buffer is empty. Press space to resume the stream.")
		}

		return components.EmptyStateStyle.Render("Waiting for records…")
	}

	return components.EmptyStateStyle.Render("No records match the current filter.")
}

// renderRecord renders one record, wrapping long messages under the message column
func renderRecord(rec stream.Record, query string, width int) string {
	prefix := components.TimestampStyle.Render(rec.Timestamp.Format(components.TimestampLayout)) + " " +
		components.RenderLevel(rec.Level) + " "
	prefixWidth := lipgloss.Width(prefix)

	messageWidth := max(width-prefixWidth, components.LogMessageMinWidth)
	message := highlightMessage(rec.Message, query)

	lines := strings.Split(ansi.Wrap(message, messageWidth, ""), "\n")
	indent := strings.Repeat(" ", prefixWidth-components.LogPrefixSpacing) + components.TimestampStyle.Render("│") + " "

	var b strings.Builder

	b.WriteString(prefix)
	b.WriteString(lines[0])

	for _, line := range lines[1:] {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(line)
	}

	return b.String()
}
