package components

import (
	"github.com/charmbracelet/lipgloss"

	"opsdash/internal/app/stream"
)

// Common styles shared across views
var (
	AppContainerStyle = lipgloss.NewStyle().Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().Foreground(FgPrimary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	BadgeStyle = lipgloss.NewStyle().
			Background(BadgeColor).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	NoticeStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(FgMuted)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	LiveStyle   = lipgloss.NewStyle().Foreground(FgLive)
	PausedStyle = lipgloss.NewStyle().Foreground(FgPaused).Bold(true)

	HighlightStyle = lipgloss.NewStyle().Foreground(HighlightColor).Bold(true)
)

// Level styles
var (
	LevelInfoStyle  = lipgloss.NewStyle().Foreground(FgLevelInfo).Bold(true)
	LevelWarnStyle  = lipgloss.NewStyle().Foreground(FgLevelWarn).Bold(true)
	LevelErrorStyle = lipgloss.NewStyle().Foreground(FgLevelError).Bold(true)
)

// LevelStyle returns the style used to render the given level
func LevelStyle(level stream.Level) lipgloss.Style {
	switch level {
	case stream.LevelWarn:
		return LevelWarnStyle
	case stream.LevelError:
		return LevelErrorStyle
	default:
		return LevelInfoStyle
	}
}

// RenderLevel renders a level label padded to a fixed width
func RenderLevel(level stream.Level) string {
	return LevelStyle(level).Render(PadRight(level.String(), LevelLabelWidth))
}
