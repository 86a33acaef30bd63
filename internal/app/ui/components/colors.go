package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the dashboard
const (
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - panel border and focus
	FgMuted   = lipgloss.Color("7")       // Light gray - timestamps and secondary text
	FgBorder  = lipgloss.Color("8")       // Gray - separators and help text

	FgLive   = lipgloss.Color("10") // Green - stream running
	FgPaused = lipgloss.Color("11") // Yellow - stream paused

	FgLevelInfo  = lipgloss.Color("12") // Blue
	FgLevelWarn  = lipgloss.Color("11") // Yellow
	FgLevelError = lipgloss.Color("9")  // Red
)

// HighlightColor marks trace identifiers and search matches inside messages
var HighlightColor = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}

// BadgeColor is the background of the header badges
var BadgeColor = lipgloss.AdaptiveColor{Light: "#e5e5e5", Dark: "#303030"}
