package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// usageLine renders a command and its description aligned in two columns
func usageLine(style lipgloss.Style, command, description string) string {
	return bodyMedium.Render("  " + style.Width(36).Render(command) + description)
}

// renderHelp renders the help screen
func renderHelp() string {
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		usageLine(commandName, "opsdash [stream]", "Stream simulated logs in the dashboard"),
		usageLine(commandName, "opsdash catalog", "Print the loaded message templates"),
		usageLine(commandName, "opsdash init [--force] [--dry-run]", "Generate opsdash.yaml"),
		usageLine(commandName, "opsdash version", "Show version"),
		usageLine(commandName, "opsdash help", "Show help"),
	)

	flags := lipgloss.JoinVertical(
		lipgloss.Left,
		usageLine(commandName, "--no-ui", "Stream to stdout without the TUI"),
		usageLine(commandName, "-L, --level <ALL|INFO|WARN|ERROR>", "Initial level filter"),
		usageLine(commandName, "-q, --query <text>", "Initial text filter"),
		usageLine(commandName, "--paused", "Start with the stream paused"),
	)

	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		usageLine(exampleCode, "opsdash", "Open the dashboard"),
		usageLine(exampleCode, "opsdash -L error", "Only show errors"),
		usageLine(exampleCode, "opsdash --no-ui -q timeout", "Print matching records to stdout"),
		usageLine(exampleCode, "opsdash init --dry-run", "Preview the starter config"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		usage,
		sectionHeader.Render("Flags:"),
		flags,
		sectionHeader.Render("Examples:"),
		examples,
	) + "\n"
}
