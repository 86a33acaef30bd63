package cli

import (
	"github.com/charmbracelet/lipgloss"

	"opsdash/internal/app/stream"
	"opsdash/internal/app/ui/components"
	"opsdash/internal/config"
)

// Material Design 3 typography scale, reduced to what the CLI prints
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	titleMedium   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	bodyLarge     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	bodyMedium    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	labelLarge    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")).Italic(true)
)

// Semantic styles
var (
	sectionHeader = headlineLarge.MarginBottom(1)
	helpText      = labelLarge
	errorText     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF5350"))

	commandName = titleMedium
	exampleCode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderError renders a failure line
func RenderError(err error) string {
	return errorText.Render("Error:") + " " + err.Error()
}

// RenderTemplate renders one catalog template the way the stream shows its level
func RenderTemplate(t stream.Template) string {
	return components.RenderLevel(t.Level) + " " + bodyMedium.Render(t.Message)
}

// RenderHint renders a muted trailing hint
func RenderHint(text string) string {
	return helpText.Render(text)
}
