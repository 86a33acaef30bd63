package components

import "github.com/charmbracelet/lipgloss"

var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains hints rotated in the footer
var Tips = []string{
	tipDesc("Press ") + tipKey("space") + tipDesc(" to pause or resume the stream"),
	tipDesc("Press ") + tipKey("/") + tipDesc(" to search messages, ") + tipKey("esc") + tipDesc(" to clear"),
	tipDesc("Press ") + tipKey("l") + tipDesc(" or ") + tipKey("1-4") + tipDesc(" to filter by level"),
	tipDesc("Press ") + tipKey("ctrl+r") + tipDesc(" to clear the buffer"),
	tipDesc("Stream to stdout with ") + tipKey("opsdash --no-ui"),
	tipDesc("Load your own templates with ") + tipKey("catalog.paths") + tipDesc(" in opsdash.yaml"),
	tipDesc("Create a starter config with ") + tipKey("opsdash init"),
	tipDesc("Press ") + tipKey("t") + tipDesc(" to hide these tips"),
}

// TipAt returns the tip shown after the given number of UI ticks
func TipAt(ticks int) string {
	if len(Tips) == 0 {
		return ""
	}

	if ticks < 0 {
		ticks = 0
	}

	return Tips[(ticks/TipRotationTicks)%len(Tips)]
}
