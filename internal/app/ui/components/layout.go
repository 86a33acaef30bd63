package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PanelOptions describes the content of the bordered main panel
type PanelOptions struct {
	Title   string
	Badge   string
	Status  string
	Content string
	Stats   string
	Version string
	Help    string
	Tip     string
	Height  int
	Width   int
}

// RenderPanel renders a rounded panel with the title in the top border, stats and version in the bottom border, and a status, help and tip line underneath
func RenderPanel(opts PanelOptions) string {
	width := max(opts.Width, MinPanelWidth)
	height := max(opts.Height, MinPanelHeight)

	border := func(s string) string { return BorderStyle.Render(s) }
	innerWidth := width - 2

	right := opts.Badge
	if opts.Status != "" {
		if right != "" {
			right += " "
		}

		right += opts.Status
	}

	lines := []string{BuildTopBorder(border, opts.Title, right, width)}
	lines = AppendContentLines(lines, splitAndPadContent(opts.Content, height-2), innerWidth, border)
	lines = append(lines, BuildBottomBorder(border, opts.Stats, opts.Version, width))

	if opts.Help != "" {
		lines = append(lines, " "+opts.Help)
	}

	if opts.Tip != "" {
		lines = append(lines, " "+opts.Tip)
	}

	return strings.Join(lines, "\n")
}

// BuildTopBorder renders ╭─ title ─────── right ─╮ at the given width
func BuildTopBorder(border func(string) string, title, right string, width int) string {
	left := BorderTopLeft + BorderHorizontal
	if title != "" {
		left += " " + TitleStyle.Render(title) + " "
	}

	tail := BorderHorizontal + BorderTopRight
	if right != "" {
		tail = " " + right + " " + tail
	}

	fill := width - lipgloss.Width(left) - lipgloss.Width(tail)
	if fill < 1 {
		fill = 1
	}

	return border(BorderTopLeft+BorderHorizontal) + strings.TrimPrefix(left, BorderTopLeft+BorderHorizontal) +
		border(strings.Repeat(BorderHorizontal, fill)) + renderTail(border, tail, BorderTopRight)
}

// BuildBottomBorder renders ╰─ info ─────── version ─╯ at the given width
func BuildBottomBorder(border func(string) string, info, version string, width int) string {
	left := BorderBottomLeft + BorderHorizontal
	if info != "" {
		left += " " + info + " "
	}

	tail := BorderHorizontal + BorderBottomRight
	if version != "" {
		tail = " " + version + " " + tail
	}

	fill := width - lipgloss.Width(left) - lipgloss.Width(tail)
	if fill < 1 {
		fill = 1
	}

	return border(BorderBottomLeft+BorderHorizontal) + strings.TrimPrefix(left, BorderBottomLeft+BorderHorizontal) +
		border(strings.Repeat(BorderHorizontal, fill)) + renderTail(border, tail, BorderBottomRight)
}

// renderTail styles only the border glyphs at the end of a border line
func renderTail(border func(string) string, tail, corner string) string {
	suffix := BorderHorizontal + corner
	text := strings.TrimSuffix(tail, suffix)

	return text + border(suffix)
}

// AppendContentLines wraps each content line in vertical borders padded to innerWidth
func AppendContentLines(lines, content []string, innerWidth int, border func(string) string) []string {
	for _, line := range content {
		line = " " + line

		if lipgloss.Width(line) > innerWidth {
			line = truncate(line, innerWidth)
		}

		lines = append(lines, border(BorderVertical)+PadRight(line, innerWidth)+border(BorderVertical))
	}

	return lines
}

// splitAndPadContent splits content into exactly height lines
func splitAndPadContent(content string, height int) []string {
	if height <= 0 {
		return []string{}
	}

	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	for len(lines) < height {
		lines = append(lines, "")
	}

	return lines
}

// PadRight pads s with spaces to the given display width
func PadRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}

	return s + strings.Repeat(" ", gap)
}

// TruncateAndPad fits s into exactly width cells
func TruncateAndPad(s string, width int) string {
	if width <= 1 && lipgloss.Width(s) > width {
		return "…"
	}

	return PadRight(truncate(s, width), width)
}

// truncate shortens s to maxWidth cells, keeping ANSI sequences intact
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	return ansi.Truncate(s, maxWidth, "…")
}
