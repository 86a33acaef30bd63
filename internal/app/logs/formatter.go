package logs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"opsdash/internal/app/stream"
	"opsdash/internal/app/ui/components"
	"opsdash/internal/config"
	"opsdash/internal/config/logger"
)

const (
	minBannerWidth     = 40
	defaultBannerWidth = 80
)

// Formatter renders stream records for the headless mode
type Formatter struct {
	format       string
	width        func() int
	messageStyle lipgloss.Style
}

// Banner summarizes the stream settings printed before the first record
type Banner struct {
	Filter   stream.FilterState
	Interval time.Duration
	Capacity int
	Paused   bool
	Catalog  int
}

// jsonRecord is the wire shape of a record in JSON mode
type jsonRecord struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// NewFormatter creates a formatter using the configured logging format
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		format:       cfg.Logging.Format,
		width:        terminalWidth,
		messageStyle: lipgloss.NewStyle(),
	}
}

// IsJSON reports whether records are written as JSON lines
func (f *Formatter) IsJSON() bool {
	return f.format == logger.JSONFormat
}

// Format renders a record as a single line terminated by a newline
func (f *Formatter) Format(rec stream.Record) string {
	if f.IsJSON() {
		return f.formatJSON(rec)
	}

	return components.TimestampStyle.Render(rec.Timestamp.Format(components.TimestampLayout)) + " " +
		components.RenderLevel(rec.Level) + " " +
		f.messageStyle.Render(rec.Message) + "\n"
}

// Write formats a record into w
func (f *Formatter) Write(w io.Writer, rec stream.Record) error {
	_, err := io.WriteString(w, f.Format(rec))

	return err
}

// formatJSON renders a record as one JSON object
func (f *Formatter) formatJSON(rec stream.Record) string {
	data, err := json.Marshal(jsonRecord{
		Timestamp: rec.Timestamp.Format(time.RFC3339Nano),
		Level:     rec.Level.String(),
		Message:   rec.Message,
	})
	if err != nil {
		return fmt.Sprintf(`{"level":%q,"message":%q}`+"\n", rec.Level, rec.Message)
	}

	return string(data) + "\n"
}

// RenderBanner writes a bordered summary of the stream settings, skipped in JSON mode
func (f *Formatter) RenderBanner(w io.Writer, b Banner) {
	if f.IsJSON() {
		return
	}

	width := f.width()
	if width < minBannerWidth {
		width = defaultBannerWidth
	}

	innerWidth := width - components.PanelInnerPadding
	border := func(s string) string { return components.BorderStyle.Render(s) }

	muted := components.TimestampStyle.Render
	bold := lipgloss.NewStyle().Bold(true).Render

	field := func(label, value string) string {
		return " " + muted(label) + " " + bold(value)
	}

	state := "live"
	if b.Paused {
		state = "paused"
	}

	query := strings.TrimSpace(b.Filter.Query)
	if query == "" {
		query = "-"
	}

	contentLines := []string{
		field("level:", b.Filter.Level.String()),
		field("query:", query),
		field("interval:", b.Interval.String()),
		field("capacity:", fmt.Sprintf("%d lines", b.Capacity)),
		field("templates:", fmt.Sprintf("%d", b.Catalog)),
		field("state:", state),
	}

	lines := []string{components.BuildTopBorder(border, "logs", "", innerWidth)}
	lines = components.AppendContentLines(lines, contentLines, innerWidth-2, border)
	lines = append(lines, components.BuildBottomBorder(border, "", "v"+config.Version, innerWidth))
	lines = append(lines, " "+components.HelpStyle.Render("ctrl+c exit"), "")

	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// terminalWidth returns the stdout width, zero when stdout is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return 0
	}

	return width
}
