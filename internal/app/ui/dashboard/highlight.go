package dashboard

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"opsdash/internal/app/ui/components"
)

type span int

const (
	spanPlain span = iota
	spanTrace
	spanMatch
)

var uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

var matchStyle = lipgloss.NewStyle().Reverse(true)

// highlightMessage styles trace identifiers and the occurrences of query in message
func highlightMessage(message, query string) string {
	if message == "" {
		return message
	}

	marks := make([]span, len(message))

	for _, loc := range uuidPattern.FindAllStringIndex(message, -1) {
		mark(marks, loc, spanTrace)
	}

	if term := strings.TrimSpace(query); term != "" {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
		for _, loc := range pattern.FindAllStringIndex(message, -1) {
			mark(marks, loc, spanMatch)
		}
	}

	var b strings.Builder

	start := 0
	for i := 1; i <= len(message); i++ {
		if i < len(message) && marks[i] == marks[start] {
			continue
		}

		b.WriteString(renderSpan(message[start:i], marks[start]))
		start = i
	}

	return b.String()
}

func mark(marks []span, loc []int, kind span) {
	for i := loc[0]; i < loc[1]; i++ {
		marks[i] = kind
	}
}

func renderSpan(text string, kind span) string {
	switch kind {
	case spanTrace:
		return components.HighlightStyle.Render(text)
	case spanMatch:
		return matchStyle.Render(text)
	default:
		return text
	}
}
