package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdash/internal/app/stream"
	"opsdash/internal/config"
)

func Test_View_NotReady(t *testing.T) {
	m := Model{}
	m.ui.ready = false

	assert.Equal(t, "Initializing…", m.View())
}

func Test_View(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(cfg *config.Config)
		contains []string
		excludes []string
	}{
		{
			name:     "live stream",
			contains: []string{"logs", "6 lines", "ALL", "live", "v" + config.Version, "payments gateway timeout after 3000ms", "GET /healthz 200 in 3ms"},
			excludes: []string{"paused"},
		},
		{
			name:     "paused stream",
			mutate:   func(cfg *config.Config) { cfg.Stream.Paused = true },
			contains: []string{"6 lines", "paused"},
		},
		{
			name:     "active query and level",
			mutate:   func(cfg *config.Config) { cfg.Stream.Query = "timeout"; cfg.Stream.Level = "error" },
			contains: []string{"6 lines", "ERROR", "/ timeout", "payments gateway timeout after 3000ms"},
			excludes: []string{"GET /healthz"},
		},
		{
			name:     "nothing matches",
			mutate:   func(cfg *config.Config) { cfg.Stream.Query = "no such message" },
			contains: []string{"No records match the current filter."},
		},
		{
			name:     "empty paused buffer",
			mutate:   func(cfg *config.Config) { cfg.Stream.Seed = false; cfg.Stream.Paused = true },
			contains: []string{"0 lines", "Buffer is empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, tt.mutate)

			view := ansi.Strip(m.View())

			for _, want := range tt.contains {
				assert.Contains(t, view, want)
			}

			for _, unwanted := range tt.excludes {
				assert.NotContains(t, view, unwanted)
			}
		})
	}
}

func Test_View_Notice(t *testing.T) {
	m := newTestModel(t, nil)
	m.showNotice("logs cleared")

	assert.Contains(t, ansi.Strip(m.View()), "logs cleared")
}

func Test_View_ScrollLocked(t *testing.T) {
	m := newTestModel(t, nil)

	assert.NotContains(t, ansi.Strip(m.renderStatus()), "scroll locked")

	m.state.autoscroll = false

	assert.Contains(t, ansi.Strip(m.renderStatus()), "scroll locked")
}

func Test_View_FitsTerminal(t *testing.T) {
	m := newTestModel(t, nil)

	lines := strings.Split(m.View(), "\n")

	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 100)
	}
}

func Test_RenderAppStats(t *testing.T) {
	m := Model{}
	assert.Empty(t, m.renderAppStats())

	m.state.appCPU = 1.5
	m.state.appMEM = 42

	assert.Equal(t, "cpu 1.5% • mem 42MB", m.renderAppStats())
}

func Test_RenderRecord(t *testing.T) {
	ts := time.Date(2026, 1, 2, 12, 0, 5, 0, time.UTC)

	t.Run("short message stays on one line", func(t *testing.T) {
		rec := stream.Record{Timestamp: ts, Level: stream.LevelWarn, Message: "disk 91% full"}

		result := ansi.Strip(renderRecord(rec, "", 80))

		assert.Equal(t, "12:00:05 WARN  disk 91% full", result)
	})

	t.Run("long message wraps under the message column", func(t *testing.T) {
		rec := stream.Record{
			Timestamp: ts,
			Level:     stream.LevelError,
			Message:   "payments gateway timeout after 3000ms while settling batch 42 for merchant acme",
		}

		lines := strings.Split(ansi.Strip(renderRecord(rec, "", 40)), "\n")
		require.Greater(t, len(lines), 1)

		assert.True(t, strings.HasPrefix(lines[0], "12:00:05 ERROR payments"))

		for _, line := range lines[1:] {
			assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", 13)+"│ "), line)
			assert.LessOrEqual(t, ansi.StringWidth(line), 40)
		}
	})

	t.Run("highlighting keeps the text", func(t *testing.T) {
		rec := stream.Record{Timestamp: ts, Level: stream.LevelInfo, Message: "GET /healthz 200 in 3ms"}

		result := renderRecord(rec, "healthz", 80)

		assert.Equal(t, "12:00:05 INFO  GET /healthz 200 in 3ms", ansi.Strip(result))
	})
}
