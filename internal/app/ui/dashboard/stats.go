package dashboard

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"opsdash/internal/app/ui/components"
)

// statsUpdateMsg carries the latest self CPU and memory sample
type statsUpdateMsg struct {
	CPU float64
	MEM float64
	Err error
}

// statsWorkerCmd schedules a single self-monitoring sample bounded by StatsBatchTimeout
func statsWorkerCmd(ctx context.Context, m *Model) tea.Cmd {
	return tea.Tick(components.StatsPollingInterval, func(t time.Time) tea.Msg {
		return m.collectAppStats(ctx)
	})
}

// collectAppStats samples the dashboard process
func (m *Model) collectAppStats(ctx context.Context) statsUpdateMsg {
	callCtx, cancel := context.WithTimeout(ctx, components.StatsBatchTimeout)
	defer cancel()

	stats, err := m.monitor.Self(callCtx)
	if err != nil {
		return statsUpdateMsg{Err: err}
	}

	return statsUpdateMsg{CPU: stats.CPU, MEM: stats.MEM}
}

// applyStatsUpdate keeps the previous sample when collection failed
func (m *Model) applyStatsUpdate(msg statsUpdateMsg) {
	if msg.Err != nil {
		m.log.Debug().Err(msg.Err).Msg("Failed to sample process stats")
		return
	}

	m.state.appCPU = msg.CPU
	m.state.appMEM = msg.MEM
}

// formatCPU formats a CPU percentage value
func formatCPU(cpu float64) string {
	return fmt.Sprintf("%.1f%%", cpu)
}

// formatMEM formats a memory value in MB or GB
func formatMEM(mem float64) string {
	if mem < components.MBToGB {
		return fmt.Sprintf("%.0fMB", mem)
	}

	return fmt.Sprintf("%.1fGB", mem/components.MBToGB)
}
