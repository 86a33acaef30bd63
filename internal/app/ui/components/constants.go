package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate for animations, notices and tips
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond drives the pulse spring
	UITicksPerSecond = int(time.Second / UITickInterval)

	// StatsPollingInterval is how often self CPU and memory are sampled
	StatsPollingInterval = 2 * time.Second

	// StatsBatchTimeout bounds a single sample
	StatsBatchTimeout = 1 * time.Second

	// NoticeTicks is how long a transient notice stays in the status line
	NoticeTicks = 30

	// TipRotationTicks is how long each tip is shown
	TipRotationTicks = 80
)

// Conversion constants
const (
	MBToGB = 1024
)

// Panel layout constants
const (
	PanelHeightPadding = 2
	PanelWidthPadding  = 2
	PanelInnerPadding  = 4
	MinPanelHeight     = 8
	MinPanelWidth      = 20
	BorderEdgeWidth    = 3
)

// Log view constants
const (
	LevelLabelWidth      = 5
	TimestampLayout      = "15:04:05"
	LogPrefixSpacing     = 2
	LogMessageMinWidth   = 20
	DefaultViewportWidth = 80
	SearchInputWidth     = 32
	SearchCharLimit      = 128
)

// Border characters
const (
	BorderTopLeft     = "╭"
	BorderTopRight    = "╮"
	BorderBottomLeft  = "╰"
	BorderBottomRight = "╯"
	BorderHorizontal  = "─"
	BorderVertical    = "│"
)
