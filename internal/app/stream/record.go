package stream

import "time"

// Record is a single simulated log entry
type Record struct {
	Timestamp time.Time
	Level     Level
	Message   string
}
