package stream

import (
	"fmt"
	"strings"

	"opsdash/internal/app/errors"
)

// Level is the severity of a log record
type Level string

// Log levels produced by the simulator
const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Levels lists every level in ascending severity
var Levels = []Level{LevelInfo, LevelWarn, LevelError}

// ParseLevel converts a case-insensitive level name into a Level
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelInfo:
		return LevelInfo, nil
	case LevelWarn:
		return LevelWarn, nil
	case LevelError:
		return LevelError, nil
	default:
		return "", fmt.Errorf("%w: '%s' (must be 'INFO', 'WARN' or 'ERROR')", errors.ErrInvalidLevel, s)
	}
}

// String returns the level name
func (l Level) String() string {
	return string(l)
}

// LevelFilter selects which levels are visible
type LevelFilter string

// Level filter values
const (
	FilterAll   LevelFilter = "ALL"
	FilterInfo  LevelFilter = LevelFilter(LevelInfo)
	FilterWarn  LevelFilter = LevelFilter(LevelWarn)
	FilterError LevelFilter = LevelFilter(LevelError)
)

// LevelFilters lists the filters in cycling order
var LevelFilters = []LevelFilter{FilterAll, FilterInfo, FilterWarn, FilterError}

// ParseLevelFilter converts a case-insensitive filter name, empty meaning ALL
func ParseLevelFilter(s string) (LevelFilter, error) {
	normalized := LevelFilter(strings.ToUpper(strings.TrimSpace(s)))
	if normalized == "" {
		return FilterAll, nil
	}

	for _, f := range LevelFilters {
		if f == normalized {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: '%s' (must be 'ALL', 'INFO', 'WARN' or 'ERROR')", errors.ErrInvalidLevelFilter, s)
}

// Accepts reports whether a record of the given level passes the filter
func (f LevelFilter) Accepts(level Level) bool {
	if f == FilterAll || f == "" {
		return true
	}

	return Level(f) == level
}

// Next returns the following filter in cycling order
func (f LevelFilter) Next() LevelFilter {
	for i, candidate := range LevelFilters {
		if candidate == f {
			return LevelFilters[(i+1)%len(LevelFilters)]
		}
	}

	return FilterAll
}

// String returns the filter name
func (f LevelFilter) String() string {
	if f == "" {
		return string(FilterAll)
	}

	return string(f)
}

// valid reports whether the filter is one of the known values (empty counts as ALL)
func (f LevelFilter) valid() bool {
	if f == "" {
		return true
	}

	for _, candidate := range LevelFilters {
		if candidate == f {
			return true
		}
	}

	return false
}
