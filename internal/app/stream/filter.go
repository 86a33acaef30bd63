package stream

import (
	"fmt"
	"strings"

	"opsdash/internal/app/errors"
)

// FilterState holds the user-selected level and text query
type FilterState struct {
	Level LevelFilter
	Query string
}

// DefaultFilterState returns a filter that shows everything
func DefaultFilterState() FilterState {
	return FilterState{Level: FilterAll}
}

// NewFilterState validates the level filter and builds a FilterState
func NewFilterState(level, query string) (FilterState, error) {
	lf, err := ParseLevelFilter(level)
	if err != nil {
		return FilterState{}, err
	}

	return FilterState{Level: lf, Query: query}, nil
}

// Validate rejects unknown level filters
func (f FilterState) Validate() error {
	if !f.Level.valid() {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidLevelFilter, f.Level)
	}

	return nil
}

// IsDefault reports whether the filter lets every record through
func (f FilterState) IsDefault() bool {
	return f.Level.String() == string(FilterAll) && normalizeQuery(f.Query) == ""
}

// Matches reports whether a record passes the level and query filter
func (f FilterState) Matches(rec Record) bool {
	return matches(rec, f.Level, normalizeQuery(f.Query))
}

// Filter returns the records of buf that pass state, preserving insertion order
func Filter(buf Buffer, state FilterState) []Record {
	term := normalizeQuery(state.Query)
	visible := make([]Record, 0, len(buf.records))

	for _, rec := range buf.records {
		if matches(rec, state.Level, term) {
			visible = append(visible, rec)
		}
	}

	return visible
}

func matches(rec Record, level LevelFilter, term string) bool {
	if !level.Accepts(rec.Level) {
		return false
	}

	return term == "" || strings.Contains(strings.ToLower(rec.Message), term)
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
