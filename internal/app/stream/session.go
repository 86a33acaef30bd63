package stream

import (
	"context"
	"time"

	"github.com/looplab/fsm"
)

// FSM states
const (
	Running = "running"
	Paused  = "paused"
)

// FSM events
const (
	Pause  = "pause"
	Resume = "resume"
)

// FSM callbacks
const (
	OnPaused  = "enter_paused"
	OnRunning = "enter_running"
)

// SessionOptions configures a new Session
type SessionOptions struct {
	Capacity      int
	Catalog       Catalog
	Random        Random
	Filter        FilterState
	Seed          []Record
	Paused        bool
	OnStateChange func(paused bool)
}

// Stats summarizes the buffer for status displays
type Stats struct {
	Total   int
	Visible int
	Info    int
	Warn    int
	Error   int
}

// Session owns the buffer, the filter and the running/paused state of one stream.
// It is not safe for concurrent use: a single loop must own it.
type Session struct {
	buffer        Buffer
	filter        FilterState
	source        *Source
	fsm           *fsm.FSM
	onStateChange func(paused bool)
}

// NewSession validates the options and creates a session
func NewSession(opts SessionOptions) (*Session, error) {
	if err := opts.Filter.Validate(); err != nil {
		return nil, err
	}

	buffer, err := NewBuffer(opts.Capacity, opts.Seed...)
	if err != nil {
		return nil, err
	}

	source, err := NewSource(opts.Catalog, opts.Random)
	if err != nil {
		return nil, err
	}

	s := &Session{
		buffer:        buffer,
		filter:        opts.Filter,
		source:        source,
		onStateChange: opts.OnStateChange,
	}

	initial := Running
	if opts.Paused {
		initial = Paused
	}

	s.fsm = newSessionFSM(initial, s)

	return s, nil
}

// newSessionFSM creates the two-state running/paused machine
func newSessionFSM(initial string, s *Session) *fsm.FSM {
	return fsm.NewFSM(
		initial,
		fsm.Events{
			{Name: Pause, Src: []string{Running}, Dst: Paused},
			{Name: Resume, Src: []string{Paused}, Dst: Running},
		},
		fsm.Callbacks{
			OnPaused: func(ctx context.Context, e *fsm.Event) {
				s.notify(true)
			},
			OnRunning: func(ctx context.Context, e *fsm.Event) {
				s.notify(false)
			},
		},
	)
}

// OnStateChange registers the callback invoked after every pause/resume transition
func (s *Session) OnStateChange(fn func(paused bool)) {
	s.onStateChange = fn
}

func (s *Session) notify(paused bool) {
	if s.onStateChange != nil {
		s.onStateChange(paused)
	}
}

// Tick produces and appends one record while running; it is a no-op while paused
func (s *Session) Tick(now time.Time) (Record, bool) {
	if s.IsPaused() {
		return Record{}, false
	}

	rec := s.source.Next(now)
	s.buffer = Append(s.buffer, rec)

	return rec, true
}

// SetPaused moves the session to the requested state, doing nothing if already there
func (s *Session) SetPaused(ctx context.Context, paused bool) error {
	if s.IsPaused() == paused {
		return nil
	}

	event := Resume
	if paused {
		event = Pause
	}

	return s.fsm.Event(ctx, event)
}

// Toggle flips between running and paused
func (s *Session) Toggle(ctx context.Context) error {
	return s.SetPaused(ctx, !s.IsPaused())
}

// IsPaused reports whether the session is paused
func (s *Session) IsPaused() bool {
	return s.fsm.Is(Paused)
}

// State returns the current FSM state name
func (s *Session) State() string {
	return s.fsm.Current()
}

// Clear empties the buffer regardless of the filter
func (s *Session) Clear() {
	s.buffer = s.buffer.Clear()
}

// SetFilter replaces the filter after validating it
func (s *Session) SetFilter(filter FilterState) error {
	if err := filter.Validate(); err != nil {
		return err
	}

	s.filter = filter

	return nil
}

// SetLevelFilter changes only the level part of the filter
func (s *Session) SetLevelFilter(level LevelFilter) error {
	return s.SetFilter(FilterState{Level: level, Query: s.filter.Query})
}

// SetQuery changes only the text part of the filter
func (s *Session) SetQuery(query string) {
	s.filter.Query = query
}

// Filter returns the current filter
func (s *Session) Filter() FilterState {
	return s.filter
}

// Visible returns the filtered records in insertion order
func (s *Session) Visible() []Record {
	return Filter(s.buffer, s.filter)
}

// Buffer returns the current buffer value
func (s *Session) Buffer() Buffer {
	return s.buffer
}

// SetCatalog swaps the templates used for new records
func (s *Session) SetCatalog(catalog Catalog) error {
	return s.source.SetCatalog(catalog)
}

// Catalog returns the templates used for new records
func (s *Session) Catalog() Catalog {
	return s.source.Catalog()
}

// Stats counts records per level and how many are visible
func (s *Session) Stats() Stats {
	stats := Stats{Total: s.buffer.Len()}
	term := normalizeQuery(s.filter.Query)

	for _, rec := range s.buffer.records {
		switch rec.Level {
		case LevelInfo:
			stats.Info++
		case LevelWarn:
			stats.Warn++
		case LevelError:
			stats.Error++
		}

		if matches(rec, s.filter.Level, term) {
			stats.Visible++
		}
	}

	return stats
}
