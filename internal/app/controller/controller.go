package controller

//go:generate mockgen -source=controller.go -destination=controller_mock.go -package=controller

import (
	"context"
	"time"

	"opsdash/internal/app/bus"
	"opsdash/internal/app/errors"
	"opsdash/internal/app/stream"
	"opsdash/internal/config"
	"opsdash/internal/config/logger"
)

// Options overrides the configured stream settings for a single run
type Options struct {
	Level  string
	Query  string
	Paused bool
	Random stream.Random
}

// Controller drives one stream session and its scheduler, announcing every change on the bus.
// Like the session it wraps, it must be owned by a single loop.
type Controller interface {
	Start(ctx context.Context) error
	Stop()
	Ticks() <-chan time.Time
	Tick(now time.Time) (stream.Record, bool)
	Toggle(ctx context.Context) error
	SetPaused(ctx context.Context, paused bool) error
	IsPaused() bool
	Clear()
	SetLevelFilter(level stream.LevelFilter) error
	CycleLevel() error
	SetQuery(query string)
	Filter() stream.FilterState
	Visible() []stream.Record
	Stats() stream.Stats
	ApplyCatalog(catalog stream.Catalog) error
	Catalog() stream.Catalog
	Interval() time.Duration
	Capacity() int
}

type controller struct {
	session   *stream.Session
	scheduler *stream.Scheduler
	bus       bus.Bus
	log       logger.Logger
	ctx       context.Context
}

// New builds a controller from the configuration, the loaded catalog and the run overrides
func New(cfg *config.Config, catalog stream.Catalog, opts Options, b bus.Bus, log logger.Logger) (Controller, error) {
	level := cfg.Stream.Level
	if opts.Level != "" {
		level = opts.Level
	}

	query := cfg.Stream.Query
	if opts.Query != "" {
		query = opts.Query
	}

	filter, err := stream.NewFilterState(level, query)
	if err != nil {
		return nil, err
	}

	scheduler, err := stream.NewScheduler(cfg.Stream.Interval)
	if err != nil {
		return nil, err
	}

	rng := opts.Random
	if rng == nil {
		rng = stream.NewRandom(uint64(time.Now().UnixNano())) //nolint:gosec // clock seed for simulated data
	}

	var seed []stream.Record
	if cfg.Stream.Seed {
		seed = stream.SeedRecords(time.Now())
	}

	c := &controller{
		scheduler: scheduler,
		bus:       b,
		log:       log.WithComponent("STREAM"),
	}

	session, err := stream.NewSession(stream.SessionOptions{
		Capacity:      cfg.Stream.Capacity,
		Catalog:       catalog,
		Random:        rng,
		Filter:        filter,
		Seed:          seed,
		Paused:        cfg.Stream.Paused || opts.Paused,
		OnStateChange: c.onStateChange,
	})
	if err != nil {
		return nil, err
	}

	c.session = session

	return c, nil
}

// Start acquires the scheduler unless the stream starts paused
func (c *controller) Start(ctx context.Context) error {
	c.ctx = ctx

	if c.session.IsPaused() {
		c.log.Info().Msg("Stream starts paused")
		return nil
	}

	c.log.Debug().Msgf("Starting scheduler with interval %s", c.scheduler.Interval())

	return c.scheduler.Start(ctx)
}

// Stop releases the scheduler
func (c *controller) Stop() {
	c.scheduler.Stop()
}

// Ticks returns the scheduler delivery channel
func (c *controller) Ticks() <-chan time.Time {
	return c.scheduler.Ticks()
}

// Tick produces one record while running
func (c *controller) Tick(now time.Time) (stream.Record, bool) {
	return c.session.Tick(now)
}

// Toggle flips between running and paused
func (c *controller) Toggle(ctx context.Context) error {
	return c.session.Toggle(ctx)
}

// SetPaused pauses or resumes the stream
func (c *controller) SetPaused(ctx context.Context, paused bool) error {
	return c.session.SetPaused(ctx, paused)
}

// IsPaused reports whether the stream is paused
func (c *controller) IsPaused() bool {
	return c.session.IsPaused()
}

// onStateChange releases or re-acquires the scheduler after a transition
func (c *controller) onStateChange(paused bool) {
	total := c.session.Buffer().Len()

	if paused {
		c.scheduler.Stop()
		c.log.Info().Msg("Stream paused")
		c.bus.Publish(bus.Message{Type: bus.EventStreamPaused, Data: bus.StreamState{Total: total}})

		return
	}

	if c.ctx != nil {
		if err := c.scheduler.Start(c.ctx); err != nil && !errors.Is(err, errors.ErrSchedulerRunning) {
			c.log.Error().Err(err).Msg("Failed to restart scheduler")
		}
	}

	c.log.Info().Msg("Stream resumed")
	c.bus.Publish(bus.Message{Type: bus.EventStreamResumed, Data: bus.StreamState{Total: total}})
}

// Clear empties the buffer
func (c *controller) Clear() {
	dropped := c.session.Buffer().Len()
	c.session.Clear()

	c.log.Info().Msgf("Buffer cleared, %d records dropped", dropped)
	c.bus.Publish(bus.Message{Type: bus.EventBufferCleared, Data: bus.BufferCleared{Dropped: dropped}})
}

// SetLevelFilter shows only the given level
func (c *controller) SetLevelFilter(level stream.LevelFilter) error {
	if err := c.session.SetLevelFilter(level); err != nil {
		return err
	}

	c.publishFilter()

	return nil
}

// CycleLevel moves to the next level filter
func (c *controller) CycleLevel() error {
	return c.SetLevelFilter(c.session.Filter().Level.Next())
}

// SetQuery changes the text filter
func (c *controller) SetQuery(query string) {
	c.session.SetQuery(query)
	c.publishFilter()
}

func (c *controller) publishFilter() {
	filter := c.session.Filter()

	c.bus.Publish(bus.Message{
		Type: bus.EventFilterChanged,
		Data: bus.FilterChanged{
			Level:   filter.Level,
			Query:   filter.Query,
			Visible: c.session.Stats().Visible,
		},
	})
}

// Filter returns the active filter
func (c *controller) Filter() stream.FilterState {
	return c.session.Filter()
}

// Visible returns the filtered records
func (c *controller) Visible() []stream.Record {
	return c.session.Visible()
}

// Stats returns the buffer counters
func (c *controller) Stats() stream.Stats {
	return c.session.Stats()
}

// ApplyCatalog swaps the templates, keeping the previous ones on error
func (c *controller) ApplyCatalog(catalog stream.Catalog) error {
	if err := c.session.SetCatalog(catalog); err != nil {
		c.log.Warn().Err(err).Msg("Rejected catalog, keeping previous templates")
		return err
	}

	c.log.Info().Msgf("Catalog applied, %d templates", len(catalog))

	return nil
}

// Catalog returns the active templates
func (c *controller) Catalog() stream.Catalog {
	return c.session.Catalog()
}

// Interval returns the tick interval
func (c *controller) Interval() time.Duration {
	return c.scheduler.Interval()
}

// Capacity returns the buffer capacity
func (c *controller) Capacity() int {
	return c.session.Buffer().Cap()
}
