package stream

import (
	"context"
	"sync"
	"time"

	"opsdash/internal/app/errors"
)

// Scheduler is a cancellable handle around a ticker.
// Ticks are delivered on a channel of size one; a tick is dropped when the
// previous one has not been consumed yet, so there is never a backlog.
type Scheduler struct {
	interval time.Duration
	ticks    chan time.Time
	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewScheduler creates a stopped scheduler with the given interval
func NewScheduler(interval time.Duration) (*Scheduler, error) {
	if interval <= 0 {
		return nil, errors.ErrInvalidInterval
	}

	return &Scheduler{
		interval: interval,
		ticks:    make(chan time.Time, 1),
	}, nil
}

// Ticks returns the channel ticks are delivered on
func (s *Scheduler) Ticks() <-chan time.Time {
	return s.ticks
}

// Interval returns the tick interval
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start acquires a ticker; it fails if the scheduler is already running
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runningLocked() {
		return errors.ErrSchedulerRunning
	}

	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.cancel = cancel
	s.done = done

	go s.run(ctx, done)

	return nil
}

// Stop cancels the ticker and waits for it to be released; no tick is delivered after Stop returns
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done

	select {
	case <-s.ticks:
	default:
	}
}

// Running reports whether the ticker goroutine is alive
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runningLocked()
}

func (s *Scheduler) runningLocked() bool {
	if s.done == nil {
		return false
	}

	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	ticker := time.NewTicker(s.interval)

	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			if ctx.Err() != nil {
				return
			}

			select {
			case s.ticks <- t:
			default:
			}
		}
	}
}
