package bus

//go:generate mockgen -source=bus.go -destination=bus_mock.go -package=bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"opsdash/internal/app/stream"
	"opsdash/internal/config"
	"opsdash/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventPhaseChanged    MessageType = "phase_changed"
	EventCatalogReloaded MessageType = "catalog_reloaded"
	EventCatalogFailed   MessageType = "catalog_failed"
	EventStreamPaused    MessageType = "stream_paused"
	EventStreamResumed   MessageType = "stream_resumed"
	EventBufferCleared   MessageType = "buffer_cleared"
	EventFilterChanged   MessageType = "filter_changed"
	EventSignal          MessageType = "signal"
)

// Phase represents the application phase
type Phase string

const (
	PhaseStartup  Phase = "startup"
	PhaseRunning  Phase = "running"
	PhaseStopping Phase = "stopping"
	PhaseStopped  Phase = "stopped"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// PhaseChanged indicates an application phase transition
type PhaseChanged struct {
	Phase Phase
}

// CatalogReloaded carries a freshly loaded template catalog
type CatalogReloaded struct {
	Catalog stream.Catalog
	Files   []string
}

// CatalogFailed indicates a reload was rejected and the previous catalog is kept
type CatalogFailed struct {
	Files []string
	Error error
}

// StreamState describes the buffer when the stream is paused or resumed
type StreamState struct {
	Total int
}

// BufferCleared indicates the buffer was emptied
type BufferCleared struct {
	Dropped int
}

// FilterChanged indicates the visible set changed because of a new filter
type FilterChanged struct {
	Level   stream.LevelFilter
	Query   string
	Visible int
}

// Signal contains information about a received OS signal
type Signal struct {
	Name string
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	cfg         *config.Config
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(cfg *config.Config, log logger.Logger) Bus {
	return &bus{
		cfg:         cfg,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.cfg.Stream.BusBuffer)

	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case nil:
		return "{}"
	case PhaseChanged:
		return fmt.Sprintf("{phase: %s}", d.Phase)
	case CatalogReloaded:
		return fmt.Sprintf("{templates: %d, files: %v}", len(d.Catalog), d.Files)
	case CatalogFailed:
		return fmt.Sprintf("{files: %v, error: %v}", d.Files, d.Error)
	case StreamState:
		return fmt.Sprintf("{total: %d}", d.Total)
	case BufferCleared:
		return fmt.Sprintf("{dropped: %d}", d.Dropped)
	case FilterChanged:
		return fmt.Sprintf("{level: %s, query: %q, visible: %d}", d.Level, d.Query, d.Visible)
	case Signal:
		return fmt.Sprintf("{signal: %s}", d.Name)
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
