package sim

import (
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/arcticwabbit/pongexe/internal/game"
)

// DefaultQueueSize is enough for several seconds of back-to-back cues.
const DefaultQueueSize = 64

var (
	ErrEventDropped = errors.New("event queue full, event dropped")
	ErrQueueClosed  = errors.New("event queue closed")
)

// EventQueue decouples the tick loop from a slow EventSink: Emit only enqueues
// and a single consumer goroutine delivers events in order. A full queue
// drops the event instead of waiting.
type EventQueue struct {
	sink   EventSink
	logger *log.Logger

	mu     sync.RWMutex
	closed bool
	ch     chan game.Event
	done   chan struct{}

	dropped atomic.Int64
}

// NewEventQueue starts the consumer. size <= 0 uses DefaultQueueSize; a nil
// logger discards output.
func NewEventQueue(sink EventSink, size int, logger *log.Logger) *EventQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	q := &EventQueue{
		sink:   sink,
		logger: logger,
		ch:     make(chan game.Event, size),
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *EventQueue) Emit(ev game.Event) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.ch <- ev:
		return nil
	default:
		q.dropped.Add(1)
		return errors.Wrap(ErrEventDropped, ev.String())
	}
}

// Dropped returns how many events were discarded because the queue was full.
func (q *EventQueue) Dropped() int64 {
	return q.dropped.Load()
}

// Close stops accepting events, delivers the ones already queued and waits
// for the consumer to exit.
func (q *EventQueue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
	q.mu.Unlock()

	<-q.done
}

func (q *EventQueue) run() {
	defer close(q.done)
	for ev := range q.ch {
		q.deliver(ev)
	}
}

func (q *EventQueue) deliver(ev game.Event) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Printf("event sink panic on %s: %v", ev, r)
		}
	}()

	if q.sink == nil {
		return
	}
	if err := q.sink.Emit(ev); err != nil {
		q.logger.Printf("event sink failed on %s: %v", ev, err)
	}
}
