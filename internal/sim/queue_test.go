package sim

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcticwabbit/pongexe/internal/game"
)

type recordingSink struct {
	mu     sync.Mutex
	events []game.Event
}

func (s *recordingSink) Emit(ev game.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) Events() []game.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]game.Event(nil), s.events...)
}

func TestEventQueue_DeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	q := NewEventQueue(sink, 8, nil)

	want := []game.Event{
		{Kind: game.WallBounce},
		{Kind: game.PaddleHit, Side: game.SideHuman},
		{Kind: game.Scored, Side: game.SideOpponent},
	}
	for _, ev := range want {
		require.NoError(t, q.Emit(ev))
	}
	q.Close()

	assert.Equal(t, want, sink.Events())
	assert.Equal(t, int64(0), q.Dropped())
}

func TestEventQueue_DropsWhenFull(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	sink := EventFunc(func(ev game.Event) error {
		once.Do(func() { close(started) })
		<-gate
		return nil
	})
	q := NewEventQueue(sink, 1, nil)

	require.NoError(t, q.Emit(game.Event{Kind: game.WallBounce}))
	<-started // consumer is now blocked inside the sink
	require.NoError(t, q.Emit(game.Event{Kind: game.WallBounce}))

	err := q.Emit(game.Event{Kind: game.WallBounce})
	assert.Equal(t, ErrEventDropped, errors.Cause(err))
	assert.Equal(t, int64(1), q.Dropped())

	close(gate)
	q.Close()
}

func TestEventQueue_SinkPanicDoesNotStopConsumer(t *testing.T) {
	sink := &recordingSink{}
	calls := 0
	q := NewEventQueue(EventFunc(func(ev game.Event) error {
		calls++
		if calls == 1 {
			panic("speaker gone")
		}
		return sink.Emit(ev)
	}), 4, nil)

	require.NoError(t, q.Emit(game.Event{Kind: game.WallBounce}))
	require.NoError(t, q.Emit(game.Event{Kind: game.Scored, Side: game.SideHuman}))
	q.Close()

	assert.Equal(t, []game.Event{{Kind: game.Scored, Side: game.SideHuman}}, sink.Events())
}

func TestEventQueue_EmitAfterClose(t *testing.T) {
	q := NewEventQueue(nil, 1, nil)
	q.Close()
	q.Close()

	assert.Equal(t, ErrQueueClosed, q.Emit(game.Event{Kind: game.WallBounce}))
}
