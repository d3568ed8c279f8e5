package sim

import "github.com/arcticwabbit/pongexe/internal/game"

// RenderSink draws a snapshot. It is called once per tick.
type RenderSink interface {
	Render(snap game.Snapshot) error
}

// EventSink plays the cue for an event. Calls must not block.
type EventSink interface {
	Emit(ev game.Event) error
}

// RenderFunc adapts a function to RenderSink.
type RenderFunc func(snap game.Snapshot) error

func (f RenderFunc) Render(snap game.Snapshot) error { return f(snap) }

// EventFunc adapts a function to EventSink.
type EventFunc func(ev game.Event) error

func (f EventFunc) Emit(ev game.Event) error { return f(ev) }
