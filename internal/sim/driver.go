package sim

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/arcticwabbit/pongexe/internal/game"
)

// Options configures a Driver. Only Frames is required.
type Options struct {
	Tuning  game.Tuning
	Frames  Frames
	Pointer PointerSource
	Render  RenderSink
	Events  EventSink
	Rand    game.Rand
	Logger  *log.Logger
}

// Handle identifies one Running period of a Driver.
type Handle struct {
	id uint64
}

// Valid reports whether the handle came from a successful Start.
func (h Handle) Valid() bool {
	return h.id != 0
}

// Driver owns the simulation state while Running and applies, once per
// frame: pointer input, the opponent, physics, event delivery and rendering.
//
// Start, Stop and the frame callbacks must all run on the host's refresh
// goroutine. Pointer motion may arrive from any goroutine.
type Driver struct {
	tuning game.Tuning
	frames Frames
	source PointerSource
	render RenderSink
	events EventSink
	rng    game.Rand
	logger *log.Logger

	id          uint64 // Current state id, 0 while Idle
	lastID      uint64
	state       *game.State
	frame       FrameID
	unsubscribe func()
	pointer     pointerSlot
}

// NewDriver creates an Idle driver. A zero Tuning uses game.DefaultTuning.
func NewDriver(opts Options) (*Driver, error) {
	if opts.Frames == nil {
		return nil, errors.New("driver needs a frame scheduler")
	}

	d := &Driver{
		tuning: opts.Tuning,
		frames: opts.Frames,
		source: opts.Pointer,
		render: opts.Render,
		events: opts.Events,
		rng:    opts.Rand,
		logger: opts.Logger,
	}
	if d.tuning == (game.Tuning{}) {
		d.tuning = game.DefaultTuning()
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard, "", 0)
	}
	return d, nil
}

// Start allocates the state and schedules the first tick. Starting a running
// driver returns the current handle without scheduling anything.
func (d *Driver) Start(width, height float64) (Handle, error) {
	if d.state != nil {
		return Handle{id: d.id}, nil
	}

	st, err := game.NewState(game.Arena{Width: width, Height: height}, d.tuning)
	if err != nil {
		return Handle{}, errors.Wrap(err, "start simulation")
	}
	st.Running = true

	d.lastID++
	d.id = d.lastID
	d.state = &st
	if d.source != nil {
		d.unsubscribe = d.source.Subscribe(d.pointer.store)
	}
	d.frame = d.frames.RequestFrame(d.frameFunc(d.id))

	d.logger.Printf("simulation %d started in a %gx%g arena", d.id, width, height)
	return Handle{id: d.id}, nil
}

// Stop cancels the pending tick, drops the pointer listener and releases the
// state. Stopping with a stale handle or while Idle does nothing.
func (d *Driver) Stop(h Handle) {
	if d.state == nil || h.id != d.id {
		return
	}

	d.frames.CancelFrame(d.frame)
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	d.pointer.reset()

	d.logger.Printf("simulation %d stopped at tick %d, score %d-%d",
		d.id, d.state.Tick, d.state.Score.Human, d.state.Score.Opponent)
	d.state = nil
	d.id = 0
	d.frame = 0
}

// Running reports whether a simulation is active.
func (d *Driver) Running() bool {
	return d.state != nil
}

// Snapshot returns the current state; ok is false while Idle.
func (d *Driver) Snapshot() (snap game.Snapshot, ok bool) {
	if d.state == nil {
		return game.Snapshot{}, false
	}
	return d.state.Snapshot(), true
}

func (d *Driver) frameFunc(id uint64) func() {
	return func() {
		if d.id != id || d.state == nil {
			return
		}
		d.tick()
		// A sink may have stopped the simulation during the tick
		if d.id == id && d.state != nil {
			d.frame = d.frames.RequestFrame(d.frameFunc(id))
		}
	}
}

func (d *Driver) tick() {
	st := d.state

	if x, y, host, ok := d.pointer.take(); ok {
		if center, ok := game.PointerTarget(x, y, host, st.Arena, st.Human); ok {
			st.Human.CenterOn(center)
		}
	}

	noise := d.rng.Float64()*2 - 1
	st.Opponent = game.TrackOpponent(st.Ball.Y, st.Opponent, noise, st.Tuning)

	next, events := game.Step(*st, d.rng)
	*st = next

	for _, ev := range events {
		d.emit(ev)
	}
	d.draw(st.Snapshot())
}

func (d *Driver) emit(ev game.Event) {
	if d.events == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			d.logger.Printf("event sink panic on %s: %v", ev, r)
		}
	}()

	if err := d.events.Emit(ev); err != nil {
		d.logger.Printf("event sink: %v", err)
	}
}

func (d *Driver) draw(snap game.Snapshot) {
	if d.render == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			d.logger.Printf("render sink panic at tick %d: %v", snap.Tick, r)
		}
	}()

	if err := d.render.Render(snap); err != nil {
		d.logger.Printf("render sink at tick %d: %v", snap.Tick, err)
	}
}
