package app

import (
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/arcticwabbit/pongexe/internal/audio"
	"github.com/arcticwabbit/pongexe/internal/config"
	"github.com/arcticwabbit/pongexe/internal/sim"
	"github.com/arcticwabbit/pongexe/internal/ui"
)

// App runs the simulation inside a terminal: tcell supplies the refresh
// cadence, the mouse pointer and the render surface.
type App struct {
	cfg    *config.Config
	logger *log.Logger

	screen   *ui.Screen
	renderer *ui.Renderer
	player   *audio.Player
	queue    *sim.EventQueue
	frames   *sim.FrameQueue
	pointer  *sim.PointerHub
	driver   *sim.Driver
	handle   sim.Handle
	keyboard ui.VirtualPointer

	quit     chan struct{}
	quitOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &App{
		cfg:     cfg,
		logger:  logger,
		frames:  sim.NewFrameQueue(),
		pointer: sim.NewPointerHub(),
		quit:    make(chan struct{}),
	}
}

// Run initializes the terminal, starts the simulation and blocks until the
// user quits or a signal arrives.
func (a *App) Run() error {
	// The game works without sound
	if !a.cfg.Mute {
		a.player = audio.NewPlayer()
		if err := a.player.Init(); err != nil {
			a.logger.Printf("audio disabled: %v", err)
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.start()
	if runErr == nil {
		runErr = a.mainLoop()
	}

	a.cleanup()
	return runErr
}

func (a *App) start() error {
	var events sim.EventSink
	if a.player != nil {
		a.queue = sim.NewEventQueue(a.player, sim.DefaultQueueSize, a.logger)
		events = a.queue
	}

	driver, err := sim.NewDriver(sim.Options{
		Tuning:  a.cfg.Tuning,
		Frames:  a.frames,
		Pointer: a.pointer,
		Render:  a.renderer,
		Events:  events,
		Rand:    newRand(a.cfg.Seed),
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}
	a.driver = driver

	a.handle, err = a.driver.Start(a.cfg.Width, a.cfg.Height)
	return err
}

// mainLoop pumps one frame per tick and routes terminal input to the pointer.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.frames.Pump()
		}
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if dir := ui.KeyToDirection(ev.Key(), ev.Rune()); dir != ui.DirNone {
			court := a.renderer.CourtBounds()
			y := a.keyboard.Nudge(dir, court)
			a.pointer.Move(court.X+court.Width/2, y, court)
		}

	case *tcell.EventMouse:
		x, y := ui.MousePointer(ev)
		a.keyboard.Follow(y)
		a.pointer.Move(x, y, a.renderer.CourtBounds())

	case *tcell.EventResize:
		a.screen.Clear()
	}

	return false
}

func (a *App) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.stop()
	if a.driver != nil {
		a.driver.Stop(a.handle)
	}

	// Drain pending cues before the speaker goes away
	if a.queue != nil {
		a.queue.Close()
	}
	if a.player != nil {
		a.player.Close()
	}

	if a.screen != nil {
		a.screen.Fini()
		a.screen = nil
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
