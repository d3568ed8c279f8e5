// Package window hosts the simulation in a desktop window. Ebiten's update
// loop is the refresh source and the window cursor is the pointer.
package window

import (
	"image/color"
	"io"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/arcticwabbit/pongexe/internal/config"
	"github.com/arcticwabbit/pongexe/internal/game"
	"github.com/arcticwabbit/pongexe/internal/sim"
	"github.com/arcticwabbit/pongexe/internal/ui"
)

var (
	phosphor   = color.RGBA{0x00, 0xff, 0x90, 0xff}
	background = color.RGBA{0x0a, 0x0a, 0x0a, 0xff}
	dim        = color.RGBA{0x0f, 0x5f, 0x3a, 0xff}
)

const (
	keyStep  = 6 // Pointer travel per tick while an arrow key is held
	netDash  = 10
	netGap   = 10
	netWidth = 2
)

// Canvas is the render sink of the window host. Draw reads the latest
// snapshot back out.
type Canvas struct {
	mu   sync.Mutex
	snap game.Snapshot
	ok   bool
}

func (c *Canvas) Render(snap game.Snapshot) error {
	c.mu.Lock()
	c.snap, c.ok = snap, true
	c.mu.Unlock()
	return nil
}

// Last returns the most recent snapshot; ok is false before the first tick.
func (c *Canvas) Last() (game.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap, c.ok
}

type pongGame struct {
	cfg     *config.Config
	frames  *sim.FrameQueue
	pointer *sim.PointerHub
	driver  *sim.Driver
	handle  sim.Handle
	canvas  *Canvas
	logger  *log.Logger

	cursorX, cursorY int
	keyY             float64
}

// Run opens the window and blocks until it is closed or Esc/Q is pressed.
func Run(cfg *config.Config, events sim.EventSink, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &pongGame{
		cfg:     cfg,
		frames:  sim.NewFrameQueue(),
		pointer: sim.NewPointerHub(),
		canvas:  &Canvas{},
		logger:  logger,
		keyY:    cfg.Height / 2,
	}

	driver, err := sim.NewDriver(sim.Options{
		Tuning:  cfg.Tuning,
		Frames:  g.frames,
		Pointer: g.pointer,
		Render:  g.canvas,
		Events:  events,
		Rand:    rand.New(rand.NewSource(seed)),
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	g.driver = driver

	ebiten.SetWindowSize(int(cfg.Width)*2, int(cfg.Height)*2)
	ebiten.SetWindowTitle(ui.Title)
	ebiten.SetTPS(cfg.TickRate)

	err = ebiten.RunGame(g)
	g.driver.Stop(g.handle)
	if err != nil && err != ebiten.Termination {
		return errors.Wrap(err, "window host")
	}
	return nil
}

func (g *pongGame) Update() error {
	if !g.driver.Running() {
		h, err := g.driver.Start(g.cfg.Width, g.cfg.Height)
		if err != nil {
			return err
		}
		g.handle = h
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.driver.Stop(g.handle)
		return ebiten.Termination
	}

	g.routeInput()
	g.frames.Pump()
	return nil
}

// routeInput forwards cursor motion, or arrow keys when the cursor is still.
func (g *pongGame) routeInput() {
	host := game.Bounds{Width: g.cfg.Width, Height: g.cfg.Height}

	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.keyY = float64(y)
		g.pointer.Move(float64(x), float64(y), host)
		return
	}

	dy := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= keyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += keyStep
	}
	if dy == 0 {
		return
	}
	g.keyY = min(max(g.keyY+dy, 0), g.cfg.Height)
	g.pointer.Move(g.cfg.Width/2, g.keyY, host)
}

func (g *pongGame) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	snap, ok := g.canvas.Last()
	if !ok {
		return
	}

	w, h := float32(snap.Arena.Width), float32(snap.Arena.Height)
	for y := float32(0); y < h; y += netDash + netGap {
		vector.DrawFilledRect(screen, w/2-netWidth/2, y, netWidth, netDash, dim, false)
	}

	for _, p := range []game.Paddle{snap.Human, snap.Opponent} {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), phosphor, false)
	}
	vector.DrawFilledCircle(screen, float32(snap.Ball.X), float32(snap.Ball.Y), float32(snap.Ball.Radius), phosphor, true)

	score := ui.ScoreText(snap.Score)
	ebitenutil.DebugPrintAt(screen, score, int(w)/2-len(score)*3, 4)
	ebitenutil.DebugPrintAt(screen, ui.Hint, 4, int(h)-16)
}

func (g *pongGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Width), int(g.cfg.Height)
}
