package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/arcticwabbit/pongexe/internal/game"
)

const (
	BallChar   = '\u25CF' // ●
	PaddleChar = '\u2588' // █
	NetChar    = '\u2502' // │

	Title = "PONG .exe"
	Hint  = "Move your mouse to control the left paddle."

	minWidth  = 20
	minHeight = 6
)

var ErrScreenTooSmall = errors.New("terminal too small for the arena")

// Renderer draws snapshots onto the terminal. The court fills every row
// except the title bar at the top and the hint bar at the bottom.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CourtBounds is where the arena is drawn, in terminal cells.
func (r *Renderer) CourtBounds() game.Bounds {
	w, h := r.screen.Size()
	return game.Bounds{X: 0, Y: 1, Width: float64(w), Height: float64(h - 2)}
}

// Render draws one frame.
func (r *Renderer) Render(snap game.Snapshot) error {
	screenW, screenH := r.screen.Size()
	if screenW < minWidth || screenH < minHeight {
		return errors.Wrapf(ErrScreenTooSmall, "%dx%d", screenW, screenH)
	}

	r.screen.Clear()
	court := r.CourtBounds()

	// Scale factors from arena units to cells
	scaleX := court.Width / snap.Arena.Width
	scaleY := court.Height / snap.Arena.Height

	courtStyle := tcell.StyleDefault.Background(Background)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Dashed net down the middle
	netStyle := courtStyle.Foreground(Dim)
	centerX := screenW / 2
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, netStyle, NetChar)
	}

	paddleStyle := courtStyle.Foreground(Phosphor)
	for _, p := range []game.Paddle{snap.Human, snap.Opponent} {
		x := int(p.X * scaleX)
		top := int(p.Y*scaleY) + 1
		bottom := int(p.Bottom()*scaleY) + 1
		if bottom <= top {
			bottom = top + 1
		}
		for y := top; y < bottom && y < screenH-1; y++ {
			r.screen.SetCell(x, y, paddleStyle, PaddleChar)
		}
	}

	ballX, ballY := r.ballCell(snap, scaleX, scaleY)
	if ballX >= 0 && ballX < screenW && ballY >= 1 && ballY < screenH-1 {
		r.screen.SetCell(ballX, ballY, paddleStyle.Bold(true), BallChar)
	}

	r.renderTitleBar(snap, screenW)
	r.renderHintBar(screenW, screenH)

	r.screen.Show()
	return nil
}

func (r *Renderer) ballCell(snap game.Snapshot, scaleX, scaleY float64) (int, int) {
	return int(snap.Ball.X * scaleX), int(snap.Ball.Y*scaleY) + 1
}

// renderTitleBar draws the title, the scoreboard and the exit hint on row 0
func (r *Renderer) renderTitleBar(snap game.Snapshot, screenW int) {
	barStyle := tcell.StyleDefault.Background(Phosphor).Foreground(Background)
	r.screen.FillRect(0, 0, screenW, 1, barStyle, ' ')
	r.screen.DrawText(1, 0, Title, barStyle.Bold(true))

	score := ScoreText(snap.Score)
	r.screen.DrawText((screenW-len(score))/2, 0, score, barStyle.Bold(true))

	exit := "[Esc] EXIT"
	r.screen.DrawText(screenW-len(exit)-1, 0, exit, barStyle)
}

func (r *Renderer) renderHintBar(screenW, screenH int) {
	hintStyle := tcell.StyleDefault.Background(Background).Foreground(Phosphor)
	r.screen.FillRect(0, screenH-1, screenW, 1, hintStyle, ' ')
	hint := Hint
	if len(hint) > screenW-2 {
		hint = hint[:screenW-2]
	}
	r.screen.DrawText(1, screenH-1, hint, hintStyle)
}

// ScoreText formats the scoreboard, human on the left.
func ScoreText(s game.Score) string {
	return fmt.Sprintf("YOU %d - %d CPU", s.Human, s.Opponent)
}
