package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/arcticwabbit/pongexe/internal/game"
)

// Direction represents keyboard paddle movement
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// KeyToDirection converts a key event to a movement direction
// For Pong, only up/down movement is allowed
func KeyToDirection(key tcell.Key, r rune) Direction {
	switch key {
	case tcell.KeyUp:
		return DirUp
	case tcell.KeyDown:
		return DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return DirUp
		case 's', 'S':
			return DirDown
		}
	}
	return DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// MousePointer returns the center of the cell under the mouse.
func MousePointer(ev *tcell.EventMouse) (x, y float64) {
	cx, cy := ev.Position()
	return float64(cx) + 0.5, float64(cy) + 0.5
}

// VirtualPointer stands in for the mouse on terminals without motion
// reporting: each key press moves it one row inside the court.
type VirtualPointer struct {
	Y   float64
	set bool
}

// Nudge moves the pointer one row in dir and returns its new position.
func (v *VirtualPointer) Nudge(dir Direction, court game.Bounds) float64 {
	if !v.set {
		v.Y = court.Y + court.Height/2
		v.set = true
	}

	switch dir {
	case DirUp:
		v.Y--
	case DirDown:
		v.Y++
	}

	if v.Y < court.Y {
		v.Y = court.Y
	}
	if bottom := court.Y + court.Height; v.Y > bottom {
		v.Y = bottom
	}
	return v.Y
}

// Follow syncs the pointer with real mouse motion so keys continue from there.
func (v *VirtualPointer) Follow(y float64) {
	v.Y = y
	v.set = true
}
