package game

import "fmt"

// Side identifies one of the two paddles.
type Side int

const (
	SideHuman    Side = 0 // Left wall, pointer controlled
	SideOpponent Side = 1 // Right wall, computer controlled
)

func (s Side) String() string {
	switch s {
	case SideHuman:
		return "human"
	case SideOpponent:
		return "opponent"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// Dir is the sign of a horizontal velocity heading toward this side's wall.
func (s Side) Dir() float64 {
	if s == SideHuman {
		return -1
	}
	return 1
}

// EventKind classifies what happened during a tick.
type EventKind int

const (
	WallBounce EventKind = iota
	PaddleHit
	Scored
)

func (k EventKind) String() string {
	switch k {
	case WallBounce:
		return "wall-bounce"
	case PaddleHit:
		return "paddle-hit"
	case Scored:
		return "scored"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is produced by Step. Side is the paddle hit for PaddleHit and the
// scorer for Scored; it is meaningless for WallBounce.
type Event struct {
	Kind EventKind
	Side Side
}

func (e Event) String() string {
	if e.Kind == WallBounce {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Side)
}
