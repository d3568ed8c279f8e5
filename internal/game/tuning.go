package game

import (
	"math"

	"github.com/pkg/errors"
)

// Defaults describe a 680x360 arena.
const (
	DefaultArenaWidth   = 680
	DefaultArenaHeight  = 360
	DefaultPaddleWidth  = 8
	DefaultPaddleHeight = 60
	DefaultPaddleInset  = 10 // Gap between a paddle and its wall
	DefaultBallRadius   = 5
	DefaultSpeedX       = 4.0
	DefaultSpeedY       = 3.0
	SpeedIncrement      = 1.05 // 5% horizontal speed increase per paddle hit
	DefaultMaxSpeed     = 12.0
	DefaultSpin         = 1.0  // Max vertical nudge on a paddle hit
	DefaultOpponentStep = 3.5  // Opponent paddle travel per tick
	DefaultOpponentMiss = 20.0 // Max aiming error of the opponent
)

var (
	ErrInvalidArena  = errors.New("arena dimensions must be positive")
	ErrInvalidPaddle = errors.New("paddle dimensions must be positive")
	ErrInvalidTuning = errors.New("invalid tuning")
)

// Arena is the fixed logical rectangle the simulation runs in.
type Arena struct {
	Width, Height float64
}

// Validate reports whether both dimensions are positive and finite.
func (a Arena) Validate() error {
	if !(a.Width > 0) || !(a.Height > 0) || math.IsInf(a.Width, 0) || math.IsInf(a.Height, 0) {
		return errors.Wrapf(ErrInvalidArena, "got %gx%g", a.Width, a.Height)
	}
	return nil
}

// Center returns the arena midpoint.
func (a Arena) Center() (float64, float64) {
	return a.Width / 2, a.Height / 2
}

// Tuning holds every numeric knob of the simulation. It is immutable once a
// simulation has started.
type Tuning struct {
	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64
	BallRadius   float64

	// Launch velocity; also the speed restored after every point.
	SpeedX float64
	SpeedY float64

	Growth   float64 // Horizontal multiplier per paddle hit
	MaxSpeed float64 // Ceiling on the ball's speed magnitude
	Spin     float64 // Bound of the random vertical nudge per paddle hit

	OpponentStep float64
	OpponentMiss float64
}

// DefaultTuning returns the tuning used when nothing is configured.
func DefaultTuning() Tuning {
	return Tuning{
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		PaddleInset:  DefaultPaddleInset,
		BallRadius:   DefaultBallRadius,
		SpeedX:       DefaultSpeedX,
		SpeedY:       DefaultSpeedY,
		Growth:       SpeedIncrement,
		MaxSpeed:     DefaultMaxSpeed,
		Spin:         DefaultSpin,
		OpponentStep: DefaultOpponentStep,
		OpponentMiss: DefaultOpponentMiss,
	}
}

// Validate checks the tuning against the arena it will run in.
func (t Tuning) Validate(a Arena) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if name, ok := t.finite(); !ok {
		return errors.Wrapf(ErrInvalidTuning, "%s is not a finite number", name)
	}
	if !(t.PaddleWidth > 0) || !(t.PaddleHeight > 0) {
		return errors.Wrapf(ErrInvalidPaddle, "got %gx%g", t.PaddleWidth, t.PaddleHeight)
	}
	if t.PaddleHeight > a.Height {
		return errors.Wrapf(ErrInvalidPaddle, "paddle height %g exceeds arena height %g", t.PaddleHeight, a.Height)
	}
	if t.PaddleInset < 0 || 2*(t.PaddleInset+t.PaddleWidth) >= a.Width {
		return errors.Wrapf(ErrInvalidPaddle, "paddles do not fit a %g wide arena", a.Width)
	}
	if t.BallRadius < 0 || 2*t.BallRadius >= a.Height {
		return errors.Wrapf(ErrInvalidTuning, "ball radius %g", t.BallRadius)
	}
	if t.Growth < 1 {
		return errors.Wrapf(ErrInvalidTuning, "growth factor %g is below 1", t.Growth)
	}
	if t.SpeedX == 0 {
		return errors.Wrap(ErrInvalidTuning, "horizontal launch speed is zero")
	}
	if base := math.Hypot(t.SpeedX, t.SpeedY); !(t.MaxSpeed >= base) {
		return errors.Wrapf(ErrInvalidTuning, "max speed %g is below launch speed %g", t.MaxSpeed, base)
	}
	if t.Spin < 0 || t.OpponentStep <= 0 || t.OpponentMiss < 0 {
		return errors.Wrap(ErrInvalidTuning, "spin, opponent step and miss must not be negative")
	}
	return nil
}

// finite returns the name of the first field that is NaN or infinite.
func (t Tuning) finite() (string, bool) {
	fields := []struct {
		name  string
		value float64
	}{
		{"paddle width", t.PaddleWidth},
		{"paddle height", t.PaddleHeight},
		{"paddle inset", t.PaddleInset},
		{"ball radius", t.BallRadius},
		{"horizontal speed", t.SpeedX},
		{"vertical speed", t.SpeedY},
		{"growth", t.Growth},
		{"max speed", t.MaxSpeed},
		{"spin", t.Spin},
		{"opponent step", t.OpponentStep},
		{"opponent miss", t.OpponentMiss},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return f.name, false
		}
	}
	return "", true
}
