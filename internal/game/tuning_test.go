package game

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestTuning_ValidateDefaults(t *testing.T) {
	if err := DefaultTuning().Validate(Arena{Width: 680, Height: 360}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTuning_ValidateCause(t *testing.T) {
	tests := []struct {
		name   string
		arena  Arena
		adjust func(*Tuning)
		want   error
	}{
		{"arena", Arena{-1, 360}, nil, ErrInvalidArena},
		{"paddle", Arena{680, 360}, func(t *Tuning) { t.PaddleHeight = 0 }, ErrInvalidPaddle},
		{"paddles overlap", Arena{30, 360}, nil, ErrInvalidPaddle},
		{"radius", Arena{680, 360}, func(t *Tuning) { t.BallRadius = -1 }, ErrInvalidTuning},
		{"zero speed", Arena{680, 360}, func(t *Tuning) { t.SpeedX = 0 }, ErrInvalidTuning},
		{"opponent step", Arena{680, 360}, func(t *Tuning) { t.OpponentStep = 0 }, ErrInvalidTuning},
		{"NaN paddle height", Arena{680, 360}, func(t *Tuning) { t.PaddleHeight = math.NaN() }, ErrInvalidTuning},
		{"NaN opponent miss", Arena{680, 360}, func(t *Tuning) { t.OpponentMiss = math.NaN() }, ErrInvalidTuning},
		{"infinite growth", Arena{680, 360}, func(t *Tuning) { t.Growth = math.Inf(1) }, ErrInvalidTuning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			if tt.adjust != nil {
				tt.adjust(&tuning)
			}
			err := tuning.Validate(tt.arena)
			if errors.Cause(err) != tt.want {
				t.Errorf("expected cause %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: WallBounce}, "wall-bounce"},
		{Event{Kind: PaddleHit, Side: SideHuman}, "paddle-hit(human)"},
		{Event{Kind: Scored, Side: SideOpponent}, "scored(opponent)"},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
