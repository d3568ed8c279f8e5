package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/arcticwabbit/pongexe/internal/game"
)

func newSimScreen(t *testing.T, w, h int) (tcell.SimulationScreen, *Renderer) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s, NewRenderer(NewScreen(s))
}

func rowText(s tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func testSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	st, err := game.NewState(game.Arena{Width: 680, Height: 360}, game.DefaultTuning())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st.Score = game.Score{Human: 3, Opponent: 2}
	return st.Snapshot()
}

func TestRenderer_CourtBounds(t *testing.T) {
	_, r := newSimScreen(t, 80, 24)

	got := r.CourtBounds()
	want := game.Bounds{X: 0, Y: 1, Width: 80, Height: 22}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestRenderer_Render(t *testing.T) {
	s, r := newSimScreen(t, 80, 24)

	if err := r.Render(testSnapshot(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	title := rowText(s, 0, 80)
	if !strings.Contains(title, Title) {
		t.Errorf("expected title bar to contain %q, got %q", Title, title)
	}
	if !strings.Contains(title, "YOU 3 - 2 CPU") {
		t.Errorf("expected scoreboard in title bar, got %q", title)
	}
	if hint := rowText(s, 23, 80); !strings.Contains(hint, Hint) {
		t.Errorf("expected hint bar, got %q", hint)
	}

	balls := 0
	paddleCols := map[int]int{}
	for y := 1; y < 23; y++ {
		for x := 0; x < 80; x++ {
			r, _, _, _ := s.GetContent(x, y)
			switch r {
			case BallChar:
				balls++
				if y < 10 || y > 14 {
					t.Errorf("ball drawn at row %d, expected near the middle", y)
				}
			case PaddleChar:
				paddleCols[x]++
			}
		}
	}

	if balls != 1 {
		t.Errorf("expected exactly one ball cell, got %d", balls)
	}
	if len(paddleCols) != 2 {
		t.Fatalf("expected paddles in two columns, got %v", paddleCols)
	}
	for x, n := range paddleCols {
		if x > 5 && x < 74 {
			t.Errorf("paddle drawn at column %d, expected next to a wall", x)
		}
		if n < 3 || n > 5 {
			t.Errorf("expected paddle about 4 rows tall, got %d", n)
		}
	}
}

func TestRenderer_TooSmall(t *testing.T) {
	_, r := newSimScreen(t, 10, 3)

	err := r.Render(testSnapshot(t))
	if errors.Cause(err) != ErrScreenTooSmall {
		t.Errorf("expected ErrScreenTooSmall, got %v", err)
	}
}

func TestScoreText(t *testing.T) {
	got := ScoreText(game.Score{Human: 10, Opponent: 7})
	if got != "YOU 10 - 7 CPU" {
		t.Errorf("unexpected score text %q", got)
	}
}
