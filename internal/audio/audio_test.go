package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/arcticwabbit/pongexe/internal/game"
)

func countSamples(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestSquareWave_Length(t *testing.T) {
	s := squareWave(440, 30*time.Millisecond)

	got := countSamples(s)
	want := sampleRate.N(30 * time.Millisecond)
	if got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
}

func TestSquareWave_Amplitude(t *testing.T) {
	s := squareWave(880, 10*time.Millisecond)
	buf := make([][2]float64, 64)

	n, ok := s.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("expected a full buffer, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		v := buf[i][0]
		if v != 0.2 && v != -0.2 {
			t.Fatalf("sample %d: expected +-0.2, got %f", i, v)
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d: channels differ", i)
		}
	}
}

func TestCue_Lengths(t *testing.T) {
	tests := []struct {
		name string
		ev   game.Event
		want time.Duration
	}{
		{"wall", game.Event{Kind: game.WallBounce}, 30 * time.Millisecond},
		{"human paddle", game.Event{Kind: game.PaddleHit, Side: game.SideHuman}, 50 * time.Millisecond},
		{"opponent paddle", game.Event{Kind: game.PaddleHit, Side: game.SideOpponent}, 50 * time.Millisecond},
		{"human scores", game.Event{Kind: game.Scored, Side: game.SideHuman}, 350 * time.Millisecond},
		{"opponent scores", game.Event{Kind: game.Scored, Side: game.SideOpponent}, 350 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countSamples(cue(tt.ev))
			want := sampleRate.N(tt.want)
			// Jingles are built from separately rounded segments
			if got < want-3 || got > want+3 {
				t.Errorf("expected about %d samples, got %d", want, got)
			}
		})
	}
}

func TestPlayer_SilentUntilInit(t *testing.T) {
	p := NewPlayer()

	if err := p.Emit(game.Event{Kind: game.WallBounce}); err != nil {
		t.Errorf("expected nil error from an uninitialized player, got %v", err)
	}
	p.Close()
}
