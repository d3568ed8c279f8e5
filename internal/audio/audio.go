package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"

	"github.com/arcticwabbit/pongexe/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Player is an event sink that plays a short retro cue per game event.
// Until Init succeeds it stays silent.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

func NewPlayer() *Player {
	return &Player{}
}

// Init initializes the audio system
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	p.initialized = true
	return nil
}

// Close shuts down the audio system
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Clear()
		speaker.Close()
		p.initialized = false
	}
}

// Emit starts the cue for ev and returns immediately.
func (p *Player) Emit(ev game.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	speaker.Play(cue(ev))
	return nil
}

// cue builds the sound for an event.
func cue(ev game.Event) beep.Streamer {
	switch ev.Kind {
	case game.PaddleHit:
		// High-pitched short beep, lower for the opponent
		if ev.Side == game.SideHuman {
			return squareWave(880, 50*time.Millisecond)
		}
		return squareWave(784, 50*time.Millisecond)
	case game.Scored:
		// Rising jingle when the human scores, falling otherwise
		if ev.Side == game.SideHuman {
			return beep.Seq(
				squareWave(330, 100*time.Millisecond),
				squareWave(440, 100*time.Millisecond),
				squareWave(660, 150*time.Millisecond),
			)
		}
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		)
	default:
		return tone(440, 30*time.Millisecond)
	}
}

// tone is a quiet sine blip of the given frequency and duration.
func tone(freq float64, duration time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(duration))
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(duration), sine),
		Base:     2,
		Volume:   -2,
	}
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if numSamples <= 0 {
			return 0, false
		}
		for i := range samples {
			if numSamples <= 0 {
				return i, true
			}
			// Square wave: positive or negative based on phase
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
