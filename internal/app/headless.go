package app

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/arcticwabbit/pongexe/internal/config"
	"github.com/arcticwabbit/pongexe/internal/game"
	"github.com/arcticwabbit/pongexe/internal/sim"
)

// scoreLog is the headless render sink: it keeps the latest snapshot and
// logs the scoreboard whenever it changes.
type scoreLog struct {
	logger *log.Logger
	last   game.Snapshot
}

func (s *scoreLog) Render(snap game.Snapshot) error {
	if snap.Score != s.last.Score {
		s.logger.Printf("tick %d: score %d-%d", snap.Tick, snap.Score.Human, snap.Score.Opponent)
	}
	s.last = snap
	return nil
}

func (s *scoreLog) Emit(ev game.Event) error {
	if ev.Kind == game.Scored {
		s.logger.Printf("point to %s", ev.Side)
	}
	return nil
}

// RunHeadless drives the simulation from a ticker with no display or pointer.
// The human paddle stays put while the opponent plays. It returns the last
// snapshot once cfg.Ticks ticks have run or ctx is done.
func RunHeadless(ctx context.Context, cfg *config.Config, logger *log.Logger) (game.Snapshot, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	frames := sim.NewFrameQueue()
	sink := &scoreLog{logger: logger}

	driver, err := sim.NewDriver(sim.Options{
		Tuning: cfg.Tuning,
		Frames: frames,
		Render: sink,
		Events: sink,
		Rand:   newRand(cfg.Seed),
		Logger: logger,
	})
	if err != nil {
		return game.Snapshot{}, err
	}

	handle, err := driver.Start(cfg.Width, cfg.Height)
	if err != nil {
		return game.Snapshot{}, errors.Wrap(err, "headless host")
	}
	defer driver.Stop(handle)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return sink.last, nil

		case <-ticker.C:
			frames.Pump()
			if cfg.Ticks > 0 && sink.last.Tick >= cfg.Ticks {
				return sink.last, nil
			}
		}
	}
}
