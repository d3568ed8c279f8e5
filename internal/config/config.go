package config

import (
	"flag"
	"io"

	"github.com/pkg/errors"

	"github.com/arcticwabbit/pongexe/internal/game"
)

// Default values for configuration
const (
	DefaultTickRate = 60
	DefaultHost     = HostTerminal
)

// Host selects what drives and displays the simulation.
const (
	HostTerminal = "terminal"
	HostWindow   = "window"
	HostHeadless = "headless"
)

// Config holds the application configuration
type Config struct {
	Width  float64
	Height float64
	Tuning game.Tuning

	TickRate int   // Ticks per second, the only link between wall clock and simulation
	Seed     int64 // 0 seeds from the clock
	Host     string
	Ticks    int // Headless only: stop after this many ticks, 0 runs until interrupted
	Mute     bool
	LogPath  string
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	return parse(args, io.Discard)
}

func parse(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("pongexe", flag.ContinueOnError)
	fs.SetOutput(output)

	t := game.DefaultTuning()
	cfg := &Config{}

	fs.Float64Var(&cfg.Width, "width", game.DefaultArenaWidth, "arena width in logical units")
	fs.Float64Var(&cfg.Height, "height", game.DefaultArenaHeight, "arena height in logical units")
	fs.Float64Var(&t.PaddleWidth, "paddle-width", t.PaddleWidth, "paddle width")
	fs.Float64Var(&t.PaddleHeight, "paddle-height", t.PaddleHeight, "paddle height")
	fs.Float64Var(&t.PaddleInset, "paddle-inset", t.PaddleInset, "gap between a paddle and its wall")
	fs.Float64Var(&t.BallRadius, "ball-radius", t.BallRadius, "ball radius")
	fs.Float64Var(&t.SpeedX, "speed-x", t.SpeedX, "horizontal launch speed per tick")
	fs.Float64Var(&t.SpeedY, "speed-y", t.SpeedY, "vertical launch speed per tick")
	fs.Float64Var(&t.Growth, "growth", t.Growth, "horizontal speed multiplier per paddle hit (>=1)")
	fs.Float64Var(&t.MaxSpeed, "max-speed", t.MaxSpeed, "ball speed ceiling per tick")
	fs.Float64Var(&t.Spin, "spin", t.Spin, "max random vertical nudge per paddle hit")
	fs.Float64Var(&t.OpponentStep, "cpu-step", t.OpponentStep, "opponent paddle travel per tick")
	fs.Float64Var(&t.OpponentMiss, "cpu-miss", t.OpponentMiss, "opponent aiming error bound")
	fs.IntVar(&cfg.TickRate, "tps", DefaultTickRate, "ticks per second (1-1000)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time based)")
	fs.StringVar(&cfg.Host, "host", DefaultHost, "host: terminal, window or headless")
	fs.IntVar(&cfg.Ticks, "ticks", 0, "headless: stop after N ticks (0 = run until interrupted)")
	fs.BoolVar(&cfg.Mute, "mute", false, "disable sound")
	fs.StringVar(&cfg.LogPath, "log", "", "write log output to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	switch cfg.Host {
	case HostTerminal, HostWindow, HostHeadless:
	default:
		return nil, errors.Errorf("unknown host %q", cfg.Host)
	}

	if cfg.TickRate < 1 || cfg.TickRate > 1000 {
		return nil, errors.Errorf("tps must be between 1 and 1000, got %d", cfg.TickRate)
	}

	if cfg.Ticks < 0 {
		return nil, errors.Errorf("ticks must not be negative, got %d", cfg.Ticks)
	}
	if cfg.Ticks > 0 && cfg.Host != HostHeadless {
		return nil, errors.New("--ticks only applies to --host headless")
	}

	if err := t.Validate(game.Arena{Width: cfg.Width, Height: cfg.Height}); err != nil {
		return nil, errors.Wrap(err, "invalid game settings")
	}
	cfg.Tuning = t

	return cfg, nil
}

// Arena returns the configured arena.
func (c *Config) Arena() game.Arena {
	return game.Arena{Width: c.Width, Height: c.Height}
}
