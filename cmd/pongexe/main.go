package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/arcticwabbit/pongexe/internal/app"
	"github.com/arcticwabbit/pongexe/internal/audio"
	"github.com/arcticwabbit/pongexe/internal/config"
	"github.com/arcticwabbit/pongexe/internal/sim"
	"github.com/arcticwabbit/pongexe/internal/window"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg, logger)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	switch cfg.Host {
	case config.HostHeadless:
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		snap, err := app.RunHeadless(ctx, cfg, logger)
		if err != nil {
			return err
		}
		fmt.Printf("final score after %d ticks: %d-%d\n", snap.Tick, snap.Score.Human, snap.Score.Opponent)
		return nil

	case config.HostWindow:
		if cfg.Mute {
			return window.Run(cfg, nil, logger)
		}
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Printf("audio disabled: %v", err)
		}
		queue := sim.NewEventQueue(player, sim.DefaultQueueSize, logger)
		defer player.Close()
		defer queue.Close()
		return window.Run(cfg, queue, logger)

	default:
		return app.NewApp(cfg, logger).Run()
	}
}

// openLog sends log output to --log when given. Without it only the headless
// host logs, to stderr, since the other hosts own the terminal or window.
func openLog(cfg *config.Config) (*log.Logger, func(), error) {
	flags := log.LstdFlags | log.Lmicroseconds

	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		return log.New(f, "", flags), func() { f.Close() }, nil
	}

	if cfg.Host == config.HostHeadless {
		return log.New(os.Stderr, "", flags), func() {}, nil
	}
	return log.New(io.Discard, "", 0), func() {}, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pongexe [options]                     Play in the terminal")
	fmt.Fprintln(os.Stderr, "  pongexe --host window [options]       Play in a desktop window")
	fmt.Fprintln(os.Stderr, "  pongexe --host headless [options]     Let the opponent play alone")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --width <n>          Arena width (default: 680)")
	fmt.Fprintln(os.Stderr, "  --height <n>         Arena height (default: 360)")
	fmt.Fprintln(os.Stderr, "  --paddle-width <n>   Paddle width (default: 8)")
	fmt.Fprintln(os.Stderr, "  --paddle-height <n>  Paddle height (default: 60)")
	fmt.Fprintln(os.Stderr, "  --paddle-inset <n>   Gap between a paddle and its wall (default: 10)")
	fmt.Fprintln(os.Stderr, "  --ball-radius <n>    Ball radius (default: 5)")
	fmt.Fprintln(os.Stderr, "  --speed-x <f>        Horizontal launch speed (default: 4)")
	fmt.Fprintln(os.Stderr, "  --speed-y <f>        Vertical launch speed (default: 3)")
	fmt.Fprintln(os.Stderr, "  --growth <f>         Speed multiplier per hit (default: 1.05)")
	fmt.Fprintln(os.Stderr, "  --max-speed <f>      Ball speed ceiling (default: 12)")
	fmt.Fprintln(os.Stderr, "  --spin <f>           Random vertical nudge per hit (default: 1)")
	fmt.Fprintln(os.Stderr, "  --cpu-step <f>       Opponent paddle travel per tick (default: 3.5)")
	fmt.Fprintln(os.Stderr, "  --cpu-miss <f>       Opponent aiming error (default: 20)")
	fmt.Fprintln(os.Stderr, "  --tps <n>            Ticks per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --seed <n>           Random seed (default: time based)")
	fmt.Fprintln(os.Stderr, "  --ticks <n>          Headless: stop after n ticks")
	fmt.Fprintln(os.Stderr, "  --mute               Disable sound")
	fmt.Fprintln(os.Stderr, "  --log <path>         Write log output to a file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pongexe")
	fmt.Fprintln(os.Stderr, "  pongexe --host window --tps 120")
	fmt.Fprintln(os.Stderr, "  pongexe --host headless --ticks 3600 --seed 42")
}
