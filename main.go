package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli"

	"github.com/JWillisNetDev/game-of-life/sim"
)

func main() {
	logger := newLogger(os.Stderr, false)

	app := cli.NewApp()
	app.Name = "game-of-life"
	app.Usage = "simulate Conway's Game of Life and export every generation as an image"
	app.Flags = flags()
	app.Action = func(c *cli.Context) error {
		logger = newLogger(os.Stderr, c.Bool("debug"))

		config, err := resolveConfig(c, logger)
		if err != nil {
			return err
		}

		var opts []sim.Option
		if config.Render {
			opts = append(opts, sim.WithRenderer(os.Stdout))
		}
		runner, err := sim.NewRunner(config, logger, opts...)
		if err != nil {
			return err
		}

		// Handle Ctrl+C gracefully
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runner.Run(ctx)
	}

	if err := app.Run(os.Args); err != nil {
		level.Error(logger).Log("msg", "simulation failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(w *os.File, debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if debug {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}
