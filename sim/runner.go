// Package sim drives a board through a number of generations, exporting a
// snapshot of every generation.
package sim

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/JWillisNetDev/game-of-life/export"
	"github.com/JWillisNetDev/game-of-life/model"
	"github.com/JWillisNetDev/game-of-life/utils"
)

// Runner owns a board and the loop that advances and exports it
type Runner struct {
	config   utils.Config
	logger   log.Logger
	board    *model.Board
	pool     *model.BoardPool
	exporter *export.Multi
	names    *utils.NameFactory
	history  model.History
	stats    *utils.Stats
	renderer *model.TerminalRenderer
	rng      *rand.Rand

	stagnantCount int
	restarts      int
	written       []string
}

// Option customizes a Runner
type Option func(*Runner)

// WithRenderer draws every generation to w
func WithRenderer(w io.Writer) Option {
	return func(r *Runner) {
		r.renderer = &model.TerminalRenderer{Out: w}
	}
}

// NewRunner validates the config and builds a runner with a seeded board
func NewRunner(config utils.Config, logger log.Logger, opts ...Option) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewRunner] invalid config")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	exporter, err := export.NewMulti(config.OutputDir, config.Formats...)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRunner] failed to build exporter")
	}

	r := &Runner{
		config:   config,
		logger:   logger,
		pool:     model.NewBoardPool(),
		exporter: exporter,
		names:    utils.NewNameFactory(config.OutputRoot),
		stats:    utils.NewStats(),
		rng:      rand.New(rand.NewSource(config.Seed)),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.board = r.pool.Get(config.Width, config.Height)
	if err := r.seed(); err != nil {
		return nil, err
	}
	return r, nil
}

// Board returns the board being simulated
func (r *Runner) Board() *model.Board {
	return r.board
}

// Written returns every file exported so far
func (r *Runner) Written() []string {
	return r.written
}

// Restarts returns how many times the board was reseeded after stagnating
func (r *Runner) Restarts() int {
	return r.restarts
}

func (r *Runner) seed() error {
	if err := r.board.SeedPattern(r.config.Pattern, r.rng, r.config.RandomDensity); err != nil {
		return errors.Wrap(err, "[seed] failed to seed board")
	}
	r.history.Reset()
	r.history.Record(r.board)
	r.stagnantCount = 0
	return nil
}

// Run exports the initial board, then advances and exports it once per
// generation. It stops early when ctx is cancelled or, without auto restart,
// when the board has stagnated for the configured number of generations.
func (r *Runner) Run(ctx context.Context) error {
	level.Info(r.logger).Log(
		"msg", "starting simulation",
		"width", r.board.Width(),
		"height", r.board.Height(),
		"generations", r.config.Generations,
		"pattern", r.config.Pattern,
		"population", r.board.Population(),
	)

	if err := r.emit(0); err != nil {
		return err
	}

	lastFrame := time.Now()
	for generation := 1; generation <= r.config.Generations; generation++ {
		select {
		case <-ctx.Done():
			level.Warn(r.logger).Log("msg", "simulation interrupted", "generation", generation-1)
			return ctx.Err()
		default:
		}

		r.board.Next()

		frameStart := time.Now()
		r.stats.Update(generation, r.board.Population(), frameStart.Sub(lastFrame))
		lastFrame = frameStart

		if err := r.emit(generation); err != nil {
			return err
		}

		if stop, err := r.checkStagnation(generation); err != nil || stop {
			return err
		}

		if err := sleep(ctx, r.config.FrameRate); err != nil {
			level.Warn(r.logger).Log("msg", "simulation interrupted", "generation", generation)
			return err
		}
	}

	level.Info(r.logger).Log(
		"msg", "simulation finished",
		"generations", r.stats.TotalGenerations,
		"files", len(r.written),
		"avg_population", r.stats.AveragePopulation,
		"runtime", r.stats.Runtime(),
	)
	return nil
}

// emit exports and optionally renders the current generation
func (r *Runner) emit(generation int) error {
	paths, err := r.exporter.Write(r.names.Next(), r.board)
	if err != nil {
		return errors.Wrapf(err, "[Run] failed to export generation %d", generation)
	}
	r.written = append(r.written, paths...)

	level.Debug(r.logger).Log(
		"msg", "generation exported",
		"generation", generation,
		"population", r.board.Population(),
		"gen_per_sec", r.stats.GenerationsPerSecond,
		"files", len(paths),
	)

	if r.renderer != nil {
		if err := r.renderer.Clear(); err != nil {
			return errors.Wrap(err, "[Run] failed to clear terminal")
		}
		if err := r.renderer.Display(r.board); err != nil {
			return errors.Wrap(err, "[Run] failed to render board")
		}
	}
	return nil
}

// checkStagnation updates the stagnation counter and reports whether the run
// should stop. With auto restart the board is reseeded instead.
func (r *Runner) checkStagnation(generation int) (bool, error) {
	if r.config.StagnationThreshold <= 0 {
		return false, nil
	}

	if r.history.IsStagnant(r.board) {
		r.stagnantCount++
	} else {
		r.stagnantCount = 0
	}
	r.history.Record(r.board)
	if r.stagnantCount < r.config.StagnationThreshold {
		return false, nil
	}

	if !r.config.AutoRestart {
		level.Info(r.logger).Log("msg", "stagnation detected, stopping", "generation", generation)
		return true, nil
	}

	level.Info(r.logger).Log("msg", "stagnation detected, restarting", "generation", generation)
	old := r.board
	r.board = r.pool.Get(r.config.Width, r.config.Height)
	model.BoardToPool(old, r.pool)
	r.restarts++
	return false, r.seed()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
