package sim

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log"

	"github.com/JWillisNetDev/game-of-life/model"
	"github.com/JWillisNetDev/game-of-life/utils"
)

func testConfig(t *testing.T) utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.Generations = 3
	cfg.OutputDir = t.TempDir()
	return cfg
}

func TestRunWritesEveryGeneration(t *testing.T) {
	cfg := testConfig(t)
	cfg.Formats = []string{"bmp", "pgm"}

	var logs bytes.Buffer
	r, err := NewRunner(cfg, log.NewLogfmtLogger(&logs))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	if len(r.Written()) != 8 {
		t.Fatalf("expected 8 files, got %v", r.Written())
	}
	for _, name := range []string{"game_board.bmp", "game_board_(1).pgm", "game_board_(3).bmp"} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	if logs.Len() == 0 {
		t.Fatalf("expected log output")
	}
}

func TestRunMatchesDirectSimulation(t *testing.T) {
	cfg := testConfig(t)
	r, err := NewRunner(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	want := model.NewBoard(10, 10).AddRing(5, 5)
	for range cfg.Generations {
		want.Next()
	}
	if r.Board().String() != want.String() {
		t.Fatalf("expected\n%s\ngot\n%s", want, r.Board())
	}
}

func TestRunStopsOnStagnation(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pattern = model.PatternBlock
	cfg.Generations = 50
	cfg.StagnationThreshold = 2

	r, err := NewRunner(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	// generations 0, 1 and 2 are written before the block is declared stagnant
	if len(r.Written()) != 3 {
		t.Fatalf("expected 3 files, got %v", r.Written())
	}
}

func TestRunRestartsOnStagnation(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pattern = model.PatternBlinker
	cfg.Generations = 6
	cfg.StagnationThreshold = 1
	cfg.AutoRestart = true

	r, err := NewRunner(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if r.Restarts() == 0 {
		t.Fatalf("expected at least one restart")
	}
	if len(r.Written()) != 7 {
		t.Fatalf("expected every generation to be written, got %d files", len(r.Written()))
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := NewRunner(testConfig(t), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(r.Written()) != 1 {
		t.Fatalf("expected only the initial generation, got %v", r.Written())
	}
}

func TestRunRenders(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t)
	cfg.Generations = 0

	r, err := NewRunner(cfg, nil, WithRenderer(&out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("██")) {
		t.Fatalf("expected rendered board, got %q", out.String())
	}
}

func TestRunExportFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputDir = filepath.Join(cfg.OutputDir, "missing")

	r, err := NewRunner(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := r.Board().String()
	if err := r.Run(context.Background()); err == nil {
		t.Fatalf("expected export error")
	}
	if r.Board().String() != before {
		t.Fatalf("expected failed export to leave the board untouched")
	}
}

func TestNewRunnerInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pattern = "pulsar"
	if _, err := NewRunner(cfg, nil); err == nil {
		t.Fatalf("expected invalid config error")
	}
}
