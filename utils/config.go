package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/JWillisNetDev/game-of-life/model"
)

// SupportedFormats lists the image formats a run can export
var SupportedFormats = []string{"bmp", "png", "pgm"}

// Config holds the configuration for a simulation run
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	Generations         int           `json:"generations" yaml:"generations"`
	OutputDir           string        `json:"output_dir" yaml:"output_dir"`
	OutputRoot          string        `json:"output_root" yaml:"output_root"`
	Formats             []string      `json:"formats" yaml:"formats"`
	Pattern             string        `json:"pattern" yaml:"pattern"`
	RandomDensity       float64       `json:"random_density" yaml:"random_density"`
	Seed                int64         `json:"seed" yaml:"seed"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	Render              bool          `json:"render" yaml:"render"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
}

// DefaultConfig returns the settings of the classic run: a 100x100 board
// seeded with a ring, written as twelve bitmaps.
func DefaultConfig() Config {
	return Config{
		Width:         100,
		Height:        100,
		Generations:   11,
		OutputDir:     ".",
		OutputRoot:    "game_board",
		Formats:       []string{"bmp"},
		Pattern:       model.PatternRing,
		RandomDensity: 0.15,
		Seed:          1,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by the
// file extension. Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration describes a runnable simulation
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("[Validate] board dimensions must not be negative: %dx%d", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must not be negative: %d", c.Generations)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random density must be within [0, 1]: %v", c.RandomDensity)
	}
	if c.StagnationThreshold < 0 {
		return errors.Errorf("[Validate] stagnation threshold must not be negative: %d", c.StagnationThreshold)
	}
	if c.OutputRoot == "" {
		return errors.New("[Validate] output root must not be empty")
	}
	if !slices.Contains(model.Patterns, c.Pattern) {
		return errors.Errorf("[Validate] unknown pattern: %q", c.Pattern)
	}
	for _, f := range c.Formats {
		if !slices.Contains(SupportedFormats, f) {
			return errors.Errorf("[Validate] unknown format: %q", f)
		}
	}
	return nil
}
