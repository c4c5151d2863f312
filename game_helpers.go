package main

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli"

	"github.com/JWillisNetDev/game-of-life/utils"
)

const defaultConfigFile = "config.json"

func flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "config, c", Value: defaultConfigFile, Usage: "JSON or YAML configuration file"},
		cli.IntFlag{Name: "width", Usage: "board width in cells"},
		cli.IntFlag{Name: "height", Usage: "board height in cells"},
		cli.IntFlag{Name: "generations, n", Usage: "number of generations to advance"},
		cli.StringFlag{Name: "pattern, p", Usage: "initial pattern: ring, glider, blinker, block, random, empty"},
		cli.Int64Flag{Name: "seed", Usage: "random source seed for the random pattern"},
		cli.Float64Flag{Name: "density", Usage: "alive probability for the random pattern"},
		cli.StringFlag{Name: "out, o", Usage: "output directory"},
		cli.StringFlag{Name: "root", Usage: "output file name root"},
		cli.StringSliceFlag{Name: "format, f", Usage: "image format to export (bmp, png, pgm); repeatable"},
		cli.DurationFlag{Name: "frame-rate", Usage: "delay between generations"},
		cli.IntFlag{Name: "stagnation", Usage: "stop after this many stagnant generations (0 disables)"},
		cli.BoolFlag{Name: "restart", Usage: "reseed instead of stopping when stagnant"},
		cli.BoolFlag{Name: "render", Usage: "draw every generation to the terminal"},
		cli.BoolFlag{Name: "debug", Usage: "log every exported generation"},
	}
}

// resolveConfig loads the config file, falling back to defaults when the
// default file is absent, and applies any flags given on the command line.
func resolveConfig(c *cli.Context, logger log.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(c.String("config"))
	if err != nil {
		if c.IsSet("config") {
			return config, err
		}
		level.Info(logger).Log("msg", "using default configuration", "reason", "config file not found", "file", defaultConfigFile)
		config = utils.DefaultConfig()
	}

	if c.IsSet("width") {
		config.Width = c.Int("width")
	}
	if c.IsSet("height") {
		config.Height = c.Int("height")
	}
	if c.IsSet("generations") {
		config.Generations = c.Int("generations")
	}
	if c.IsSet("pattern") {
		config.Pattern = c.String("pattern")
	}
	if c.IsSet("seed") {
		config.Seed = c.Int64("seed")
	}
	if c.IsSet("density") {
		config.RandomDensity = c.Float64("density")
	}
	if c.IsSet("out") {
		config.OutputDir = c.String("out")
	}
	if c.IsSet("root") {
		config.OutputRoot = c.String("root")
	}
	if c.IsSet("format") {
		config.Formats = c.StringSlice("format")
	}
	if c.IsSet("frame-rate") {
		config.FrameRate = c.Duration("frame-rate")
	}
	if c.IsSet("stagnation") {
		config.StagnationThreshold = c.Int("stagnation")
	}
	if c.IsSet("restart") {
		config.AutoRestart = c.Bool("restart")
	}
	if c.IsSet("render") {
		config.Render = c.Bool("render")
	}

	return config, config.Validate()
}
