package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var errUsage = errors.New("usage: restream-bench [flags] <image file> <slow|fast|parallel>")

func newApp() *cli.App {
	return &cli.App{
		Name:      "restream-bench",
		Usage:     "Benchmark the restream framebuffer encoder",
		ArgsUsage: "<image file> <slow|fast|parallel>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML file with benchmark settings; flags take precedence",
			},
			&cli.IntFlag{
				Name:  "iterations",
				Value: defaultIterations,
				Usage: "number of timed encode passes",
			},
			&cli.StringFlag{
				Name:  "second-stage",
				Value: "none",
				Usage: "codec applied to the encoded stream: none, zstd, s2 or lz4",
			},
			&cli.StringFlag{
				Name:  "tail",
				Value: "reject",
				Usage: "partial final group policy: reject or escape-tail",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "goroutines for parallel mode (0 means GOMAXPROCS)",
			},
			&cli.StringFlag{
				Name:  "csv",
				Usage: "append a report row to this CSV file",
			},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return errUsage
	}
	path, mode := c.Args().Get(0), c.Args().Get(1)

	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}

	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	report, err := runBenchmark(c.App.Writer, cfg, path, mode, input)
	if err != nil {
		return err
	}
	if report == nil || cfg.CSVPath == "" {
		return nil
	}

	if err := appendCSV(cfg.CSVPath, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "report: %s\n", cfg.CSVPath)

	return nil
}

// resolveConfig layers explicitly set flags over the optional config file
// over the defaults.
func resolveConfig(c *cli.Context) (Config, error) {
	cfg := DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	if c.IsSet("iterations") {
		cfg.Iterations = c.Int("iterations")
	}
	if c.IsSet("second-stage") {
		cfg.SecondStage = c.String("second-stage")
	}
	if c.IsSet("tail") {
		cfg.TailPolicy = c.String("tail")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("csv") {
		cfg.CSVPath = c.String("csv")
	}

	return cfg, cfg.Validate()
}
