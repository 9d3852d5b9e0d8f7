package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"sigs.k8s.io/yaml"

	"github.com/arloliu/restream/format"
)

const defaultIterations = 100

// Config holds the benchmark settings. It can be loaded from YAML:
//
//	iterations: 200
//	secondStage: zstd
//	tailPolicy: escape-tail
//	workers: 4
//	csv: results.csv
type Config struct {
	Iterations  int    `json:"iterations"`
	SecondStage string `json:"secondStage"`
	TailPolicy  string `json:"tailPolicy"`
	Workers     int    `json:"workers"`
	CSVPath     string `json:"csv"`
}

// DefaultConfig returns the settings used when neither a file nor flags say otherwise.
func DefaultConfig() Config {
	return Config{
		Iterations:  defaultIterations,
		SecondStage: "none",
		TailPolicy:  "reject",
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings and reports every invalid one.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Iterations <= 0 {
		result = multierror.Append(result, fmt.Errorf("iterations must be positive, got %d", c.Iterations))
	}
	if c.Workers < 0 {
		result = multierror.Append(result, fmt.Errorf("workers cannot be negative, got %d", c.Workers))
	}
	if _, err := format.ParseCompression(c.SecondStage); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := format.ParseTailPolicy(c.TailPolicy); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}
