package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 250\nsecondStage: zstd\ntailPolicy: escape-tail\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 250, cfg.Iterations)
	require.Equal(t, "zstd", cfg.SecondStage)
	require.Equal(t, "escape-tail", cfg.TailPolicy)
	require.Zero(t, cfg.Workers)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 10\nspeed: fast\n"), 0o600))
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "parse config")
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"unknown codec", func(c *Config) { c.SecondStage = "gzip" }},
		{"unknown tail", func(c *Config) { c.TailPolicy = "pad" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_ValidateReportsAll(t *testing.T) {
	cfg := Config{Iterations: -1, Workers: -2, SecondStage: "gzip", TailPolicy: "pad"}

	err := cfg.Validate()
	require.Error(t, err)
	for _, msg := range []string{"iterations", "workers", "unknown compression", "unknown tail policy"} {
		require.ErrorContains(t, err, msg)
	}
}

func TestApp_ConfigFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("iterations: 5\nsecondStage: s2\n"), 0o600))

	app := newApp()
	var got Config
	app.Action = func(c *cli.Context) error {
		cfg, err := resolveConfig(c)
		got = cfg
		return err
	}

	require.NoError(t, app.Run([]string{"restream-bench", "--config", cfgPath, "--iterations", "9", "f", "slow"}))
	require.Equal(t, 9, got.Iterations, "flags override the file")
	require.Equal(t, "s2", got.SecondStage, "file overrides defaults")
	require.Equal(t, "reject", got.TailPolicy)
}
