package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type packerConfig struct {
	Workers  int
	Strategy string
	LastCall string
}

func (c *packerConfig) setWorkers(n int) error {
	if n <= 0 {
		return errors.New("workers must be positive")
	}
	c.Workers = n
	c.LastCall = "setWorkers"

	return nil
}

func (c *packerConfig) setStrategy(name string) {
	c.Strategy = name
	c.LastCall = "setStrategy"
}

func withWorkers(n int) Option[*packerConfig] {
	return New(func(c *packerConfig) error { return c.setWorkers(n) })
}

func withStrategy(name string) Option[*packerConfig] {
	return NoError(func(c *packerConfig) { c.setStrategy(name) })
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &packerConfig{}
		err := Apply(cfg, withWorkers(4), withStrategy("swar"))

		require.NoError(t, err)
		require.Equal(t, 4, cfg.Workers)
		require.Equal(t, "swar", cfg.Strategy)
		require.Equal(t, "setStrategy", cfg.LastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &packerConfig{}
		err := Apply(cfg, withWorkers(2), withWorkers(0), withStrategy("scalar"))

		require.Error(t, err)
		require.Contains(t, err.Error(), "workers must be positive")
		require.Equal(t, 2, cfg.Workers)
		require.Empty(t, cfg.Strategy)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &packerConfig{}
		err := Apply(cfg, nil, withStrategy("scalar"))

		require.NoError(t, err)
		require.Equal(t, "scalar", cfg.Strategy)
	})

	t.Run("no options leaves target untouched", func(t *testing.T) {
		cfg := &packerConfig{Workers: 7}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.Workers)
	})
}

func TestOption_GenericsWithPrimitive(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}
