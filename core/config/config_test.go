package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/usergen/core/config"
)

// Each test declares its own struct type because the cache is keyed by
// type and shared across the whole test binary.

type defaultsConfig struct {
	Workers int  `env:"TEST_CFG_DEFAULT_WORKERS" envDefault:"4"`
	Quiet   bool `env:"TEST_CFG_DEFAULT_QUIET" envDefault:"false"`
}

type overrideConfig struct {
	Workers int `env:"TEST_CFG_OVERRIDE_WORKERS" envDefault:"4"`
}

type cachedConfig struct {
	Value string `env:"TEST_CFG_CACHED_VALUE" envDefault:"initial"`
}

type brokenConfig struct {
	Workers int `env:"TEST_CFG_BROKEN_WORKERS"`
}

type panicsConfig struct {
	Workers int `env:"TEST_CFG_PANICS_WORKERS"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.Quiet)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_CFG_OVERRIDE_WORKERS", "9")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 9, cfg.Workers)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_CFG_CACHED_VALUE", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))
	require.Equal(t, "first", a.Value)

	t.Setenv("TEST_CFG_CACHED_VALUE", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value, "second load must hit the cache")
}

func TestLoad_NilDestination(t *testing.T) {
	t.Parallel()

	err := config.Load[defaultsConfig](nil)
	require.ErrorIs(t, err, config.ErrNilConfig)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("TEST_CFG_BROKEN_WORKERS", "not-a-number")

	var cfg brokenConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	t.Setenv("TEST_CFG_PANICS_WORKERS", "NaN")

	require.Panics(t, func() {
		var cfg panicsConfig
		config.MustLoad(&cfg)
	})
}
