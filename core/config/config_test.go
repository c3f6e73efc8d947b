package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emitter/core/config"
)

type cachedConfig struct {
	Name  string `env:"CONFIG_TEST_NAME" envDefault:"default-name"`
	Limit int    `env:"CONFIG_TEST_LIMIT" envDefault:"10"`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_REQUIRED_TOKEN,required"`
}

type explicitConfig struct {
	Separator string `env:"SEP" envDefault:":"`
	Enabled   bool   `env:"ENABLED"`
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_NAME", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Name)
	assert.Equal(t, 10, first.Limit)

	t.Setenv("CONFIG_TEST_NAME", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name, "second load must come from the cache")
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_TEST_REQUIRED_TOKEN")
}

func TestLoad_Nil(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilConfig)
	assert.ErrorIs(t, config.LoadFrom[cachedConfig](nil, nil), config.ErrNilConfig)
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	var cfg explicitConfig
	require.NoError(t, config.LoadFrom(&cfg, map[string]string{"ENABLED": "true"}))
	assert.Equal(t, ":", cfg.Separator)
	assert.True(t, cfg.Enabled)

	require.NoError(t, config.LoadFrom(&cfg, map[string]string{"SEP": "/"}))
	assert.Equal(t, "/", cfg.Separator)
	assert.False(t, cfg.Enabled, "LoadFrom must not merge with previous values")
}

func TestLoadFrom_InvalidValue(t *testing.T) {
	t.Parallel()

	var cfg explicitConfig
	err := config.LoadFrom(&cfg, map[string]string{"ENABLED": "not-a-bool"})
	assert.Error(t, err)
}
