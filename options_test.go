package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emitter"
	"github.com/dmitrymomot/emitter/core/config"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := emitter.DefaultConfig()
	assert.Equal(t, ":", cfg.Separator)
	assert.Equal(t, "newListener", cfg.NewListenerEvent)
	assert.False(t, cfg.DisableNewListener)

	d := emitter.New(emitter.WithLogger(quietLogger()))
	assert.Equal(t, emitter.DefaultSeparator, d.Separator())
}

func TestConfig_FromEnvironmentVariables(t *testing.T) {
	t.Parallel()

	var cfg emitter.Config
	require.NoError(t, config.LoadFrom(&cfg, map[string]string{
		"EMITTER_SEPARATOR":            ".",
		"EMITTER_NEW_LISTENER_EVENT":   "added",
		"EMITTER_DISABLE_NEW_LISTENER": "false",
	}))

	d := emitter.NewFromConfig(cfg, emitter.WithLogger(quietLogger()))
	assert.Equal(t, ".", d.Separator())

	watcher := newSpy()
	d.On("added", watcher)
	assert.Equal(t, 1, watcher.count())

	var defaults emitter.Config
	require.NoError(t, config.LoadFrom(&defaults, nil))
	assert.Equal(t, emitter.DefaultConfig(), defaults)
}

func TestNewFromConfig_DisableNewListener(t *testing.T) {
	t.Parallel()

	cfg := emitter.DefaultConfig()
	cfg.DisableNewListener = true
	cfg.Separator = ""

	d := emitter.NewFromConfig(cfg, emitter.WithLogger(quietLogger()))
	assert.Equal(t, ":", d.Separator(), "empty separator falls back to the default")

	watcher := newSpy()
	d.On("newListener", watcher)
	d.On("x", stub())
	assert.Equal(t, 0, watcher.count())
}

func TestNewFromConfig_OptionsOverrideConfig(t *testing.T) {
	t.Parallel()

	cfg := emitter.DefaultConfig()
	cfg.DisableNewListener = true

	d := emitter.NewFromConfig(cfg,
		emitter.WithLogger(quietLogger()),
		emitter.WithNewListenerEvent("registered"),
		emitter.WithSeparator("::"),
		emitter.WithSeparator(""),
	)
	assert.Equal(t, "::", d.Separator(), "empty separator option is ignored")

	watcher := newSpy()
	d.On("registered", watcher)
	assert.Equal(t, 1, watcher.count())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("EMITTER_SEPARATOR", "|")
	t.Setenv("EMITTER_DISABLE_NEW_LISTENER", "true")

	d, err := emitter.NewFromEnv(emitter.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, "|", d.Separator())

	watcher := newSpy()
	d.On("newListener", watcher)
	assert.Equal(t, 0, watcher.count())
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		d := emitter.New(emitter.WithLogger(nil), emitter.WithoutNewListenerEvent())
		d.On("x", stub())
		d.Emit("x")
	})
}
