package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emitter/core/logger"
)

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "test")),
	)

	log.Info("hello", logger.Event("user:created"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "test", record["service"])
	assert.Equal(t, "user:created", record["event"])
}

func TestNew_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithLevel(slog.LevelWarn), logger.WithOutput(&buf))

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_Development(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("svc"), logger.WithOutput(&buf))

	log.Debug("debug line")
	out := buf.String()
	assert.Contains(t, out, "debug line")
	assert.Contains(t, out, "service=svc")
	assert.Contains(t, out, "env=development")
}

func TestNew_Production(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithProduction("svc"), logger.WithOutput(&buf))

	log.Debug("dropped")
	assert.Empty(t, buf.String())

	log.Info("kept")
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "production", record["env"])
}
