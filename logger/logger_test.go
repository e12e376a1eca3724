package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelDebug, ParseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, "info")

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("scene redrawn", "angle", 0.5)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scene redrawn", entry["msg"])
	assert.Equal(t, 0.5, entry["angle"])
	assert.Contains(t, entry, "source")
}
