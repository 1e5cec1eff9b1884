package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerWritesStructuredEntries(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"cards": 3}).Info("gallery rendered")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "gallery rendered", entry["message"])
	assert.Equal(t, float64(3), entry["cards"])
	assert.Equal(t, "info", entry["level"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "error", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("bad token"), "config rejected")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "config rejected", entry["message"])
	assert.Equal(t, "bad token", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Info("noop")
	log.Debug("noop")
	log.Error(nil, "noop")
	assert.Nil(t, log.WithFields(map[string]any{"k": "v"}))
}
