package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerConsole(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var console bytes.Buffer
	closer := initLogger(&console, Options{Level: slog.LevelWarn})
	defer closer.Close()

	slog.Info("[Test] hidden")
	slog.Warn("[Test] shown", slog.String("topic", "housing"))

	out := console.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "housing")
}

func TestInitLoggerFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "civicpulse.log")
	var console bytes.Buffer
	closer := initLogger(&console, Options{Level: slog.LevelInfo, File: path})

	slog.With(slog.String("session_id", "s1")).Info("[Test] written", slog.Float64("score", 0.5))
	require.NoError(t, closer.Close())

	assert.Contains(t, console.String(), "written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "[Test] written", record["msg"])
	assert.Equal(t, "s1", record["session_id"])
	assert.Equal(t, 0.5, record["score"])
}
