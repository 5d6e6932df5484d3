package observability

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/spec-kit/ticket-stats/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "DEBUG"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(config.LoggerConfig{Level: "nonsense"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLoggerWritesJSONToConfiguredOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.log")

	logger, err := NewLogger(config.LoggerConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	logger.Info("tickets generated")
	require.NoError(t, logger.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(raw))), &entry))
	assert.Equal(t, "tickets generated", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "ts")
}

func TestNewLoggerConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.log")

	logger, err := NewLogger(config.LoggerConfig{Format: "console", Output: path})
	require.NoError(t, err)
	logger.Warn("event handler failed")
	require.NoError(t, logger.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(raw)
	assert.Contains(t, line, "WARN")
	assert.Contains(t, line, "event handler failed")
	assert.False(t, strings.HasPrefix(line, "{"))
}
