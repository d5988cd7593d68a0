package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/riskcheck/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(" INFO "))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("nonsense"))
}

func TestNew_QuietWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "debug", Format: "console"}, true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riskcheck.log")
	logger, err := New(config.LogConfig{Level: "info", Format: "json", File: path}, true)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("evaluation complete", append(SessionFields("abc", "tui"), zap.String("tier", "high"))...)
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "evaluation complete", entry["msg"])
	assert.Equal(t, "abc", entry["session_id"])
	assert.Equal(t, "tui", entry["mode"])
	assert.Equal(t, "high", entry["tier"])
	assert.Equal(t, "riskcheck", entry["logger"])
}

func TestNew_LevelFilters(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "error", Format: "console"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
