// Package logging builds the zap logger shared by every command.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/riskcheck/internal/config"
)

// ParseLevel maps a config level name to a zap level. Unknown names fall
// back to warn.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// New builds a logger from cfg. When cfg.File is empty the logger writes to
// stderr, unless quiet is set, in which case a no-op logger is returned so
// that nothing reaches a full-screen terminal UI.
func New(cfg config.LogConfig, quiet bool) (*zap.Logger, error) {
	if cfg.File == "" && quiet {
		return zap.NewNop(), nil
	}

	var zc zap.Config
	if strings.EqualFold(cfg.Format, "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zc.DisableStacktrace = true
	zc.Sampling = nil

	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("riskcheck"), nil
}

// SessionFields are attached to every log line of one interview.
func SessionFields(sessionID, mode string) []zap.Field {
	return []zap.Field{
		zap.String("session_id", sessionID),
		zap.String("mode", mode),
	}
}
