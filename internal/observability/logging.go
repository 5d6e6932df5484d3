package observability

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spec-kit/ticket-stats/internal/config"
)

const defaultOutput = "stderr"

// NewLogger creates a structured zap.Logger configured via env settings.
// Output defaults to stderr because the command prints its report on stdout.
func NewLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoding := "json"
	if strings.EqualFold(cfg.Format, "console") {
		encoding = "console"
	}

	output := strings.TrimSpace(cfg.Output)
	if output == "" {
		output = defaultOutput
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      level == zapcore.DebugLevel,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig(encoding),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{defaultOutput},
	}

	return zapCfg.Build()
}

func encoderConfig(encoding string) zapcore.EncoderConfig {
	encCfg := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "ts",
		NameKey:        "logger",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if encoding == "json" {
		encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	}
	return encCfg
}
