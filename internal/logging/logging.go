// Package logging provides structured logging with zap. The terminal is
// owned by tcell while the viewer runs, so log output goes to a file sink
// only; with no file configured every call is a no-op.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger = zap.NewNop()

// Config holds logging configuration.
type Config struct {
	File  string // log file path; empty disables logging
	Level string // debug, info, warn, error
}

// Init initializes the global logger. Calling it with an empty file path
// installs the no-op logger.
func Init(cfg Config) error {
	if cfg.File == "" {
		globalLogger = zap.NewNop()
		return nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}

	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	globalLogger = logger
	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	return globalLogger.Sync()
}

// L returns the global logger.
func L() *zap.Logger {
	return globalLogger
}

// S returns the global sugared logger.
func S() *zap.SugaredLogger {
	return globalLogger.Sugar()
}
