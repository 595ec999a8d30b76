package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the logger handed to the engine. Without -v or --json-logs
// nothing is logged; the table and trace on stdout are the user-facing output.
func newLogger(verbosity int, jsonLogs bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbosity > 0 {
		level = zapcore.DebugLevel
	}

	switch {
	case jsonLogs:
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		return config.Build()
	case verbosity > 0:
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.DisableStacktrace = true
		return config.Build()
	default:
		return zap.NewNop(), nil
	}
}
