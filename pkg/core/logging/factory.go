// ============================================================================
// mscript - MATLAB-like script front end
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from settings
// Author:      msto63
// Created:     2026-10-08
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mserror "github.com/msto63/mscript/foundation/core/error"
	mslog "github.com/msto63/mscript/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Tool or component name
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format: text, json, console or logfmt (default: text)
	Format string

	// Verbose lowers the level to debug unless it is already lower
	Verbose bool

	// Output destination (default: stderr)
	Output io.Writer

	// Additional outputs written alongside Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) (*mslog.Logger, error) {
	level := mslog.DefaultLevel()
	if cfg.Level != "" {
		parsed, err := mslog.ParseLevel(cfg.Level)
		if err != nil {
			return nil, invalid(err, "log.level", cfg.Level)
		}
		level = parsed
	}
	if cfg.Verbose && level > mslog.LevelDebug {
		level = mslog.LevelDebug
	}

	format := mslog.FormatText
	if cfg.Format != "" {
		parsed, err := mslog.ParseFormat(cfg.Format)
		if err != nil {
			return nil, invalid(err, "log.format", cfg.Format)
		}
		format = parsed
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mslog.NewWithConfig(mslog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}), nil
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mslog.Logger {
	logger, _ := NewLogger(DefaultLoggerConfig(name))
	return logger
}

func invalid(err error, key, value string) error {
	return mserror.Wrap(err, "invalid logger configuration").
		WithCode(mserror.CodeInvalidConfig).
		WithOperation("logging.NewLogger").
		WithDetail("key", key).
		WithDetail("value", value).
		WithMessage(mserror.CodeInvalidConfig.MessageKey(), map[string]interface{}{
			"Reason": key + " = " + value,
		})
}
