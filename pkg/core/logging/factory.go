// ============================================================================
// textkit - Text shaping toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command loggers from string
//              settings
// Author:      msto63
// Created:     2026-10-08
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "text", "json" or "logfmt" (default: text)
	Format string

	// Correlation ID attached to every entry; empty means none
	CorrelationID string

	// Output defaults to stderr so logs never mix with command output
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  mdwlog.DefaultLevel().String(),
		Format: mdwlog.FormatText.String(),
	}
}

// NewLogger creates a foundation logger from cfg. An unparsable level or
// format is replaced by its default; the logger is still returned together
// with an error naming the rejected value.
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, error) {
	var firstErr error

	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
		firstErr = mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "logger", cfg.Level,
			"trace, debug, info, warn, error or fatal")
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil && firstErr == nil {
		firstErr = mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "logger", cfg.Format,
			"text, json or logfmt")
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
	if cfg.CorrelationID != "" {
		logger = logger.WithCorrelationID(cfg.CorrelationID)
	}

	return logger, firstErr
}

// NewCommandLogger creates the logger for one command invocation with a
// fresh correlation ID
func NewCommandLogger(name, level, format string, output io.Writer) (*mdwlog.Logger, error) {
	cfg := DefaultLoggerConfig(name)
	if level != "" {
		cfg.Level = level
	}
	if format != "" {
		cfg.Format = format
	}
	cfg.Output = output
	cfg.CorrelationID = NewCorrelationID()
	return NewLogger(cfg)
}

// NewCorrelationID returns a random identifier for one invocation
func NewCorrelationID() string {
	return uuid.NewString()
}

// KeyValues converts alternating key-value pairs to mdwlog.Fields.
// Non-string keys and a trailing key without value are skipped.
func KeyValues(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
