// Package log provides structured logging for textkit.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with fields, correlation IDs and JSON, text or
// logfmt output. Loggers are values: every With* call returns a
// new logger and leaves the receiver untouched. Clones share one
// output lock, so concurrent writes never interleave.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-28
// Modified: 2026-10-09
//
// # Usage
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON})
//	logger = logger.WithCorrelationID(id).WithName("linkify")
//	logger.Info("rendered", log.Field("spans", n))
//
// Structured errors are logged with LogError, which maps severity to level:
// low to info, medium to warn, high and critical to error.
package log
