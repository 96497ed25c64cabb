// File: timer.go
// Title: Operation Timer
// Description: Measures an operation and logs its duration when stopped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer stops
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs the elapsed time at debug level. Only the first call logs.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true

	if !t.logger.IsLevelEnabled(LevelDebug) {
		return elapsed
	}
	entry := NewEntry(LevelDebug, t.operation+" completed")
	entry.Logger = t.logger.name
	entry.CorrelationID = t.logger.correlationID
	entry.Duration = elapsed
	entry.WithFields(t.logger.contextFields)
	entry.WithFields(t.fields)
	t.logger.write(entry)
	return elapsed
}
