// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, derivation and error logging.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-28
// Modified: 2026-10-09

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: buf}), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("bad JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("unexpected levels %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestWithDerivationIsImmutable(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo)
	derived := base.WithName("cli").WithCorrelationID("abc").WithField("cmd", "linkify")

	base.Info("base")
	derived.Info("derived", Field("n", 1))

	lines := decodeLines(t, buf)
	if _, ok := lines[0]["cmd"]; ok {
		t.Error("base logger must not see derived fields")
	}
	if lines[1]["cmd"] != "linkify" || lines[1]["correlation_id"] != "abc" || lines[1]["logger"] != "cli" {
		t.Errorf("derived context missing: %v", lines[1])
	}
	if lines[1]["n"] != float64(1) {
		t.Errorf("per-call field missing: %v", lines[1])
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low", mdwerror.New("x").WithSeverity(mdwerror.SeverityLow), "info"},
		{"medium", mdwerror.New("x").WithSeverity(mdwerror.SeverityMedium), "warn"},
		{"high", mdwerror.New("x").WithSeverity(mdwerror.SeverityHigh), "error"},
		{"critical", mdwerror.New("x").WithSeverity(mdwerror.SeverityCritical), "error"},
		{"plain", errors.New("x"), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)
			logger.LogError(tt.err)
			lines := decodeLines(t, buf)
			if len(lines) != 1 || lines[0]["level"] != tt.wantLevel {
				t.Errorf("LogError level = %v; want %s", lines, tt.wantLevel)
			}
		})
	}
}

func TestLogErrorFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	err := mdwerror.New("cannot read").
		WithCode(mdwerror.CodeReadFailed).
		WithOperation("filex.read").
		WithDetail("path", "a.txt")

	logger.LogError(err)
	logger.LogError(nil)

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line["error_code"] != "READ_FAILED" || line["error_operation"] != "filex.read" || line["error_path"] != "a.txt" {
		t.Errorf("unexpected fields %v", line)
	}
}

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := logger.WithCorrelationID("t1").StartTimer("render").WithField("bytes", 10)
	timer.Stop()
	timer.Stop()

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0]["message"] != "render completed" || lines[0]["correlation_id"] != "t1" {
		t.Errorf("unexpected timer line %v", lines[0])
	}
	if _, ok := lines[0]["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
}

func TestConcurrentWrites(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.WithField("i", i).Info("line")
		}(i)
	}
	wg.Wait()

	if n := len(decodeLines(t, buf)); n != 20 {
		t.Errorf("got %d lines, want 20", n)
	}
}

func TestDefaultLogger(t *testing.T) {
	prev := GetDefault()
	defer SetDefault(prev)

	logger, buf := newBufferLogger(LevelInfo)
	SetDefault(logger)
	SetDefault(nil)
	Info("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger not used: %q", buf.String())
	}
}
