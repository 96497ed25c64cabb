// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder, the standard constructors and the
//              module shorthands.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14

package errors

import (
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Expected operation 'testmodule.test_op', got %q", err.Operation())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Build()

		expected := "testmodule.test_op failed"
		if err.Error() != expected {
			t.Errorf("Expected message '%s', got '%s'", expected, err.Error())
		}
		if err.Code() != CodeOperationFailed {
			t.Errorf("Expected code %s, got %s", CodeOperationFailed, err.Code())
		}
	})

	t.Run("auto-generated code per module", func(t *testing.T) {
		tests := []struct {
			module    string
			operation string
			want      string
		}{
			{ModuleStringx, "parse_url_parts", CodeStringxInvalidURL},
			{ModuleStringx, "shorten", CodeStringxInvalidFormat},
			{ModuleFilex, "format_size", CodeFilexOperationFailed},
			{ModuleConfig, "validate", CodeConfigInvalid},
		}
		for _, tt := range tests {
			err := NewErrorBuilder(tt.module).Operation(tt.operation).Build()
			if string(err.Code()) != tt.want {
				t.Errorf("%s.%s code = %s; want %s", tt.module, tt.operation, err.Code(), tt.want)
			}
		}
	})
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("stringx", "shorten", 42, "valid string")

	if err.Code() != CodeInvalidInput {
		t.Errorf("Expected code %s, got %s", CodeInvalidInput, err.Code())
	}
	details := err.Details()
	if details["input"] != 42 || details["expected"] != "valid string" {
		t.Errorf("unexpected details %v", details)
	}
}

func TestInvalidFormat(t *testing.T) {
	if got := InvalidFormat(ModuleStringx, "x", "url").Code(); got != CodeStringxInvalidFormat {
		t.Errorf("stringx format code = %s", got)
	}
	if got := InvalidFormat(ModuleTimex, "x", "seconds").Code(); got != CodeInvalidFormat {
		t.Errorf("timex format code = %s", got)
	}
}

func TestOperationFailed(t *testing.T) {
	cause := errors.New("disk full")
	err := OperationFailed(ModuleFilex, "write", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected error to wrap the cause")
	}
	if err.Severity() != mdwerror.SeverityHigh {
		t.Errorf("Expected high severity, got %v", err.Severity())
	}
	if !strings.Contains(err.Error(), "filex.write operation failed") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed("config", "max_path_len", -1, "must be positive")

	want := "config.validate_max_path_len: validation failed for field max_path_len: must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q; want %q", err.Error(), want)
	}
	if err.Code() != "CONFIG_VALIDATION_FAILED" {
		t.Errorf("Code() = %s", err.Code())
	}
	if err.Severity() != mdwerror.SeverityLow {
		t.Errorf("Severity() = %v", err.Severity())
	}
}

func TestOutOfRange(t *testing.T) {
	err := OutOfRange(ModuleConfig, "validate_max_path_len", 0, 1, 4096)
	if !strings.HasPrefix(err.Error(), "validation failed:") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Details()["max"] != 4096 {
		t.Errorf("max detail = %v", err.Details()["max"])
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound(ModuleConfig, "load_from_env", "textkit.toml")
	if err.Code() != CodeNotFound {
		t.Errorf("Code() = %s", err.Code())
	}
}

func TestExtractHelpers(t *testing.T) {
	err := I18nUnknownLocale("xx")

	if ExtractModule(err) != ModuleI18n {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
	if ExtractOperation(err) != "load_catalog" {
		t.Errorf("ExtractOperation() = %q", ExtractOperation(err))
	}
	if !IsModuleOperation(err, ModuleI18n, "load_catalog") {
		t.Error("IsModuleOperation() = false")
	}
	if !IsModuleError(err, ModuleI18n) || IsModuleError(err, ModuleConfig) {
		t.Error("IsModuleError() mismatch")
	}
	if !IsCode(err, CodeI18nUnknownLocale) {
		t.Error("IsCode() = false")
	}

	plain := errors.New("plain")
	if ExtractDetails(plain) != nil || ExtractModule(plain) != "" || IsModuleError(plain, "") {
		t.Error("plain errors carry no module information")
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{15, false},
		{4096, false},
		{4097, true},
	}
	for _, tt := range tests {
		err := ValidateRange("config", "max_path_len", tt.value, 1, 4096)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRange(%d) error = %v; wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestModuleShorthands(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name     string
		err      *mdwerror.Error
		code     string
		severity mdwerror.Severity
	}{
		{"stringx invalid url", StringxInvalidURL("parse_url_parts", "a b"), CodeStringxInvalidURL, mdwerror.SeverityLow},
		{"stringx invalid input", StringxInvalidInput("linkify", -1, "max-path >= 0"), CodeInvalidInput, mdwerror.SeverityLow},
		{"filex size", FilexInvalidSize(-1), CodeFilexInvalidSize, mdwerror.SeverityLow},
		{"filex read", FilexReadFailed("a.txt", cause), CodeFilexReadFailed, mdwerror.SeverityHigh},
		{"filex write", FilexWriteFailed("a.txt", cause), CodeFilexWriteFailed, mdwerror.SeverityHigh},
		{"timex duration", TimexInvalidDuration(-5), CodeTimexInvalidDuration, mdwerror.SeverityLow},
		{"validationx rule", ValidationxRuleFailed("email", "to", "x", "no @"), CodeValidationxRuleFailed, mdwerror.SeverityLow},
		{"i18n catalog", I18nCatalogInvalid("de", cause), CodeI18nCatalogInvalid, mdwerror.SeverityCritical},
		{"config parse", ConfigParseError("a.toml", cause), CodeConfigParseError, mdwerror.SeverityHigh},
		{"config read", ConfigReadFailed("a.toml", cause), CodeConfigReadFailed, mdwerror.SeverityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.err.Code()) != tt.code {
				t.Errorf("Code() = %s; want %s", tt.err.Code(), tt.code)
			}
			if tt.err.Severity() != tt.severity {
				t.Errorf("Severity() = %v; want %v", tt.err.Severity(), tt.severity)
			}
		})
	}
}
