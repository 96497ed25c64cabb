// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by textkit packages so callers can
//              classify failures without matching on message text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial code set
// - 2026-10-14 v0.2.0: Added locale and catalog codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// Localization
	CodeUnknownLocale  Code = "UNKNOWN_LOCALE"
	CodeCatalogInvalid Code = "CATALOG_INVALID"

	// I/O
	CodeReadFailed  Code = "READ_FAILED"
	CodeWriteFailed Code = "WRITE_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	case CodeUnknownLocale, CodeCatalogInvalid:
		return "localization"
	case CodeReadFailed, CodeWriteFailed:
		return "io"
	default:
		return "generic"
	}
}
