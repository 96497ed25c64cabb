// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels attached to errors. The logger uses them
//              to pick the level an error is reported at.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers bad user input and validation misses
	SeverityLow Severity = iota

	// SeverityMedium covers recoverable failures such as a missing optional file
	SeverityMedium

	// SeverityHigh covers failures that abort the current command
	SeverityHigh

	// SeverityCritical is reserved for corrupted embedded resources
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeCatalogInvalid:
		return SeverityCritical
	case CodeReadFailed, CodeWriteFailed, CodeConfigError:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeInvalidFormat,
		CodeValueOutOfRange, CodeUnknownLocale:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
