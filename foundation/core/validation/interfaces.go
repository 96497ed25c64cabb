// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Validator interface, structured results and the shared rule
//              codes used by foundation/utils/validationx and the
//              configuration checks.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-06 v0.1.0: Initial validation interfaces
// - 2026-10-14 v0.2.0: Field-aware results, conversion to structured errors

package validation

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Standard validation rule codes
const (
	CodeRequired    = "VALIDATION_REQUIRED"
	CodeFormat      = "VALIDATION_FORMAT"
	CodeLength      = "VALIDATION_LENGTH"
	CodeRange       = "VALIDATION_RANGE"
	CodeType        = "VALIDATION_TYPE"
	CodeOneOf       = "VALIDATION_ONE_OF"
	CodeEmail       = "VALIDATION_EMAIL"
	CodeURL         = "VALIDATION_URL"
	CodePhoneNumber = "VALIDATION_PHONE"
	CodeLocale      = "VALIDATION_LOCALE"
)

// Validator checks a single value
type Validator interface {
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single failed rule
type ValidationError struct {
	Code     string      `json:"code"`
	Field    string      `json:"field,omitempty"`
	Message  string      `json:"message"`
	Value    interface{} `json:"value,omitempty"`
	Expected interface{} `json:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Message: message}},
	}
}

// NewValidationErrorWithField creates a validation error for a specific field
func NewValidationErrorWithField(code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{Code: code, Field: field, Message: message, Value: value},
		},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Message: message})
	return r
}

// AddFieldError adds a field-specific error to the validation result
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages, prefixed with the field if set
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		if err.Field != "" {
			messages[i] = err.Field + ": " + err.Message
		} else {
			messages[i] = err.Message
		}
	}
	return messages
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the result to a structured error, or nil if validation
// passed. The first failed rule supplies code, field and value; further
// failures are listed in the "all_messages" detail.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	if len(r.Errors) == 0 {
		return mdwerror.New("validation failed").WithCode(mdwerror.CodeValidationFailed)
	}

	first := r.Errors[0]
	msg := first.Message
	if first.Field != "" {
		msg = first.Field + ": " + msg
	}
	err := mdwerror.New(msg).
		WithSeverity(mdwerror.SeverityLow).
		WithCode(mdwerror.Code(first.Code))

	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("total_errors", len(r.Errors))
		err = err.WithDetail("all_messages", r.ErrorMessages())
	}
	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}
	return fmt.Sprintf("ValidationResult{valid: false, errors: %s}", strings.Join(r.ErrorMessages(), "; "))
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
