// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent error builder, standard constructors and per-module
//              shorthands used by every textkit package.
// Author: msto63
// Version: v0.2.1
// Created: 2026-09-28
// Modified: 2026-10-16
//
// Change History:
// - 2026-09-28 v0.1.0: Initial builder and constructors
// - 2026-10-14 v0.2.0: i18n and config shorthands
// - 2026-10-16 v0.2.1: Drop unused ValidateRequired and StringxValidationError

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      string

	severitySet bool
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	// without an explicit severity the code decides it
	err = err.WithCode(mdwerror.Code(eb.code)).WithDetails(eb.details)
	if eb.severitySet {
		err = err.WithSeverity(eb.severity)
	}
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	return err
}

// =============================================================================
// STANDARD ERROR CONSTRUCTORS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(getFormatErrorCode(module)).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(getOperationErrorCode(module)).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason)).
		Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module))).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item not found in %s.%s", module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := err.(*mdwerror.Error); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// ValidateRange validates that an integer value is within [min, max]
func ValidateRange(module, field string, value, min, max int) error {
	if value < min || value > max {
		return OutOfRange(module, "validate_"+field, value, min, max)
	}
	return nil
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// StringxInvalidInput reports an argument a stringx operation cannot use
func StringxInvalidInput(operation string, input interface{}, expected string) *mdwerror.Error {
	return InvalidInput(ModuleStringx, operation, input, expected)
}

// StringxInvalidURL reports a string that the URL grammar rejects
func StringxInvalidURL(operation, input string) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Message(fmt.Sprintf("stringx.%s: not a url: %q", operation, input)).
		Code(CodeStringxInvalidURL).
		Detail("input", input).
		Severity(mdwerror.SeverityLow).
		Build()
}

func FilexInvalidSize(size int64) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation("format_size").
		Message(fmt.Sprintf("filex.format_size: negative size %d", size)).
		Code(CodeFilexInvalidSize).
		Detail("size", size).
		Severity(mdwerror.SeverityLow).
		Build()
}

// FilexReadFailed wraps an I/O error raised while reading path
func FilexReadFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation("read").
		Message(fmt.Sprintf("cannot read %s", path)).
		Cause(cause).
		Code(CodeFilexReadFailed).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

func FilexWriteFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation("write").
		Message(fmt.Sprintf("cannot write %s", path)).
		Cause(cause).
		Code(CodeFilexWriteFailed).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

func TimexInvalidDuration(seconds int64) *mdwerror.Error {
	return NewErrorBuilder(ModuleTimex).
		Operation("format_seconds").
		Message(fmt.Sprintf("timex.format_seconds: negative duration %d", seconds)).
		Code(CodeTimexInvalidDuration).
		Detail("seconds", seconds).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ValidationxRuleFailed reports a failed plausibility rule
func ValidationxRuleFailed(rule, field string, value interface{}, message string) *mdwerror.Error {
	return NewErrorBuilder(ModuleValidationx).
		Operation(rule).
		Message(fmt.Sprintf("validationx.%s: %s: %s", rule, field, message)).
		Code(CodeValidationxRuleFailed).
		Detail("field", field).
		Detail("value", value).
		Severity(mdwerror.SeverityLow).
		Build()
}

// I18nUnknownLocale reports a locale without an embedded catalog
func I18nUnknownLocale(locale string) *mdwerror.Error {
	return NewErrorBuilder(ModuleI18n).
		Operation("load_catalog").
		Message(fmt.Sprintf("i18n: unknown locale %q", locale)).
		Code(CodeI18nUnknownLocale).
		Detail("locale", locale).
		Severity(mdwerror.SeverityLow).
		Build()
}

func I18nCatalogInvalid(locale string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleI18n).
		Operation("load_catalog").
		Message(fmt.Sprintf("i18n: catalog %q is invalid", locale)).
		Cause(cause).
		Code(CodeI18nCatalogInvalid).
		Detail("locale", locale).
		Severity(mdwerror.SeverityCritical).
		Build()
}

// ConfigParseError wraps a decoder failure for a configuration file
func ConfigParseError(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Message(fmt.Sprintf("failed to parse config file %s", path)).
		Cause(cause).
		Code(CodeConfigParseError).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

func ConfigReadFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Message(fmt.Sprintf("failed to read config file %s", path)).
		Cause(cause).
		Code(CodeConfigReadFailed).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ConfigInvalid wraps the failed rules of a configuration check
func ConfigInvalid(cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Message("invalid configuration").
		Cause(cause).
		Code(CodeConfigInvalid).
		Severity(mdwerror.SeverityHigh).
		Build()
}
