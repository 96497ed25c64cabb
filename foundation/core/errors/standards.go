// File: standards.go
// Title: Error Standards for textkit Modules
// Description: Module identifiers, module-scoped error codes and the helpers
//              that pick a code for a module and operation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial module and code table
// - 2026-10-14 v0.2.0: Added i18n and config modules

package errors

import (
	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx     = "stringx"
	ModuleFilex       = "filex"
	ModuleTimex       = "timex"
	ModuleValidationx = "validationx"
	ModuleI18n        = "i18n"
	ModuleConfig      = "config"
	ModuleCLI         = "cli"
)

// Standardized error codes
const (
	// Common error codes
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// stringx
	CodeStringxInvalidFormat = "STRINGX_INVALID_FORMAT"
	CodeStringxInvalidURL    = "STRINGX_INVALID_URL"

	// filex
	CodeFilexInvalidSize     = "FILEX_INVALID_SIZE"
	CodeFilexReadFailed      = "FILEX_READ_FAILED"
	CodeFilexWriteFailed     = "FILEX_WRITE_FAILED"
	CodeFilexOperationFailed = "FILEX_OPERATION_FAILED"

	// timex
	CodeTimexInvalidDuration = "TIMEX_INVALID_DURATION"
	CodeTimexOperationFailed = "TIMEX_OPERATION_FAILED"

	// validationx
	CodeValidationxRuleFailed = "VALIDATIONX_RULE_FAILED"

	// i18n
	CodeI18nUnknownLocale  = "I18N_UNKNOWN_LOCALE"
	CodeI18nCatalogInvalid = "I18N_CATALOG_INVALID"

	// config
	CodeConfigParseError = "CONFIG_PARSE_ERROR"
	CodeConfigReadFailed = "CONFIG_READ_FAILED"
	CodeConfigInvalid    = "CONFIG_INVALID"
)

// getModuleErrorCode picks a code when the builder was given none
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleStringx:
		if operation == "parse_url_parts" || operation == "normalize_url" || operation == "beautify_url" {
			return CodeStringxInvalidURL
		}
		return CodeStringxInvalidFormat
	case ModuleFilex:
		return CodeFilexOperationFailed
	case ModuleTimex:
		return CodeTimexOperationFailed
	case ModuleValidationx:
		return CodeValidationxRuleFailed
	case ModuleConfig:
		return CodeConfigInvalid
	default:
		return CodeOperationFailed
	}
}

func getFormatErrorCode(module string) string {
	switch module {
	case ModuleStringx:
		return CodeStringxInvalidFormat
	default:
		return CodeInvalidFormat
	}
}

func getOperationErrorCode(module string) string {
	switch module {
	case ModuleFilex:
		return CodeFilexOperationFailed
	case ModuleTimex:
		return CodeTimexOperationFailed
	default:
		return CodeOperationFailed
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module && module != ""
}

// IsCode reports whether err is a structured error carrying the given module code
func IsCode(err error, code string) bool {
	return mdwerror.HasCode(err, mdwerror.Code(code))
}
