// File: validationx.go
// Title: Plausibility Rules
// Description: Concrete validators built on foundation/core/validation:
//              presence, length, range and set membership checks plus the
//              e-mail, phone, URL and locale rules used by the command line
//              and the configuration loader.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-06 v0.1.0: IsEmail, IsPhone and the basic rules
// - 2026-10-14 v0.2.0: URL and locale rules, structured errors

package validationx

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/i18n"
	"github.com/msto63/textkit/foundation/core/validation"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// Phone length bounds used by IsPhoneDefault, counted after stripping
// formatting characters
const (
	DefaultPhoneMinLen = 7
	DefaultPhoneMaxLen = 11
)

var (
	emailPattern     = regexp.MustCompile(`^[\p{L}\p{N}_.\-]+@[\p{L}\p{N}_.\-]+$`)
	phoneFormatChars = regexp.MustCompile(`[\s+()\-]`)
	schemePattern    = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// IsEmail reports whether s looks like local@domain, both parts made of
// word characters, dots and hyphens. It is a plausibility check only.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPhone strips whitespace, "+", "(", ")" and "-" from s and reports
// whether between minLen and maxLen code points remain.
func IsPhone(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(phoneFormatChars.ReplaceAllString(s, ""))
	return n >= minLen && n <= maxLen
}

// IsPhoneDefault is IsPhone with DefaultPhoneMinLen and DefaultPhoneMaxLen
func IsPhoneDefault(s string) bool {
	return IsPhone(s, DefaultPhoneMinLen, DefaultPhoneMaxLen)
}

// ValidateEmail is IsEmail returning a VALIDATIONX_RULE_FAILED error
func ValidateEmail(s string) error {
	if IsEmail(s) {
		return nil
	}
	return mdwerrors.ValidationxRuleFailed("email", "email", s, "not an e-mail address")
}

// ValidatePhone is IsPhone returning a VALIDATIONX_RULE_FAILED error
func ValidatePhone(s string, minLen, maxLen int) error {
	if IsPhone(s, minLen, maxLen) {
		return nil
	}
	return mdwerrors.ValidationxRuleFailed("phone", "phone", s,
		fmt.Sprintf("not a phone number of %d to %d digits", minLen, maxLen))
}

func stringValue(value interface{}) (string, validation.ValidationResult, bool) {
	s, ok := value.(string)
	if !ok {
		return "", validation.NewValidationError(validation.CodeType, "value must be a string"), false
	}
	return s, validation.NewValidationResult(), true
}

// Required fails for nil, empty and blank values
var Required validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	if validation.IsNilOrEmpty(value) {
		return validation.NewValidationError(validation.CodeRequired, "value is required")
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return validation.NewValidationError(validation.CodeRequired, "value is required")
	}
	return validation.NewValidationResult()
}

// Optional runs validator only for non-empty values
func Optional(validator validation.Validator) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		if validation.IsNilOrEmpty(value) {
			return validation.NewValidationResult()
		}
		return validator.Validate(value)
	}
}

// MaxLength limits the length of strings (in code points) and collections
func MaxLength(max int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		if n := validation.GetValueLength(value); n < 0 || n > max {
			return validation.NewValidationError(validation.CodeLength,
				fmt.Sprintf("length must be at most %d", max))
		}
		return validation.NewValidationResult()
	}
}

// Range checks that an integer lies within [min, max]
func Range(min, max int64) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		n, err := validation.ConvertToInt64(value)
		if err != nil {
			return validation.NewValidationError(validation.CodeType, err.Error())
		}
		if n < min || n > max {
			result := validation.NewValidationError(validation.CodeRange,
				fmt.Sprintf("must be between %d and %d", min, max))
			result.Errors[0].Expected = fmt.Sprintf("[%d, %d]", min, max)
			return result
		}
		return validation.NewValidationResult()
	}
}

// OneOf accepts strings from allowed, compared case-insensitively
func OneOf(allowed ...string) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		s, result, ok := stringValue(value)
		if !ok {
			return result
		}
		for _, a := range allowed {
			if strings.EqualFold(s, a) {
				return validation.NewValidationResult()
			}
		}
		result = validation.NewValidationError(validation.CodeOneOf,
			fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
		result.Errors[0].Expected = allowed
		return result
	}
}

// Email applies IsEmail
var Email validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	s, result, ok := stringValue(value)
	if !ok {
		return result
	}
	if !IsEmail(s) {
		return validation.NewValidationError(validation.CodeEmail, "must be an e-mail address")
	}
	return validation.NewValidationResult()
}

// Phone applies IsPhone with the given bounds
func Phone(minLen, maxLen int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		s, result, ok := stringValue(value)
		if !ok {
			return result
		}
		if !IsPhone(s, minLen, maxLen) {
			return validation.NewValidationError(validation.CodePhoneNumber,
				fmt.Sprintf("must have %d to %d digits", minLen, maxLen))
		}
		return validation.NewValidationResult()
	}
}

// URL applies stringx.IsURL
var URL validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	s, result, ok := stringValue(value)
	if !ok {
		return result
	}
	if !stringx.IsURL(s) {
		return validation.NewValidationError(validation.CodeURL, "must be a URL")
	}
	return validation.NewValidationResult()
}

// Scheme accepts URL scheme names: ASCII letters and digits
var Scheme validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	s, result, ok := stringValue(value)
	if !ok {
		return result
	}
	if !schemePattern.MatchString(s) {
		return validation.NewValidationError(validation.CodeFormat, "must be letters and digits only")
	}
	return validation.NewValidationResult()
}

// Locale accepts locales that have a unit catalog
var Locale validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	s, result, ok := stringValue(value)
	if !ok {
		return result
	}
	if _, err := i18n.LoadCatalog(s); err != nil {
		result := validation.NewValidationError(validation.CodeLocale, "no catalog for locale "+s)
		result.Errors[0].Expected = i18n.Locales()
		return result
	}
	return validation.NewValidationResult()
}
