// File: stringx.go
// Title: Shared Definitions for String Shaping
// Description: Package defaults and small predicates shared by the
//              truncation, URL and case helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-29 v0.1.0: Initial defaults
// - 2026-10-12 v0.2.0: Word and space predicates shared with the scanner

package stringx

import (
	"unicode"
)

const (
	// DefaultGlue joins the two halves kept by Shorten
	DefaultGlue = "..."

	// DefaultAppend is added by CutOnSpace after a cut
	DefaultAppend = "..."

	// DefaultScheme is prepended by NormalizeURL to scheme-less URLs
	DefaultScheme = "http"

	// DefaultMaxPathLen limits the path shown by BeautifyURL
	DefaultMaxPathLen = 15
)

// isWord reports whether r belongs to a word: letters, digits and underscore
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FromBlankDefault returns s unless it is blank, in which case it returns
// defaultValue.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}
