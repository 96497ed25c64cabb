// File: glue.go
// Title: Affix and Joining Helpers
// Description: Prefix and suffix checks and Glue, which joins two strings so
//              that exactly one separator sits at the seam.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-03
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation

package stringx

import (
	"strings"
)

// StartsWith reports whether s begins with prefix
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// Glue joins s1 and s2 with exactly one sep at the seam, whether either
// side already carries it or not:
//
//	Glue("/", "var/log/", "/app.log") // "var/log/app.log"
//	Glue("/", "var/log", "app.log")   // "var/log/app.log"
//
// An empty sep simply concatenates.
func Glue(sep, s1, s2 string) string {
	if sep == "" {
		return s1 + s2
	}

	ends, starts := EndsWith(s1, sep), StartsWith(s2, sep)
	switch {
	case ends && starts:
		return s1[:len(s1)-len(sep)] + s2
	case ends || starts:
		return s1 + s2
	default:
		return s1 + sep + s2
	}
}

// GlueEnclosed is Glue that additionally makes sure the result starts with
// sep when leading is set and ends with sep when trailing is set.
func GlueEnclosed(sep, s1, s2 string, leading, trailing bool) string {
	s := Glue(sep, s1, s2)
	if sep == "" {
		return s
	}
	if leading && !StartsWith(s, sep) {
		s = sep + s
	}
	if trailing && !EndsWith(s, sep) {
		s += sep
	}
	return s
}
