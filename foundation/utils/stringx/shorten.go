// File: shorten.go
// Title: Code-Point Truncation
// Description: Middle elision (Shorten) and truncation at the next space
//              (CutOnSpace). Lengths and positions count code points.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-29
// Modified: 2026-10-05
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation
// - 2026-10-05 v0.1.1: Clamp negative lengths

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shorten cuts the middle out of text so that the result is at most maxLen
// code points long, joining the kept head and tail with glue. Whitespace at
// the seam is trimmed. If maxLen does not exceed the length of glue it is
// widened by that length. Text that already fits is returned unchanged.
//
//	Shorten("/a/very/long/path/that/exceeds", 15, "...") // "/a/ver...xceeds"
func Shorten(text string, maxLen int, glue string) string {
	glueLen := utf8.RuneCountInString(glue)
	if maxLen <= glueLen {
		maxLen += glueLen
	}

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	budget := maxLen - glueLen
	if budget < 0 {
		budget = 0
	}
	left := (budget + 1) / 2
	right := budget - left

	head := strings.TrimRightFunc(string(runes[:left]), unicode.IsSpace)
	tail := strings.TrimLeftFunc(string(runes[len(runes)-right:]), unicode.IsSpace)
	return head + glue + tail
}

// CutOnSpace truncates text at the first space (U+0020) found at or after
// code point n and adds appendix. Without such a space the whole text is
// kept and appendix is still added. Text of at most n code points is
// returned unchanged. A negative n counts as zero.
func CutOnSpace(text string, n int, appendix string) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}

	pos := 0
	for i, r := range text {
		if pos >= n && r == ' ' {
			return text[:i] + appendix
		}
		pos++
	}
	return text + appendix
}
