// File: name.go
// Title: Safe File Names
// Description: Derives a portable ASCII file name from arbitrary text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package filex

import (
	"regexp"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

// SafeName turns s into a file name made of [A-Za-z0-9._-] only. Russian
// letters are transliterated, other letters lose their diacritics,
// whitespace runs become "-" and everything else is dropped:
//
//	SafeName("Отчёт за 2026 год.pdf") // "Otchet-za-2026-god.pdf"
//	SafeName("Crème brûlée.txt")      // "Creme-brulee.txt"
func SafeName(s string) string {
	s = stringx.Translit(s)

	// a transform.Transformer is stateful, so one chain per call
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	s = whitespaceRun.ReplaceAllString(s, "-")
	return unsafeChars.ReplaceAllString(s, "")
}
