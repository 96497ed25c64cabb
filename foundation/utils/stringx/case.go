// File: case.go
// Title: First-Letter Case Helpers
// Description: Upper- or lower-case the first letter of a string or of each
//              word, with optional guards that leave all-lower or all-upper
//              input alone. Case mapping follows golang.org/x/text/cases.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation
// - 2026-10-11 v0.2.0: Language specific mapping through Casing

package stringx

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var wordPattern = regexp.MustCompile(`[` + wordClass + `]+`)

// Casing applies the case helpers with the mapping rules of one language,
// e.g. Turkish dotted and dotless i. The zero value uses language-neutral
// rules. A Casing is safe for concurrent use.
type Casing struct {
	tag language.Tag
}

// NewCasing returns a Casing for tag
func NewCasing(tag language.Tag) Casing {
	return Casing{tag: tag}
}

func (c Casing) upper(s string) string {
	return cases.Upper(c.tag).String(s)
}

func (c Casing) lower(s string) string {
	return cases.Lower(c.tag).String(s)
}

// IsLowercase reports whether lower-casing s leaves it unchanged
func (c Casing) IsLowercase(s string) bool {
	return c.lower(s) == s
}

// IsUppercase reports whether upper-casing s leaves it unchanged
func (c Casing) IsUppercase(s string) bool {
	return c.upper(s) == s
}

// UcFirst upper-cases the first code point of s. With ifNotLowercase set, a
// string that is entirely lower case is returned unchanged.
func (c Casing) UcFirst(s string, ifNotLowercase bool) string {
	if s == "" || (ifNotLowercase && c.IsLowercase(s)) {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return c.upper(s[:size]) + s[size:]
}

// LcFirst lower-cases the first code point of s. With ifNotUppercase set,
// a string that is entirely upper case is returned unchanged, so acronyms
// survive.
func (c Casing) LcFirst(s string, ifNotUppercase bool) string {
	if s == "" || (ifNotUppercase && c.IsUppercase(s)) {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return c.lower(s[:size]) + s[size:]
}

// UcWords applies UcFirst to each word of s, at most limit words; a
// negative limit means all words.
func (c Casing) UcWords(s string, limit int, ifNotLowercase bool) string {
	return eachWord(s, limit, func(w string) string { return c.UcFirst(w, ifNotLowercase) })
}

// LcWords applies LcFirst to each word of s, at most limit words; a
// negative limit means all words.
func (c Casing) LcWords(s string, limit int, ifNotUppercase bool) string {
	return eachWord(s, limit, func(w string) string { return c.LcFirst(w, ifNotUppercase) })
}

func eachWord(s string, limit int, fn func(string) string) string {
	locs := wordPattern.FindAllStringIndex(s, limit)
	if len(locs) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range locs {
		b.WriteString(s[last:loc[0]])
		b.WriteString(fn(s[loc[0]:loc[1]]))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

var neutral = Casing{tag: language.Und}

// IsLowercase reports whether s is entirely lower case
func IsLowercase(s string) bool { return neutral.IsLowercase(s) }

// IsUppercase reports whether s is entirely upper case
func IsUppercase(s string) bool { return neutral.IsUppercase(s) }

// UcFirst upper-cases the first code point of s with language-neutral rules
func UcFirst(s string, ifNotLowercase bool) string { return neutral.UcFirst(s, ifNotLowercase) }

// LcFirst lower-cases the first code point of s with language-neutral rules
func LcFirst(s string, ifNotUppercase bool) string { return neutral.LcFirst(s, ifNotUppercase) }

// UcWords upper-cases the first code point of up to limit words
func UcWords(s string, limit int, ifNotLowercase bool) string {
	return neutral.UcWords(s, limit, ifNotLowercase)
}

// LcWords lower-cases the first code point of up to limit words
func LcWords(s string, limit int, ifNotUppercase bool) string {
	return neutral.LcWords(s, limit, ifNotUppercase)
}
