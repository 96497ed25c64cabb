// File: plural.go
// Title: Grammatical Number Agreement
// Description: Chooses the word form that agrees with a number. CaseForNumber
//              implements the three-form Slavic rule directly; PluralIndex and
//              Plural use the CLDR cardinal rules shipped with x/text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-30
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-30 v0.1.0: CaseForNumber
// - 2026-10-14 v0.2.0: CLDR rules through golang.org/x/text/feature/plural

package i18n

import (
	"sort"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// CaseForNumber returns the form of a noun that agrees with n, given the
// forms for one, few and many (e.g. "день", "дня", "дней"). The sign of n is
// ignored.
func CaseForNumber(n int, forms [3]string) string {
	n %= 100
	if n < 0 {
		n = -n
	}
	if n > 10 && n < 20 {
		return forms[2]
	}

	switch m := n % 10; {
	case m == 1:
		return forms[0]
	case m >= 2 && m <= 4:
		return forms[1]
	default:
		return forms[2]
	}
}

// categoryRank orders CLDR categories the way form lists are written
var categoryRank = map[plural.Form]int{
	plural.Zero:  0,
	plural.One:   1,
	plural.Two:   2,
	plural.Few:   3,
	plural.Many:  4,
	plural.Other: 5,
}

// integer categories per base language, filled on first use
var integerCategories sync.Map

// categoriesFor returns the categories integers fall into for tag, in
// zero, one, two, few, many, other order.
func categoriesFor(tag language.Tag) []plural.Form {
	key := baseTag(tag)
	if cached, ok := integerCategories.Load(key.String()); ok {
		return cached.([]plural.Form)
	}

	seen := make(map[plural.Form]bool)
	for i := 0; i < 1000; i++ {
		seen[plural.Cardinal.MatchPlural(key, i, 0, 0, 0, 0)] = true
	}
	forms := make([]plural.Form, 0, len(seen))
	for f := range seen {
		forms = append(forms, f)
	}
	sort.Slice(forms, func(i, j int) bool {
		return categoryRank[forms[i]] < categoryRank[forms[j]]
	})

	actual, _ := integerCategories.LoadOrStore(key.String(), forms)
	return actual.([]plural.Form)
}

func baseTag(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	return language.Make(base.String())
}

// Category returns the CLDR cardinal category of the integer n in tag
func Category(tag language.Tag, n int) plural.Form {
	if n < 0 {
		n = -n
	}
	return plural.Cardinal.MatchPlural(baseTag(tag), n, 0, 0, 0, 0)
}

// PluralIndex returns the index of the form agreeing with n in a form list
// for locale. Form lists hold one entry per category that integers take in
// the locale, ordered zero, one, two, few, many, other. For Russian that is
// one, few, many; for English and German one, other.
func PluralIndex(locale string, n int) int {
	tag := language.Make(locale)
	cat := Category(tag, n)
	for i, f := range categoriesFor(tag) {
		if f == cat {
			return i
		}
	}
	return 0
}

// Plural returns the form agreeing with n. Missing trailing forms fall back
// to the last one given.
func Plural(locale string, n int, forms ...string) string {
	if len(forms) == 0 {
		return ""
	}
	idx := PluralIndex(locale, n)
	if idx >= len(forms) {
		idx = len(forms) - 1
	}
	return forms[idx]
}
