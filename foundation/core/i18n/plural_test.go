// File: plural_test.go
// Title: Number Agreement Tests
// Description: Tests for CaseForNumber and the CLDR based plural helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-30
// Modified: 2026-10-14

package i18n

import (
	"testing"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

var days = [3]string{"день", "дня", "дней"}

func TestCaseForNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "дней"},
		{1, "день"},
		{2, "дня"},
		{4, "дня"},
		{5, "дней"},
		{10, "дней"},
		{11, "дней"},
		{12, "дней"},
		{14, "дней"},
		{19, "дней"},
		{20, "дней"},
		{21, "день"},
		{22, "дня"},
		{101, "день"},
		{111, "дней"},
		{1024, "дня"},
		{-1, "день"},
		{-12, "дней"},
		{-23, "дня"},
	}

	for _, tt := range tests {
		if got := CaseForNumber(tt.n, days); got != tt.want {
			t.Errorf("CaseForNumber(%d) = %q; want %q", tt.n, got, tt.want)
		}
	}
}

func TestPluralIndexMatchesCaseForNumber(t *testing.T) {
	forms := [3]string{"0", "1", "2"}
	for n := -250; n <= 250; n++ {
		want := CaseForNumber(n, forms)
		got := PluralIndex("ru", n)
		if forms[got] != want {
			t.Fatalf("PluralIndex(ru, %d) = %d; CaseForNumber picks %s", n, got, want)
		}
	}
}

func TestPluralIndex(t *testing.T) {
	tests := []struct {
		locale string
		n      int
		want   int
	}{
		{"en", 1, 0},
		{"en", 0, 1},
		{"en", 2, 1},
		{"en-GB", 1, 0},
		{"de", 1, 0},
		{"de", 7, 1},
		{"ru", 3, 1},
		{"ru-RU", 25, 2},
	}
	for _, tt := range tests {
		if got := PluralIndex(tt.locale, tt.n); got != tt.want {
			t.Errorf("PluralIndex(%q, %d) = %d; want %d", tt.locale, tt.n, got, tt.want)
		}
	}
}

func TestPlural(t *testing.T) {
	if got := Plural("en", 2, "file", "files"); got != "files" {
		t.Errorf("Plural(en, 2) = %q", got)
	}
	if got := Plural("ru", 5, "файл"); got != "файл" {
		t.Errorf("missing forms should fall back to the last one, got %q", got)
	}
	if got := Plural("ru", 5); got != "" {
		t.Errorf("no forms should give an empty string, got %q", got)
	}
}

func TestCategory(t *testing.T) {
	if got := Category(language.Russian, 21); got != plural.One {
		t.Errorf("Category(ru, 21) = %v; want One", got)
	}
	if got := Category(language.English, -1); got != plural.One {
		t.Errorf("Category(en, -1) = %v; want One", got)
	}
}
