// File: shorten_test.go
// Title: Truncation Tests
// Description: Tests for Shorten and CutOnSpace, including the length bound
//              and code-point handling.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-29
// Modified: 2026-10-05

package stringx

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestShorten(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		glue   string
		want   string
	}{
		{"fits", "Hello, world!", 20, DefaultGlue, "Hello, world!"},
		{"exact fit", "Hello", 5, DefaultGlue, "Hello"},
		{"odd budget keeps more on the left", "Hello, world!", 6, DefaultGlue, "He...!"},
		{"even budget", "Hello, world!", 5, DefaultGlue, "H...!"},
		{"path", "/a/very/long/path/that/exceeds/limit", 15, DefaultGlue, "/a/ver.../limit"},
		{"cyrillic counts code points", "привет мир как дела", 3, DefaultGlue, "пр...а"},
		{"whitespace at the seam is trimmed", "a   b   c   d   e", 7, DefaultGlue, "a...e"},
		{"single rune glue", "abcdef", 2, "…", "a…"},
		{"maxLen equal to glue is widened", "abcdefghij", 3, DefaultGlue, "ab...j"},
		{"zero maxLen", "abcdefghij", 0, DefaultGlue, "..."},
		{"negative maxLen", "abcdefghij", -5, DefaultGlue, "..."},
		{"empty glue", "abcdefghij", 4, "", "abij"},
		{"empty text", "", 0, DefaultGlue, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shorten(tt.text, tt.maxLen, tt.glue)
			if got != tt.want {
				t.Errorf("Shorten(%q, %d, %q) = %q; want %q", tt.text, tt.maxLen, tt.glue, got, tt.want)
			}
		})
	}
}

func TestShortenLengthBound(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"съешь же ещё этих мягких французских булок",
		strings.Repeat("ab ", 40),
	}
	glues := []string{DefaultGlue, "…", " ~ "}

	for _, text := range texts {
		for _, glue := range glues {
			g := utf8.RuneCountInString(glue)
			for m := 2*g + 1; m < utf8.RuneCountInString(text); m++ {
				got := Shorten(text, m, glue)
				if n := utf8.RuneCountInString(got); n > m {
					t.Fatalf("Shorten(%q, %d, %q) has %d code points", text, m, glue, n)
				}
				if !strings.Contains(got, glue) {
					t.Fatalf("Shorten(%q, %d, %q) = %q lacks the glue", text, m, glue, got)
				}
			}
		}
	}
}

func TestShortenNoOpWhenFitting(t *testing.T) {
	for _, text := range []string{"", "a", "abc", "привет"} {
		n := utf8.RuneCountInString(text)
		for m := n; m < n+5; m++ {
			if got := Shorten(text, m+3, DefaultGlue); got != text {
				t.Errorf("Shorten(%q, %d) = %q; want unchanged", text, m+3, got)
			}
		}
	}
}

func TestCutOnSpace(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		n        int
		appendix string
		want     string
	}{
		{"fits", "short text", 20, DefaultAppend, "short text"},
		{"exact length", "short text", 10, DefaultAppend, "short text"},
		{"cut at next space", "The quick brown fox", 6, DefaultAppend, "The quick..."},
		{"space right at n", "The quick brown fox", 3, DefaultAppend, "The..."},
		{"no space after n", "The quick brown fox", 16, DefaultAppend, "The quick brown fox..."},
		{"no space at all", "abcdefgh", 3, DefaultAppend, "abcdefgh..."},
		{"code points not bytes", "привет мир и друзья", 8, "…", "привет мир…"},
		{"only U+0020 counts", "one\ttwo three", 2, "!", "one\ttwo!"},
		{"negative n", "a b", -4, ".", "a."},
		{"empty appendix", "The quick brown", 5, "", "The quick"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CutOnSpace(tt.text, tt.n, tt.appendix)
			if got != tt.want {
				t.Errorf("CutOnSpace(%q, %d, %q) = %q; want %q", tt.text, tt.n, tt.appendix, got, tt.want)
			}
		})
	}
}
