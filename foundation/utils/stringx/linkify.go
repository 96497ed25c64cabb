// File: linkify.go
// Title: URL Detection and Substitution in Prose
// Description: Finds URL-shaped spans in plain text and replaces each one
//              through a caller-supplied function, by default an HTML anchor.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-01 v0.1.0: ParseURLs with the default anchor
// - 2026-10-12 v0.2.0: FindURLs, AnchorTransform and anchor attributes

package stringx

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TransformFunc maps a matched span to its replacement text
type TransformFunc func(match string) string

// URLSpan is a URL-shaped substring found by FindURLs. Start and End are
// byte offsets into the scanned text.
type URLSpan struct {
	Text   string
	Start  int
	End    int
	Scheme string // without "://"
	Host   string
	Path   string // starts with "/" when present
}

// FindURLs returns the URL-shaped spans of text in order. The scanning
// grammar is stricter than IsURL:
//
//   - a span starts at the beginning of text or right after whitespace
//   - an optional scheme "://" follows
//   - the host is a run of word characters, dots and hyphens that contains
//     a dot followed by at least one word character
//   - an optional path is "/" plus non-space characters, not ending in
//     '.', '!', '?' or ','
//   - the span must not be followed by '@', and must be followed by
//     whitespace, '.', '!', '?', ',' or the end of text
//
// So "localhost" is a URL for IsURL but is never found here, and the
// address in "me@example.com" is skipped.
func FindURLs(text string) []URLSpan {
	var spans []URLSpan

	afterSpace := true
	for p := 0; p < len(text); {
		if afterSpace {
			if span, ok := matchURLAt(text, p); ok {
				spans = append(spans, span)
				// the last rune of a span is never a space
				p, afterSpace = span.End, false
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(text[p:])
		afterSpace = unicode.IsSpace(r)
		p += size
	}
	return spans
}

// matchURLAt tries to match one span starting exactly at p
func matchURLAt(text string, p int) (URLSpan, bool) {
	host := p
	n := schemeLen(text[p:])
	if n > 0 {
		host = p + n
	}

	// host candidates end after a dot followed by a word run; the longest
	// candidate that leads to a valid ending wins
	var dots []int
	for i := host; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '.' {
			dots = append(dots, i)
		} else if !isWord(r) && r != '-' {
			break
		}
		i += size
	}

	for d := len(dots) - 1; d >= 0; d-- {
		dot := dots[d]
		if dot == host {
			continue
		}
		hostEnd := wordRunEnd(text, dot+1)
		if hostEnd == dot+1 {
			continue
		}

		if hostEnd < len(text) && text[hostEnd] == '/' {
			end := pathEnd(text, hostEnd+1)
			if end > hostEnd+1 {
				return newSpan(text, p, n, hostEnd, end), true
			}
			continue
		}
		if endsSpan(text, hostEnd) {
			return newSpan(text, p, n, hostEnd, hostEnd), true
		}
	}
	return URLSpan{}, false
}

func newSpan(text string, start, schemeBytes, hostEnd, end int) URLSpan {
	s := URLSpan{
		Text:  text[start:end],
		Start: start,
		End:   end,
		Host:  text[start+schemeBytes : hostEnd],
		Path:  text[hostEnd:end],
	}
	if schemeBytes > 0 {
		s.Scheme = text[start : start+schemeBytes-3]
	}
	return s
}

func wordRunEnd(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWord(r) {
			break
		}
		i += size
	}
	return i
}

// pathEnd returns the end of the path body starting at i: the non-space
// run with trailing sentence punctuation removed.
func pathEnd(text string, i int) int {
	end := i
	for j := i; j < len(text); {
		r, size := utf8.DecodeRuneInString(text[j:])
		if unicode.IsSpace(r) {
			break
		}
		j += size
		if !isSentencePunct(r) {
			end = j
		}
	}
	return end
}

// endsSpan reports whether a span may end right before position i
func endsSpan(text string, i int) bool {
	if i == len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsSpace(r) || isSentencePunct(r)
}

func isSentencePunct(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == ','
}

// ParseURLs replaces every span found by FindURLs with transform(span) and
// keeps all other text as it is. A nil transform selects DefaultTransform.
// The text is scanned as prose; HTML markup gets no special treatment.
func ParseURLs(text string, transform TransformFunc) string {
	if transform == nil {
		transform = DefaultTransform
	}

	spans := FindURLs(text)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 32*len(spans))
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.Start])
		b.WriteString(transform(s.Text))
		last = s.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// AnchorOptions configures AnchorTransform. Zero values select the
// package defaults; empty attributes are omitted.
type AnchorOptions struct {
	Scheme     string
	MaxPathLen int
	Target     string
	Rel        string
	Class      string
}

// AnchorTransform returns a TransformFunc that renders a match as
//
//	<a href="NormalizeURL(match)">BeautifyURL(match)</a>
//
// with both values HTML-escaped. Matches that fail IsURL are returned
// unchanged.
func AnchorTransform(opts AnchorOptions) TransformFunc {
	maxPath := opts.MaxPathLen
	if maxPath == 0 {
		maxPath = DefaultMaxPathLen
	}

	var attrs strings.Builder
	for _, a := range [][2]string{{"target", opts.Target}, {"rel", opts.Rel}, {"class", opts.Class}} {
		if a[1] != "" {
			attrs.WriteString(" " + a[0] + `="` + html.EscapeString(a[1]) + `"`)
		}
	}
	extra := attrs.String()

	return func(match string) string {
		if !IsURL(match) {
			return match
		}
		href, _ := NormalizeURL(match, opts.Scheme)
		label, _ := BeautifyURL(match, maxPath)
		return `<a href="` + html.EscapeString(href) + `"` + extra + `>` + html.EscapeString(label) + `</a>`
	}
}

var defaultAnchor = AnchorTransform(AnchorOptions{})

// DefaultTransform renders a match as an HTML anchor with the default
// scheme and path length.
func DefaultTransform(match string) string {
	return defaultAnchor(match)
}
