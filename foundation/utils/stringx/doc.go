// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx shapes short strings for display: code-point
// truncation, URL detection and labelling, first-letter casing,
// joining and Russian transliteration.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-29 v0.1.0: Initial package documentation
// - 2026-10-12 v0.2.0: Document the two URL grammars

// Package stringx shapes short strings for display.
//
// # Truncation
//
// Shorten elides the middle of a string and CutOnSpace cuts at the next
// space. Both count Unicode code points, never bytes, so Cyrillic or
// accented input is never split inside a character:
//
//	stringx.Shorten("Hello, world!", 5, stringx.DefaultGlue)  // "H...!"
//	stringx.CutOnSpace("The quick brown fox", 6, "...")        // "The quick..."
//
// # URLs
//
// Two grammars are in use. IsURL, NormalizeURL, BeautifyURL and
// ParseURLParts accept any token of the form
//
//	[scheme://]host[/path]
//
// including single words such as "localhost". FindURLs and ParseURLs scan
// prose and are stricter: a span must start the text or follow whitespace,
// its host must contain a dot, and it must end before whitespace, sentence
// punctuation or the end of the text. An address such as me@example.com is
// never linked.
//
//	stringx.ParseURLs("Visit http://example.com/page. Thanks.", nil)
//	// Visit <a href="http://example.com/page">example.com/page</a>. Thanks.
//
// The replacement is pluggable through TransformFunc; AnchorTransform builds
// HTML anchors with optional target, rel and class attributes. Everything
// written into markup is HTML-escaped.
//
// # Case, joining and transliteration
//
// UcFirst, LcFirst, UcWords and LcWords change the first letter of a string
// or of its words. Their guard flags leave all-lower or all-upper input
// untouched. Casing applies the same helpers with language specific rules
// from golang.org/x/text/cases. Glue joins two path-like strings with
// exactly one separator at the seam. Translit maps Russian Cyrillic to
// Latin letters.
//
// # Errors
//
// Functions that reject input return or panic with errors from
// foundation/core/errors carrying the STRINGX_INVALID_URL code.
//
// All functions are safe for concurrent use.
package stringx
