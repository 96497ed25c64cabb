// File: url.go
// Title: URL Validation, Normalization and Display
// Description: A permissive grammar for scheme://host/path tokens and the
//              helpers built on it: NormalizeURL adds a missing scheme,
//              BeautifyURL produces a short readable label.
// Author: msto63
// Version: v0.2.1
// Created: 2026-09-30
// Modified: 2026-10-16
//
// Change History:
// - 2026-09-30 v0.1.0: IsURL, NormalizeURL, BeautifyURL
// - 2026-10-16 v0.2.1: BeautifyURL replaces invalid UTF-8 after decoding
// - 2026-10-12 v0.2.0: ParseURLParts and Must* variants

package stringx

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Character classes shared by the URL patterns. spaceClass is the Unicode
// White_Space set, the same set unicode.IsSpace accepts.
const (
	wordClass  = `\p{L}\p{N}_`
	spaceClass = `\t\n\v\f\r\x{85}\p{Z}`
)

// urlPattern is the validation grammar:
//
//	(scheme "://")? host ("/" path)?
//
// scheme is [a-z0-9]+ in any case, host is a single word character or a run
// of word characters, dots and hyphens that starts and ends with a word
// character, path is any run of non-space characters. Underscores are
// accepted in the host.
var urlPattern = regexp.MustCompile(
	`^(?i:[a-z0-9]+://)?` +
		`[` + wordClass + `](?:[` + wordClass + `.\-]*[` + wordClass + `])?` +
		`(?:/[^` + spaceClass + `]*)?$`)

// IsURL reports whether the whole of s matches the URL grammar. Single
// words such as "localhost" qualify.
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}

// schemeLen returns the byte length of a leading "scheme://" in s, or 0
func schemeLen(s string) int {
	i := 0
	for i < len(s) && isSchemeByte(s[i]) {
		i++
	}
	if i == 0 || !strings.HasPrefix(s[i:], "://") {
		return 0
	}
	return i + 3
}

func isSchemeByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// NormalizeURL prepends defaultScheme + "://" to s when s has no scheme.
// An empty defaultScheme selects DefaultScheme. If s is not a URL, ok is
// false.
func NormalizeURL(s, defaultScheme string) (string, bool) {
	if !IsURL(s) {
		return "", false
	}
	if schemeLen(s) > 0 {
		return s, true
	}
	if defaultScheme == "" {
		defaultScheme = DefaultScheme
	}
	return defaultScheme + "://" + s, true
}

// MustNormalizeURL is like NormalizeURL but panics if s is not a URL
func MustNormalizeURL(s, defaultScheme string) string {
	out, ok := NormalizeURL(s, defaultScheme)
	if !ok {
		panic(errors.StringxInvalidURL("normalize_url", s))
	}
	return out
}

// BeautifyURL turns s into a short label: percent escapes are decoded, the
// scheme is dropped and everything after the host is shortened to
// maxPathLen code points with DefaultGlue. A remainder of exactly one code
// point (usually a lone "/") is dropped. Escapes that decode to invalid
// UTF-8 become one U+FFFD per invalid run, whether or not the label is
// shortened. If s is not a URL, ok is false.
func BeautifyURL(s string, maxPathLen int) (string, bool) {
	if !IsURL(s) {
		return "", false
	}

	parts := splitURL(strings.ToValidUTF8(rawURLDecode(s), "\uFFFD"))
	rest := parts.Path
	if utf8.RuneCountInString(rest) == 1 {
		rest = ""
	} else {
		rest = Shorten(rest, maxPathLen, DefaultGlue)
	}
	return parts.Host + rest, true
}

// MustBeautifyURL is like BeautifyURL but panics if s is not a URL
func MustBeautifyURL(s string, maxPathLen int) string {
	out, ok := BeautifyURL(s, maxPathLen)
	if !ok {
		panic(errors.StringxInvalidURL("beautify_url", s))
	}
	return out
}

// URLParts is a URL split at the scheme separator and the first slash
// after the host.
type URLParts struct {
	Scheme string // without "://", empty if absent
	Host   string
	Path   string // everything after the host, starting with "/" if present
}

// String reassembles the parts
func (p URLParts) String() string {
	if p.Scheme == "" {
		return p.Host + p.Path
	}
	return p.Scheme + "://" + p.Host + p.Path
}

// ParseURLParts validates s and splits it into scheme, host and path.
// Nothing is decoded.
func ParseURLParts(s string) (URLParts, error) {
	if !IsURL(s) {
		return URLParts{}, errors.StringxInvalidURL("parse_url_parts", s)
	}
	return splitURL(s), nil
}

func splitURL(s string) URLParts {
	var p URLParts
	if n := schemeLen(s); n > 0 {
		p.Scheme = s[:n-3]
		s = s[n:]
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		p.Host, p.Path = s[:i], s[i:]
	} else {
		p.Host = s
	}
	return p
}

// rawURLDecode decodes every well-formed %XX escape and leaves malformed
// ones as they are. "+" is not treated as a space.
func rawURLDecode(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
