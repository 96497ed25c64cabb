// File: linkify_test.go
// Title: URL Detection Tests
// Description: Tests for FindURLs, ParseURLs and the anchor transforms.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-12

package stringx

import (
	"strings"
	"testing"
)

func TestFindURLs(t *testing.T) {
	type span struct {
		text       string
		start, end int
	}
	tests := []struct {
		name  string
		input string
		want  []span
	}{
		{"sentence end", "Visit http://example.com/page. Thanks.", []span{{"http://example.com/page", 6, 29}}},
		{"several", "see example.com, then www.go.dev/doc!", []span{{"example.com", 4, 15}, {"www.go.dev/doc", 22, 36}}},
		{"at start and end", "first.com second.org/x third.net", []span{{"first.com", 0, 9}, {"second.org/x", 10, 22}, {"third.net", 23, 32}}},
		{"query at end of text", "trailing https://x.org/a?b=1", []span{{"https://x.org/a?b=1", 9, 28}}},
		{"not after punctuation", "(example.com) and example.com, ok", []span{{"example.com", 18, 29}}},
		{"host backs off to a valid end", "a.b.c/... end", []span{{"a.b", 0, 3}}},
		{"cyrillic offsets are bytes", "Ссылка: пример.рф/страница!", []span{{"пример.рф/страница", 14, 48}}},
		{"scheme is case-insensitive", "see HTTP://example.com/x", []span{{"HTTP://example.com/x", 4, 24}}},
		{"email skipped", "contact me@example.com", nil},
		{"followed by at sign", "mail: user@host.com or host.com@", nil},
		{"single word", "see localhost now", nil},
		{"empty path", "x example.com/", nil},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindURLs(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("FindURLs(%q) found %d spans (%+v); want %d", tt.input, len(got), got, len(tt.want))
			}
			for i, w := range tt.want {
				g := got[i]
				if g.Text != w.text || g.Start != w.start || g.End != w.end {
					t.Errorf("span %d = %q [%d:%d]; want %q [%d:%d]", i, g.Text, g.Start, g.End, w.text, w.start, w.end)
				}
				if tt.input[g.Start:g.End] != g.Text {
					t.Errorf("span %d offsets do not cover its text", i)
				}
			}
		})
	}
}

func TestFindURLsParts(t *testing.T) {
	spans := FindURLs("go to https://go.dev/doc/install now")
	if len(spans) != 1 {
		t.Fatalf("FindURLs() found %d spans; want 1", len(spans))
	}
	s := spans[0]
	if s.Scheme != "https" || s.Host != "go.dev" || s.Path != "/doc/install" {
		t.Errorf("parts = %q %q %q; want https go.dev /doc/install", s.Scheme, s.Host, s.Path)
	}

	spans = FindURLs("example.org")
	if len(spans) != 1 || spans[0].Scheme != "" || spans[0].Path != "" {
		t.Errorf("FindURLs(example.org) = %+v", spans)
	}
}

func TestFindURLsSpansAreURLs(t *testing.T) {
	text := "a.b x.y/z www.example.org/path?q=1, http://localhost.localdomain/ end. пример.рф!"
	for _, s := range FindURLs(text) {
		if !IsURL(s.Text) {
			t.Errorf("found span %q is not accepted by IsURL", s.Text)
		}
	}
}

func TestParseURLs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"sentence end",
			"Visit http://example.com/page. Thanks.",
			`Visit <a href="http://example.com/page">example.com/page</a>. Thanks.`,
		},
		{
			"several",
			"see example.com, then www.go.dev/doc!",
			`see <a href="http://example.com">example.com</a>, then <a href="http://www.go.dev/doc">www.go.dev/doc</a>!`,
		},
		{
			"escaping and shortening",
			"https://go.dev/doc/effective_go?x=1&y=<2>! Wow",
			`<a href="https://go.dev/doc/effective_go?x=1&amp;y=&lt;2&gt;">go.dev/doc/e...&amp;y=&lt;2&gt;</a>! Wow`,
		},
		{
			"long path on its own line",
			"line1\nwww.example.org/path/to/some/resource/deeply/nested?q=1\n",
			"line1\n" + `<a href="http://www.example.org/path/to/some/resource/deeply/nested?q=1">www.example.org/path/...ed?q=1</a>` + "\n",
		},
		{
			"partial host",
			"a.b.c/... end",
			`<a href="http://a.b">a.b</a>.c/... end`,
		},
		{
			"cyrillic",
			"Ссылка: пример.рф/страница!",
			`Ссылка: <a href="http://пример.рф/страница">пример.рф/страница</a>!`,
		},
		{
			"upper-case scheme",
			"see HTTP://example.com/x",
			`see <a href="HTTP://example.com/x">example.com/x</a>`,
		},
		{"email", "contact me@example.com", "contact me@example.com"},
		{"single word", "see localhost now", "see localhost now"},
		{"nothing to do", "plain prose only", "plain prose only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseURLs(tt.input, nil); got != tt.want {
				t.Errorf("ParseURLs(%q)\n got: %s\nwant: %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseURLsCustomTransform(t *testing.T) {
	var seen []string
	got := ParseURLs("see example.com and go.dev/x.", func(m string) string {
		seen = append(seen, m)
		return strings.ToUpper(m)
	})

	if got != "see EXAMPLE.COM and GO.DEV/X." {
		t.Errorf("ParseURLs() = %q", got)
	}
	if len(seen) != 2 || seen[0] != "example.com" || seen[1] != "go.dev/x" {
		t.Errorf("transform saw %q", seen)
	}
}

func TestParseURLsIdentityTransform(t *testing.T) {
	text := "Visit http://example.com/page. Thanks, пример.рф!"
	if got := ParseURLs(text, func(m string) string { return m }); got != text {
		t.Errorf("identity transform changed the text: %q", got)
	}
}

func TestAnchorTransform(t *testing.T) {
	tests := []struct {
		name  string
		opts  AnchorOptions
		match string
		want  string
	}{
		{"defaults", AnchorOptions{}, "example.com", `<a href="http://example.com">example.com</a>`},
		{"scheme", AnchorOptions{Scheme: "https"}, "example.com", `<a href="https://example.com">example.com</a>`},
		{"scheme kept", AnchorOptions{Scheme: "https"}, "ftp://x.com", `<a href="ftp://x.com">x.com</a>`},
		{
			"attributes",
			AnchorOptions{Target: "_blank", Rel: "noopener", Class: "x&y"},
			"example.com",
			`<a href="http://example.com" target="_blank" rel="noopener" class="x&amp;y">example.com</a>`,
		},
		{"path length", AnchorOptions{MaxPathLen: 5}, "a.io/abcdefgh", `<a href="http://a.io/abcdefgh">a.io/...h</a>`},
		{"not a url", AnchorOptions{}, "two words", "two words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnchorTransform(tt.opts)(tt.match); got != tt.want {
				t.Errorf("AnchorTransform(%+v)(%q) = %s; want %s", tt.opts, tt.match, got, tt.want)
			}
		})
	}
}

func TestDefaultTransform(t *testing.T) {
	if got := DefaultTransform("localhost"); got != `<a href="http://localhost">localhost</a>` {
		t.Errorf("DefaultTransform(localhost) = %s", got)
	}
	if got := DefaultTransform("it's"); got != "it's" {
		t.Errorf("DefaultTransform(it's) = %s", got)
	}
}
