// File: filex_test.go
// Title: File Utilities Tests
// Description: Tests for file reads, byte size formatting and safe names.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-02 v0.1.0: Initial test implementation
// - 2026-10-13 v0.2.0: Locale catalogs and SafeName

package filex

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

func TestExistsAndIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		path   string
		exists bool
		isFile bool
	}{
		{file, true, true},
		{dir, true, false},
		{filepath.Join(dir, "missing"), false, false},
	}
	for _, tt := range tests {
		if got := Exists(tt.path); got != tt.exists {
			t.Errorf("Exists(%s) = %v; want %v", tt.path, got, tt.exists)
		}
		if got := IsFile(tt.path); got != tt.isFile {
			t.Errorf("IsFile(%s) = %v; want %v", tt.path, got, tt.isFile)
		}
	}
}

func TestReadString(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	content := "see example.com\nпривет\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadString(file)
	if err != nil {
		t.Fatalf("ReadString() error = %v", err)
	}
	if got != content {
		t.Errorf("ReadString() = %q; want %q", got, content)
	}

	_, err = ReadString(filepath.Join(dir, "missing.txt"))
	if err == nil {
		t.Fatal("ReadString() on a missing file should fail")
	}
	if !mdwerrors.IsCode(err, mdwerrors.CodeFilexReadFailed) {
		t.Errorf("error = %v; want code %s", err, mdwerrors.CodeFilexReadFailed)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("the cause should remain reachable through errors.Is")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestReadAll(t *testing.T) {
	got, err := ReadAll(strings.NewReader("stdin text"), "stdin")
	if err != nil || got != "stdin text" {
		t.Errorf("ReadAll() = %q, %v", got, err)
	}

	_, err = ReadAll(failingReader{}, "stdin")
	if !mdwerrors.IsCode(err, mdwerrors.CodeFilexReadFailed) {
		t.Errorf("ReadAll() error = %v; want code %s", err, mdwerrors.CodeFilexReadFailed)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size   int64
		locale string
		want   string
	}{
		{0, "ru", "0 байт"},
		{1, "ru", "1 байт"},
		{2, "ru", "2 байта"},
		{5, "ru", "5 байт"},
		{1024, "ru", "1024 байта"},
		{1025, "ru", "1 Кб"},
		{1126, "ru", "1.1 Кб"},
		{1536, "ru", "1.5 Кб"},
		{1 << 20, "ru", "1024 Кб"},
		{3, "", "3 байта"},
		{1, "en", "1 byte"},
		{1000, "en", "1000 bytes"},
		{5 << 30, "en", "5 GB"},
		{1 << 62, "en", "4096 PB"},
		{1, "de", "1 Byte"},
		{3 << 20, "de-AT", "3 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := FormatSize(tt.size, tt.locale)
			if err != nil {
				t.Fatalf("FormatSize(%d, %q) error = %v", tt.size, tt.locale, err)
			}
			if got != tt.want {
				t.Errorf("FormatSize(%d, %q) = %q; want %q", tt.size, tt.locale, got, tt.want)
			}
		})
	}
}

func TestFormatSizeErrors(t *testing.T) {
	_, err := FormatSize(-1, "ru")
	if !mdwerrors.IsCode(err, mdwerrors.CodeFilexInvalidSize) {
		t.Errorf("FormatSize(-1) error = %v; want code %s", err, mdwerrors.CodeFilexInvalidSize)
	}

	_, err = FormatSize(10, "fr")
	if !mdwerrors.IsCode(err, mdwerrors.CodeI18nUnknownLocale) {
		t.Errorf("FormatSize(fr) error = %v; want code %s", err, mdwerrors.CodeI18nUnknownLocale)
	}
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Отчёт за 2026 год.pdf", "Otchet-za-2026-god.pdf"},
		{"Crème brûlée.txt", "Creme-brulee.txt"},
		{"Ärger Über", "Arger-Uber"},
		{"  a  b ", "-a-b-"},
		{"файл/../x", "fajl..x"},
		{"hello_world-1.txt", "hello_world-1.txt"},
		{"日本語.txt", ".txt"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SafeName(tt.input); got != tt.want {
				t.Errorf("SafeName(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(file, []byte("one"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	w, err := WatchFile(ctx, file, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}
	if w.Path() != file {
		t.Errorf("Path() = %q; want %q", w.Path(), file)
	}

	if err := os.WriteFile(file, []byte("two"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported within 5s")
	}

	cancel()
	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestWatchFileMissingDir(t *testing.T) {
	_, err := WatchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "x.txt"), 0, func() {})
	if err == nil {
		t.Fatal("WatchFile() in a missing directory should fail")
	}
}
