// File: filex.go
// Title: File Access Helpers
// Description: Existence checks and whole-file reads used by the command line
//              and the configuration loader. Read failures carry the
//              FILEX_READ_FAILED code.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-02 v0.1.0: Exists, IsFile, ReadFile, ReadString
// - 2026-10-13 v0.2.0: Structured read errors, ReadAll for streams

package filex

import (
	"io"
	"os"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// Exists checks if a file or directory exists at path
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile reads the entire file
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerrors.FilexReadFailed(path, err)
	}
	return content, nil
}

// ReadString reads the entire file and returns its contents as a string
func ReadString(path string) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReadAll reads r to the end. name identifies the stream in errors.
func ReadAll(r io.Reader, name string) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", mdwerrors.FilexReadFailed(name, err)
	}
	return string(content), nil
}
