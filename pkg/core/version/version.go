// ============================================================================
// textkit - Text shaping toolkit
// ============================================================================
//
// Package:     version
// Description: Version information for the textkit command
// Author:      msto63
// Created:     2026-10-08
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the release of the textkit module
const Version = "0.3.0"

// Build metadata, set with -ldflags "-X github.com/msto63/textkit/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info bundles version and build metadata
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the information on one line
func (i Info) String() string {
	return fmt.Sprintf("textkit %s (commit %s, built %s, %s %s)",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}

// Short returns "textkit <version>"
func Short() string {
	return "textkit " + Version
}
