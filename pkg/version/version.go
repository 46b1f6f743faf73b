// Package version exposes build metadata injected via -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Build metadata, overridden at link time.
//
//nolint:gochecknoglobals // Set by -ldflags at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the semantic version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns version, build time, commit, and platform.
func GetFullVersion() string {
	return fmt.Sprintf("countrylist %s (built on %s, commit %s, %s/%s)",
		Version, BuildTime, GitCommit, runtime.GOOS, runtime.GOARCH)
}
