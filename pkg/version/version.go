// Package version exposes build metadata injected via -ldflags.
package version

import (
	"runtime/debug"
	"strings"
)

// Build-time variables injected via -ldflags. Version stays "dev" for
// plain go builds.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the release version. Binaries installed with
// go install report their module version instead of "dev".
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// GetFullVersion returns the version followed by whatever commit and date
// information is known.
func GetFullVersion() string {
	var extra []string
	if Commit != "" {
		extra = append(extra, "commit: "+Commit)
	}
	if Date != "" {
		extra = append(extra, "built: "+Date)
	}
	if len(extra) == 0 {
		return GetVersion()
	}
	return GetVersion() + " (" + strings.Join(extra, ", ") + ")"
}
