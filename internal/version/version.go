// Package version provides version information for the application.
package version

import "runtime/debug"

// Version is the semantic version, set at build time via ldflags.
var Version = "0.1.0"

// Revision is the VCS revision the binary was built from.
var Revision = getRevision()

func getRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}

	return "unknown"
}
