package version

import "strings"

// Version information for the c3c CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// VersionString renders the value cobra's --version flag prints.
func VersionString() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	if GitCommit == "" {
		return v
	}
	return v + " (" + strings.TrimSpace(GitCommit) + ")"
}
