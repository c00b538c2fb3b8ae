// Package version holds build metadata injected with -ldflags.
package version

// Version information for basics, overridden at build time:
//
//	go build -ldflags "-X github.com/zorak1103/basics/internal/version.Version=1.2.0"
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the release version
func GetVersion() string {
	return Version
}

// GetFullVersion returns version with build metadata
func GetFullVersion() string {
	return Version + " (build: " + BuildDate + ", commit: " + GitCommit + ")"
}
