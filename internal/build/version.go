// Package build provides version and build information for boopifier.
// It has no dependencies on other internal packages so anything may import it.
package build

import "runtime"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Name is the program name used in user agents and messages.
const Name = "boopifier"

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// UserAgent is the User-Agent header sent by the webhook backend.
func UserAgent() string {
	return Name + "/" + Version
}

// GoVersion returns the Go runtime version the binary was built with.
func GoVersion() string {
	return runtime.Version()
}
