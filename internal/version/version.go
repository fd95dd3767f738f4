// Package version holds the build information of the indent binaries
package version

import "fmt"

// Build information set by ldflags:
//
//	-X github.com/arthur-debert/indent/internal/version.Version=...
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info returns the multi-line version report printed by "indent version"
func Info() string {
	return fmt.Sprintf("indent version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
