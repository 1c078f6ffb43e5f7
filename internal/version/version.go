// Package version reports the build the binary came from.
package version

import "fmt"

// Set at build time via ldflags:
//
//	-X github.com/example/stockroom/internal/version.Commit=$(git rev-parse HEAD)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line shown by "stockroom --version".
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
