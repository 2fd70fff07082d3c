package app

import "fmt"

// Set at build time via
// -ldflags "-X github.com/edgeskills/edge-backend/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build identity for startup logs and health probes.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
