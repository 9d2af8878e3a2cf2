package app

import "fmt"

// Build metadata, stamped by the release pipeline:
//
//	go build -ldflags "-X github.com/questlinehq/questline-backend/internal/app.Version=v1.2.0 \
//	  -X github.com/questlinehq/questline-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the string reported in the startup log and /health.
func BuildVersion() string {
	if Commit == "" && BuildTime == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, BuildTime)
}
