// Package buildinfo reports the version stamped into the pinboard binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/pinboard/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/pinboard/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/pinboard/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/pinboard
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the UTC build timestamp.
	Date = "unknown"
)

// Revision returns Commit, falling back to the VCS revision recorded by the
// Go toolchain when no ldflags were given.
func Revision() string {
	if Commit != "none" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				if len(s.Value) > 12 {
					return s.Value[:12]
				}
				return s.Value
			}
		}
	}
	return Commit
}

// String returns the multi-line build description printed by `pinboard version`.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Revision(), Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, %s)\n", Version, Revision(), Date)
}
