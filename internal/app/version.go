package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata, set with
// -ldflags "-X github.com/heartmarshall/lexilens-backend/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns the version string reported at startup and by /health.
// Without ldflags the commit and time come from the Go toolchain's VCS stamp.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime := vcsInfo()
		if commit == "" {
			commit = vcsCommit
		}
		if built == "" {
			built = vcsTime
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func vcsInfo() (revision, modified string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) > 12 {
				revision = s.Value[:12]
			} else {
				revision = s.Value
			}
		case "vcs.time":
			modified = s.Value
		}
	}
	return revision, modified
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
