// Package buildinfo carries the version stamped in by the linker:
//
//	-ldflags "-X tivagc/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "runtime/debug"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or an abbreviated commit for dev builds. It
// fits the splash screen's 22 columns.
func Short() string {
	if Version != "" && Version != "dev" {
		return clip(Version, 22)
	}
	if c := commit(); c != "" {
		return clip(c, 7)
	}
	return "dev"
}

// Long is Short plus the commit and build date, for logs and flags.
func Long() string {
	s := Version
	if s == "" {
		s = "dev"
	}
	if c := commit(); c != "" {
		s += " " + c
	}
	if Date != "" && Date != "unknown" {
		s += " " + Date
	}
	return s
}

// commit falls back to the VCS stamp the go tool embeds.
func commit() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
