// Package buildinfo holds release metadata injected at link time.
package buildinfo

// Injected via ldflags by the release build; empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
