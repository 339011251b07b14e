// Package buildinfo carries build metadata injected with -ldflags, e.g.
//
//	-X sparkcalc/internal/buildinfo.Version=v0.3.0
package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Banner is the startup log line.
func Banner() string {
	s := "sparkcalc " + Short()
	if Date != "" && Date != "unknown" {
		s += " built " + Date
	}
	return s
}
