package buildinfo

import "testing"

func TestShortAndBanner(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	Version, Commit, Date = "dev", "unknown", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("Short()=%q, want dev", got)
	}

	Commit = "abc1234"
	if got := Short(); got != "abc1234" {
		t.Fatalf("Short()=%q, want commit", got)
	}

	Version, Date = "v0.3.0", "2026-10-18"
	if got := Banner(); got != "sparkcalc v0.3.0 built 2026-10-18" {
		t.Fatalf("Banner()=%q", got)
	}
}
