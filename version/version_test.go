package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = oldVersion, oldCommit, oldDate })

	Version, GitCommit, BuildDate = "dev", "unknown", "unknown"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("expected dev, got %q", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "0123456789abcdef", "2026-10-01"
	want := "1.2.0 (0123456, built 2026-10-01)"
	if got := GetFullVersion(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
