package version

import (
	"strings"
	"testing"
)

func TestInfoIncludesBuildMetadata(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "v1.2.3", "abc123", "2025-11-02"
	if got, want := Info(), "v1.2.3 (commit abc123, built 2025-11-02)"; got != want {
		t.Fatalf("Info() = %q, want %q", got, want)
	}

	Version = "dev"
	if got := Info(); !strings.Contains(got, "(commit abc123, built 2025-11-02)") {
		t.Fatalf("Info() = %q, missing build metadata", got)
	}
}
