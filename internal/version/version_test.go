package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withVars(t *testing.T, version, commit string) {
	t.Helper()
	prevVersion, prevCommit := Version, Commit
	Version, Commit = version, commit
	t.Cleanup(func() { Version, Commit = prevVersion, prevCommit })
}

func TestPopulateFromBuildInfo_ModuleVersion(t *testing.T) {
	withVars(t, "", "")

	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	populateFromBuildInfo(info)

	if Version != "v0.3.1" {
		t.Errorf("Version = %q, want v0.3.1", Version)
	}
	if Commit != "0123456-dirty" {
		t.Errorf("Commit = %q, want 0123456-dirty", Commit)
	}
}

func TestPopulateFromBuildInfo_DevelUsesVCSTime(t *testing.T) {
	withVars(t, "", "")

	info := &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc"},
			{Key: "vcs.time", Value: "2026-03-04T10:00:00Z"},
		},
	}
	populateFromBuildInfo(info)

	if Version != "dev-20260304" {
		t.Errorf("Version = %q, want dev-20260304", Version)
	}
	if Commit != "abc" {
		t.Errorf("Commit = %q, want abc", Commit)
	}
}

func TestPopulateFromBuildInfo_KeepsLdflags(t *testing.T) {
	withVars(t, "v1.0.0", "feedbee")

	populateFromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}})

	if Full() != "v1.0.0 (commit: feedbee)" {
		t.Errorf("Full() = %q", Full())
	}
}

func TestDetailed(t *testing.T) {
	if !strings.HasPrefix(Detailed(), "tuiprompt ") {
		t.Errorf("Detailed() = %q", Detailed())
	}
}
