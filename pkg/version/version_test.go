package version

import (
	"runtime/debug"
	"testing"
)

func setBuildVars(t *testing.T, v, commit, date string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = v, commit, date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func stubBuildInfo(t *testing.T, mainVersion string, ok bool) {
	t.Helper()
	old := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		if !ok {
			return nil, false
		}
		return &debug.BuildInfo{Main: debug.Module{Version: mainVersion}}, true
	}
	t.Cleanup(func() { readBuildInfo = old })
}

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		buildInfo string
		ok        bool
		want      string
	}{
		{"ldflags_win", "v1.2.3", "v9.9.9", true, "v1.2.3"},
		{"module_version", "dev", "v0.3.0", true, "v0.3.0"},
		{"devel_build", "dev", "(devel)", true, "dev"},
		{"no_build_info", "dev", "", false, "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuildVars(t, tt.version, "", "")
			stubBuildInfo(t, tt.buildInfo, tt.ok)
			if got := GetVersion(); got != tt.want {
				t.Errorf("GetVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetFullVersion(t *testing.T) {
	stubBuildInfo(t, "", false)

	setBuildVars(t, "v1.0.0", "", "")
	if got := GetFullVersion(); got != "v1.0.0" {
		t.Errorf("GetFullVersion() = %q", got)
	}

	setBuildVars(t, "v1.0.0", "abc123", "2026-01-02")
	if got, want := GetFullVersion(), "v1.0.0 (commit: abc123, built: 2026-01-02)"; got != want {
		t.Errorf("GetFullVersion() = %q, want %q", got, want)
	}
}
