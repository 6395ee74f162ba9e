package version

import (
	"strings"
	"testing"
)

func TestGetVersion_WithLdflags(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "v1.2.3"

	if got := GetVersion(); got != "v1.2.3" {
		t.Errorf("GetVersion() with ldflags = %v, want %v", got, "v1.2.3")
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v0.2.0",
		GitCommit: "abc1234567",
		GoVersion: "go1.25.5",
		Platform:  "linux/amd64",
	}

	got := info.String()
	if !strings.HasPrefix(got, "gradecheck v0.2.0 (commit: abc1234)") {
		t.Errorf("Info.String() = %q, want short commit", got)
	}
	if !strings.HasSuffix(got, "go1.25.5 linux/amd64") {
		t.Errorf("Info.String() = %q, want go version and platform", got)
	}

	info.GitCommit = "unknown"
	if got := info.String(); strings.Contains(got, "commit") {
		t.Errorf("Info.String() = %q, unknown commit should be omitted", got)
	}
}

func TestGet(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()
	Version = "v9.9.9"

	info := Get()
	if info.Version != "v9.9.9" {
		t.Errorf("Get().Version = %v", info.Version)
	}
	if info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("Get() missing runtime info: %+v", info)
	}
}
