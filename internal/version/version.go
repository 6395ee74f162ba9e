package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version information, set at build time via ldflags
	Version   = "dev"     // Version string (e.g., "v0.3.0")
	GitCommit = "unknown" // Git commit hash
	BuildTime = "unknown" // Build timestamp
)

// Info describes the running gradecheck binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildTime string `json:"buildTime" yaml:"buildTime"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

// String renders the one-line form printed by `gradecheck version`
func (i Info) String() string {
	s := "gradecheck " + i.Version
	if i.GitCommit != "unknown" && i.GitCommit != "" {
		s += fmt.Sprintf(" (commit: %s)", shortCommit(i.GitCommit))
	}
	return s + fmt.Sprintf(" %s %s", i.GoVersion, i.Platform)
}

// GetVersion returns the version string for the application
func GetVersion() string {
	if Version != "dev" {
		return Version
	}

	// Fallback: module version when installed with `go install pkg@version`
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && GitCommit == "unknown" {
				return "dev-" + shortCommit(s.Value)
			}
		}
	}

	return "dev"
}

// Get collects the build information of the running binary
func Get() Info {
	return Info{
		Version:   GetVersion(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
