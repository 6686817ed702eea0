// Package build reports the version of the running binary. Version is
// normally injected with -ldflags; the rest comes from the Go toolchain's
// embedded build information.
package build

import (
	"runtime/debug"
	"strings"
)

// Version is set at link time:
//
//	go build -ldflags "-X github.com/amp-labs/amp-tuple/build.Version=v1.2.0"
var Version = "" //nolint:gochecknoglobals

const develVersion = "(devel)"

// Info describes how the running binary was built.
type Info struct {
	Version   string `json:"version"    yaml:"version"`
	Commit    string `json:"commit"     yaml:"commit"`
	GoVersion string `json:"go_version" yaml:"go_version"` //nolint:tagliatelle
	Modified  bool   `json:"modified"   yaml:"modified"`
}

// Read returns the Info for the running binary.
func Read() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return fromBuildInfo(Version, nil)
	}

	return fromBuildInfo(Version, bi)
}

func fromBuildInfo(linked string, bi *debug.BuildInfo) Info {
	info := Info{Version: linked}

	if bi != nil {
		info.GoVersion = bi.GoVersion

		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != develVersion {
			info.Version = bi.Main.Version
		}

		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.Commit = setting.Value
			case "vcs.modified":
				info.Modified = setting.Value == "true"
			}
		}
	}

	if info.Version == "" {
		info.Version = develVersion
	}

	return info
}

// String gives a one-line summary such as "v1.2.0 (3f2a9c1, go1.25.0)".
func (i Info) String() string {
	details := make([]string, 0, 2)

	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}

		if i.Modified {
			commit += "-dirty"
		}

		details = append(details, commit)
	}

	if i.GoVersion != "" {
		details = append(details, i.GoVersion)
	}

	if len(details) == 0 {
		return i.Version
	}

	return i.Version + " (" + strings.Join(details, ", ") + ")"
}
