package version

import (
	"fmt"
	"runtime/debug"
)

// ModulePath is the import path of the lazycollect module.
const ModulePath = "github.com/kbukum/lazycollect"

// Version is set at build time with
// -ldflags "-X github.com/kbukum/lazycollect/version.Version=v1.2.3".
// When it is left at "dev", Get falls back to the module version recorded
// in the binary's build info.
var Version = "dev"

// Info describes the lazycollect build linked into the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get returns the build information of lazycollect.
func Get() Info {
	info := Info{Version: Version}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" {
		info.Version = moduleVersion(bi)
	}
	if bi.Main.Path != ModulePath {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
			if len(info.Commit) > 7 {
				info.Commit = info.Commit[:7]
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

func moduleVersion(bi *debug.BuildInfo) string {
	if bi.Main.Path == ModulePath && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path == ModulePath && dep.Version != "" {
			return dep.Version
		}
	}
	return "dev"
}

// String returns the version, with the short commit and a dirty marker when
// they are known.
func (i Info) String() string {
	if i.Commit == "" {
		return i.Version
	}
	if i.Dirty {
		return fmt.Sprintf("%s-%s-dirty", i.Version, i.Commit)
	}
	return fmt.Sprintf("%s-%s", i.Version, i.Commit)
}

// Short returns Get().String().
func Short() string { return Get().String() }
