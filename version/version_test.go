package version

import (
	"runtime/debug"
	"testing"
)

func TestGetUsesLinkedVersion(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v1.4.0"
	if got := Get().Version; got != "v1.4.0" {
		t.Errorf("Version = %q", got)
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"version only", Info{Version: "v1.0.0"}, "v1.0.0"},
		{"with commit", Info{Version: "v1.0.0", Commit: "abc1234"}, "v1.0.0-abc1234"},
		{"dirty", Info{Version: "dev", Commit: "abc1234", Dirty: true}, "dev-abc1234-dirty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModuleVersion(t *testing.T) {
	tests := []struct {
		name string
		bi   debug.BuildInfo
		want string
	}{
		{"main module", debug.BuildInfo{Main: debug.Module{Path: ModulePath, Version: "v0.3.0"}}, "v0.3.0"},
		{"devel main module", debug.BuildInfo{Main: debug.Module{Path: ModulePath, Version: "(devel)"}}, "dev"},
		{"dependency", debug.BuildInfo{
			Main: debug.Module{Path: "example.com/app"},
			Deps: []*debug.Module{{Path: ModulePath, Version: "v0.2.1"}},
		}, "v0.2.1"},
		{"absent", debug.BuildInfo{Main: debug.Module{Path: "example.com/app"}}, "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := moduleVersion(&tt.bi); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
