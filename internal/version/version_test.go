package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	info := Current()
	if info.Version != Version || info.GoVersion == "" {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	// как при сборке с -ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	info := Current()
	if info.Version != "1.2.3" || info.GitCommit != "abc123def456" || info.BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("overrides not picked up: %+v", info)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		in string
	}{
		{"0.1.0-dev"},
		{"1.2.3"},
		{"1.2.3-rc.1+build.123"},
		{"weird"},
	}
	for _, tt := range tests {
		if got := Colored(tt.in, false); got != tt.in {
			t.Errorf("Colored(%q, false) = %q", tt.in, got)
		}
	}
	colored := Colored("1.2.3-dev", true)
	if !strings.Contains(colored, "\x1b[") || !strings.HasSuffix(colored, "-dev") {
		t.Errorf("unexpected colored version %q", colored)
	}
}

func TestBanner(t *testing.T) {
	info := Info{Version: "0.1.0", GitCommit: "abc", GitMessage: "fix parser", GoVersion: "go1.25"}
	out := info.Banner(false)
	for _, want := range []string{"mcl 0.1.0\n", "commit: abc (fix parser)\n", "go:     go1.25\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("banner misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "built:") {
		t.Errorf("empty build date must be skipped:\n%s", out)
	}
}
