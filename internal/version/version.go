package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// Version information for the mcl CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Info is the machine-readable form used by `mcl version --format json`.
type Info struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
	GoVersion  string `json:"go_version"`
}

// Current snapshots the build variables.
func Current() Info {
	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		GitMessage: GitMessage,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
	}
}

// Colored раскрашивает major.minor.patch; суффикс (-dev, +build) без цвета.
func Colored(v string, enabled bool) string {
	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	colors := []*color.Color{versionMajorColor, versionMinorColor, versionPatchColor}
	for i, c := range colors {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		parts[i] = c.Sprint(parts[i])
	}
	return strings.Join(parts, ".") + suffix
}

// Banner renders the human-readable `mcl version` output.
func (i Info) Banner(colored bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "mcl %s\n", Colored(i.Version, colored))
	if i.GitCommit != "" {
		fmt.Fprintf(&b, "commit: %s", i.GitCommit)
		if i.GitMessage != "" {
			fmt.Fprintf(&b, " (%s)", i.GitMessage)
		}
		b.WriteByte('\n')
	}
	if i.BuildDate != "" {
		fmt.Fprintf(&b, "built:  %s\n", i.BuildDate)
	}
	fmt.Fprintf(&b, "go:     %s\n", i.GoVersion)
	return b.String()
}
