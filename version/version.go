package version

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

var (
	// These variables are set at build time using -ldflags.
	Version   = "dev"
	GitCommit = ""
	GitBranch = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	GitBranch string    `json:"git_branch"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date"`
	IsRelease bool      `json:"is_release"`
	IsDirty   bool      `json:"is_dirty"`
}

// Get returns the version information of the running binary.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

// resolve merges the link-time variables with the build info stamps.
// Link-time values win.
func resolve(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		GitBranch: GitBranch,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}
	if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
		info.BuildDate = t
	}

	if bi == nil {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildDate.IsZero() {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					info.BuildDate = t
				}
			}
		}
	}
	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
	if info.IsDirty {
		info.IsRelease = false
	}
	return info
}

// Short returns version-commit, with a -dirty suffix for modified trees.
func (i Info) Short() string {
	if i.GitCommit == "" {
		return i.Version
	}
	s := i.Version + "-" + i.GitCommit
	if i.IsDirty {
		s += "-dirty"
	}
	return s
}

// Full returns the short version plus any feature branch and the build date.
func (i Info) Full() string {
	parts := []string{i.Version}
	if i.GitCommit != "" {
		parts = append(parts, i.GitCommit)
	}
	if i.GitBranch != "" && i.GitBranch != "main" && i.GitBranch != "master" {
		parts = append(parts, i.GitBranch)
	}
	if i.IsDirty {
		parts = append(parts, "dirty")
	}
	v := strings.Join(parts, "-")
	if !i.BuildDate.IsZero() {
		v += fmt.Sprintf(" (built %s)", i.BuildDate.UTC().Format(time.RFC3339))
	}
	return v
}

// Write prints the version as an aligned key/value table. now anchors the
// relative build age.
func (i Info) Write(w io.Writer, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Version:\t%s\n", i.Version)
	if i.GitCommit != "" {
		fmt.Fprintf(tw, "Commit:\t%s\n", i.Short())
	}
	if i.GitBranch != "" {
		fmt.Fprintf(tw, "Branch:\t%s\n", i.GitBranch)
	}
	if i.GoVersion != "" {
		fmt.Fprintf(tw, "Go:\t%s\n", i.GoVersion)
	}
	if !i.BuildDate.IsZero() {
		fmt.Fprintf(tw, "Built:\t%s (%s)\n", i.BuildDate.UTC().Format(time.RFC3339), humanize.RelTime(i.BuildDate, now, "ago", "from now"))
	}
	return tw.Flush()
}

// GetShortVersion returns Get().Short().
func GetShortVersion() string {
	return Get().Short()
}
