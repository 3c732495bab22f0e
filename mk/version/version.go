// Package version reports awdl-frame-parser build version.
package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"time"
)

// Variables replaced via -ldflags -X.
var (
	commit string
	date   string
	dirty  string
)

// Version contains build version information.
type Version struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit"`
	Date      time.Time `json:"date"`
	Dirty     bool      `json:"dirty"`
	GoVersion string    `json:"goVersion,omitempty"`
}

func (v Version) String() string {
	return v.Version
}

// pseudo assigns a pseudo-version derived from commit and date.
func (v *Version) pseudo() {
	suffix := ""
	if v.Dirty {
		suffix = "-dirty"
	}
	v.Version = fmt.Sprintf("v0.0.0-%s-%s%s", v.Date.UTC().Format("20060102150405"), v.Commit[:12], suffix)
}

// fromBuildInfo fills v from module and VCS stamps recorded by the go command.
func (v *Version) fromBuildInfo(bi *debug.BuildInfo) {
	v.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			v.Commit = s.Value
		case "vcs.time":
			v.Date, _ = time.Parse(time.RFC3339, s.Value)
		case "vcs.modified":
			v.Dirty = s.Value == "true"
		}
	}

	switch {
	case bi.Main.Version != "" && bi.Main.Version != "(devel)":
		v.Version = bi.Main.Version
	case len(v.Commit) >= 12 && !v.Date.IsZero():
		v.pseudo()
	default:
		v.Version = "development"
	}
}

// Get returns version information.
// Values set via -ldflags take precedence over build info.
func Get() (v Version) {
	if dt, e := strconv.ParseInt(date, 10, 64); e == nil && len(commit) == 40 {
		v.Commit = commit
		v.Date = time.Unix(dt, 0)
		v.Dirty = dirty != ""
		v.pseudo()
		if bi, ok := debug.ReadBuildInfo(); ok {
			v.GoVersion = bi.GoVersion
		}
		return v
	}

	v.Version, v.Commit, v.Date, v.Dirty = "development", "unknown", time.Now(), true
	if bi, ok := debug.ReadBuildInfo(); ok {
		v.fromBuildInfo(bi)
	}
	return v
}
