// Package version reports build metadata for the wordhunt binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// Populated by the linker, e.g.
//
//	-ldflags "-X git.sr.ht/~jakintosh/wordhunt/internal/version.rawVersion=v1.2.0"
var (
	rawVersion = "dev"
	rawCommit  = ""
	rawDate    = ""
)

const (
	unknown   = "unknown"
	devel     = "dev"
	commitLen = 12
)

// Info captures the build metadata for the binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

// String renders the metadata on one line.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.Commit, i.BuildDate)
}

var current = sync.OnceValue(func() Info {
	info := Info{
		Version:   strings.TrimSpace(rawVersion),
		Commit:    strings.TrimSpace(rawCommit),
		BuildDate: strings.TrimSpace(rawDate),
	}
	if build, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, build)
	}
	return finalize(info)
})

// Data returns link-time values, falling back to the module and VCS data the
// go tool embeds, and finally to placeholders.
func Data() Info {
	return current()
}

func fromBuildInfo(info Info, build *debug.BuildInfo) Info {
	if isDevel(info.Version) && strings.HasPrefix(build.Main.Version, "v") {
		info.Version = build.Main.Version
	}

	settings := make(map[string]string, len(build.Settings))
	for _, s := range build.Settings {
		settings[s.Key] = s.Value
	}

	if info.Commit == "" && settings["vcs.revision"] != "" {
		info.Commit = settings["vcs.revision"]
		if settings["vcs.modified"] == "true" {
			info.Commit += "-dirty"
		}
	}

	if info.BuildDate == "" && settings["vcs.time"] != "" {
		info.BuildDate = settings["vcs.time"]
		if parsed, err := time.Parse(time.RFC3339, info.BuildDate); err == nil {
			info.BuildDate = parsed.UTC().Format(time.RFC3339)
		}
	}
	return info
}

func finalize(info Info) Info {
	if isDevel(info.Version) {
		info.Version = devel
	}
	if info.Commit == "" {
		info.Commit = unknown
	} else {
		info.Commit = shortenCommit(info.Commit)
	}
	if info.BuildDate == "" {
		info.BuildDate = unknown
	}
	return info
}

// shortenCommit keeps the first commitLen characters of a revision and any
// "-dirty" marker.
func shortenCommit(commit string) string {
	base, dirty := strings.CutSuffix(commit, "-dirty")
	if len(base) > commitLen {
		base = base[:commitLen]
	}
	if dirty {
		return base + "-dirty"
	}
	return base
}

func isDevel(v string) bool {
	return v == "" || v == devel || v == "(devel)"
}
