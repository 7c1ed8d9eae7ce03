package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "apuconv"

// number is set by the linker for release builds
var number string

// the vcs revision, with "+dirty" appended if the source was modified
var revision string

// the version number or one of "unreleased" or "local" if the number has not
// been set by the linker. "local" means there was no vcs information either,
// which happens with "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a one line summary suitable for the -version flag
func String() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s %s", ApplicationName, ver)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, ver, rev)
}

func init() {
	var vcs bool
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
