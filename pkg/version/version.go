package version

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
)

// Set at link time with -ldflags "-X".
var (
	version    string = "0.0.0-dev"
	commit     string = ""
	prerelease string = ""
)

func Get() string {
	return version
}

func Commit() string {
	return commit
}

func Prerelease() bool {
	if prerelease != "" {
		return true
	}
	v, err := semver.ParseTolerant(version)
	return err == nil && len(v.Pre) > 0
}

// Version is the one-line description printed by --version and --debug.
func Version() string {
	s := fmt.Sprintf("cmf %s %s/%s", version, runtime.GOOS, runtime.GOARCH)
	if commit != "" {
		s += " (" + commit + ")"
	}
	return s
}
