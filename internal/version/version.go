// Package version reports the version of armjit built into a binary.
package version

import (
	"runtime/debug"
	"strings"
)

// Default is the version reported when the build information has none, such as under `go run`.
const Default = "dev"

const modulePath = "github.com/armjit/armjit"

// GetArmjitVersion returns the version of the armjit module: the main module when the binary is
// the armjit CLI, or the dependency when armjit is embedded in another program.
func GetArmjitVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Default
	}
	return versionFromBuildInfo(info)
}

func versionFromBuildInfo(info *debug.BuildInfo) (ret string) {
	if info.Main.Path == modulePath {
		ret = info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			ret = dep.Version
			if dep.Replace != nil {
				ret = dep.Replace.Version
			}
			break
		}
	}
	// (devel) is what the toolchain reports for a main module built from a working copy.
	if ret == "" || strings.HasPrefix(ret, "(devel)") {
		return Default
	}
	return ret
}
