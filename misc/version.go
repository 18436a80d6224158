// Package misc holds build time program identity.
package misc

import "runtime/debug"

const appName = "fragd"

// Set by the linker: -X fragd/misc.version=... -X fragd/misc.gitHash=...
var (
	version = "dev"
	gitHash = ""
)

// GetAppName returns the program name used for logs and temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns the program version.
func GetVersion() string {
	return version
}

// GetGitHash returns the vcs revision the program was built from, falling
// back to build info embedded by the go tool.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
