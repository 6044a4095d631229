// Package version exposes build version information for User-Agent
// construction.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// These variables are set at build time using -ldflags.
	Version   = "dev"
	GitCommit = ""
)

// Short returns a short version string, including the VCS revision when the
// binary carries one.
func Short() string {
	commit := GitCommit
	if commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					commit = setting.Value
					break
				}
			}
		}
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit != "" {
		return fmt.Sprintf("%s-%s", Version, commit)
	}
	return Version
}

// UserAgent builds a User-Agent product token for a generated client.
func UserAgent(clientName string) string {
	if clientName == "" {
		clientName = "apikit"
	}
	return fmt.Sprintf("%s/%s", clientName, Short())
}
