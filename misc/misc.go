// Package misc provides build information helpers shared by all binaries.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "svgray"

// GetAppName returns short program name used in logs, temporary files and reports.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi
	}
	return &debug.BuildInfo{}
})

// GetVersion returns module version recorded by the Go toolchain.
func GetVersion() string {
	if v := buildInfo().Main.Version; v != "" {
		return v
	}
	return "(devel)"
}

// GetGitHash returns VCS revision this binary was built from, if recorded.
func GetGitHash() string {
	for _, s := range buildInfo().Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}
