// Package version holds the build version, overridable with
// -ldflags "-X github.com/RunningMSN/SPIDER/internal/version.Version=..."
package version

var Version = "0.3.0-dev"
