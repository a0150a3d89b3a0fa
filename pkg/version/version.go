// Package version holds the setupgen build version.
package version

// Version is overridden at build time via -ldflags "-X setupgen/pkg/version.Version=...".
var Version = "dev"
