// Package version provides the projectmap tool version.
package version

// Version is the projectmap tool version. Can be overridden at build time
// with:
//
//	go build -ldflags "-X github.com/ingo-eichhorst/projectmap/pkg/version.Version=1.2.3"
var Version = "dev"
