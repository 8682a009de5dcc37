// Package version reports build information for querykit binaries.
//
// Version, commit, branch and build time are set at link time and fall
// back to the VCS stamps in the binary's build info:
//
//	go build -ldflags "-X github.com/kbukum/querykit/version.Version=1.0.0" ./cmd/querysamples
package version
