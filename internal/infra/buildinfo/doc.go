// Package buildinfo exposes build information for velocity-config.
//
// Version, commit and build time are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/velocity-go/internal/infra/buildinfo.Version=v1.0.0"
//
// The Go version is read from the running binary.
package buildinfo
