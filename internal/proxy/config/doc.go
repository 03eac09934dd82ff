// Package config provides the proxy startup configuration.
//
// This package defines the configuration model and its lifecycle:
//
//   - spec.go: Configuration and IPForwardingMode
//   - read.go: Read, loading a TOML document through internal/infra/confloader
//   - verify.go: Validate, the admission report over a loaded configuration
//   - motd.go: lazily decoded message of the day
//   - summary.go: diagnostic representations
//
// A Configuration is immutable once Read returns it. Read only rejects
// documents that do not have the expected shape; whether a well-formed
// configuration is sensible to run is decided by Validate, which reports
// every defect in one pass.
package config
