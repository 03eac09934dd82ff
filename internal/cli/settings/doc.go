// Package settings defines the runtime settings of velocity-config.
//
// Settings are resolved from, in increasing priority:
//
//   - built-in defaults
//   - an optional TOML settings file
//   - VELOCITY_* environment variables (VELOCITY_LOG_LEVEL -> log.level)
//   - command-line flags
//
// These settings configure the tool only. The proxy configuration
// document it inspects is always named explicitly on the command line.
package settings
