// Package confloader provides configuration loading mechanism.
//
// This package implements a configuration loader that supports multiple
// sources and formats using koanf as the underlying library.
//
// Features:
//
//   - Multiple Sources: Files, environment variables, maps
//   - Formats: TOML (proxy documents and tool settings)
//   - Type Safety: Unmarshaling into typed structs
//   - Strict Access: typed accessors that fail on missing or mistyped keys
//
// Priority (highest to lowest) when [Loader.Load] is used:
//
//  1. Maps loaded after Load (command-line flags)
//  2. Environment variables
//  3. Configuration file
//  4. Maps loaded before Load (defaults)
package confloader
