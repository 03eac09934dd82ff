// Package output provides output formatting for velocity-config.
//
// Supported formats:
//
//   - table: aligned columns via text/tabwriter
//   - json: indented JSON
//   - yaml: YAML via gopkg.in/yaml.v3
//   - toml: TOML via github.com/pelletier/go-toml/v2
package output
