// Package confloader provides configuration loading mechanism.
//
// It uses Koanf for flexible configuration loading from multiple
// sources with priority: Flag > Env > File > Default.
package confloader

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "VELOCITY_"

// Loader loads configuration from multiple sources.
type Loader struct {
	k         *koanf.Koanf
	delim     string
	envPrefix string
	filePath  string
	loaded    bool
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		delim:     ".",
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load loads configuration from the file and environment and unmarshals
// into target. Loading order (later sources override earlier):
//  1. Anything already loaded (e.g. defaults via LoadMap)
//  2. Configuration file (TOML)
//  3. Environment variables
func (l *Loader) Load(target any) error {
	if l.filePath != "" {
		if err := l.LoadFile(l.filePath); err != nil {
			return fmt.Errorf("load config file: %w", err)
		}
	}

	if err := l.LoadEnv(); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	if err := l.Unmarshal(target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	l.loaded = true
	return nil
}

// LoadFile loads configuration from a TOML file.
//
// The file is read in full and closed by the provider before parsing
// starts, so no handle outlives the call on either path.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	if err := l.k.Load(file.Provider(path), toml.Parser()); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}

	return nil
}

// LoadEnv loads configuration from environment variables.
// Environment variables use the format: VELOCITY_SECTION_KEY (uppercase, underscores).
// Example: VELOCITY_LOG_LEVEL=debug
func (l *Loader) LoadEnv() error {
	// VELOCITY_LOG_LEVEL -> log.level
	envTransformer := func(s string) string {
		s = strings.TrimPrefix(s, l.envPrefix)
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "_", l.delim)
		return s
	}

	provider := env.Provider(l.envPrefix, l.delim, envTransformer)
	if err := l.k.Load(provider, nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	return nil
}

// LoadMap loads configuration from a map (useful for flags or testing).
// Dotted keys such as "log.level" are expanded into nested tables.
func (l *Loader) LoadMap(data map[string]any) error {
	if err := l.k.Load(mapProvider(maps.Unflatten(data, l.delim)), nil); err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	return nil
}

// Unmarshal unmarshals the loaded configuration into the target struct.
// Uses koanf tags for struct field mapping.
func (l *Loader) Unmarshal(target any) error {
	return l.k.Unmarshal("", target)
}

// Lookup returns the raw value stored under key and whether it exists.
// Tables are returned as map[string]any copies.
func (l *Loader) Lookup(key string) (any, bool) {
	if l.k.Exists(key) {
		return l.k.Get(key), true
	}

	// Empty tables are not always indexed by koanf; walk the tree instead.
	var cur any = l.k.Raw()
	for _, part := range strings.Split(key, l.delim) {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the string stored under key.
func (l *Loader) String(key string) (string, error) {
	v, ok := l.Lookup(key)
	if !ok {
		return "", missing(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(key, "string", v)
	}
	return s, nil
}

// Int64 returns the integer stored under key. Floating point values are
// rejected even when they have no fractional part.
func (l *Loader) Int64(key string) (int64, error) {
	v, ok := l.Lookup(key)
	if !ok {
		return 0, missing(key)
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	default:
		return 0, wrongType(key, "integer", v)
	}
}

// Bool returns the boolean stored under key.
func (l *Loader) Bool(key string) (bool, error) {
	v, ok := l.Lookup(key)
	if !ok {
		return false, missing(key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, wrongType(key, "boolean", v)
	}
	return b, nil
}

// Table returns the table stored under key.
func (l *Loader) Table(key string) (map[string]any, error) {
	v, ok := l.Lookup(key)
	if !ok {
		return nil, missing(key)
	}
	t, ok := v.(map[string]any)
	if !ok {
		return nil, wrongType(key, "table", v)
	}
	return t, nil
}

// StringSlice returns the list of strings stored under key.
func (l *Loader) StringSlice(key string) ([]string, error) {
	v, ok := l.Lookup(key)
	if !ok {
		return nil, missing(key)
	}
	return AsStringSlice(key, v)
}

// AsStringSlice converts a decoded list value into []string, failing with a
// *FieldError naming key if v is not a list or holds a non-string element.
func AsStringSlice(key string, v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, wrongType(fmt.Sprintf("%s[%d]", key, i), "string", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, wrongType(key, "list of strings", v)
	}
}

// GetString returns a string value, coercing and defaulting like koanf.
func (l *Loader) GetString(key string) string {
	return l.k.String(key)
}

// GetBool returns a bool value, coercing and defaulting like koanf.
func (l *Loader) GetBool(key string) bool {
	return l.k.Bool(key)
}

// IsLoaded returns true if configuration has been loaded.
func (l *Loader) IsLoaded() bool {
	return l.loaded
}

// Keys returns all configuration keys.
func (l *Loader) Keys() []string {
	return l.k.Keys()
}
