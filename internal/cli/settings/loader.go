package settings

import (
	"fmt"

	"github.com/yndnr/velocity-go/internal/cli/output"
	"github.com/yndnr/velocity-go/internal/infra/confloader"
)

// Load resolves settings from defaults, the settings file at path (if
// any), the environment and overrides. Override keys use dotted paths
// such as "log.level"; the caller only sets keys for flags that were
// given explicitly.
func Load(path string, overrides map[string]any) (*Settings, error) {
	loader := confloader.NewLoader(confloader.WithConfigFile(path))

	if err := loader.LoadMap(defaultsMap()); err != nil {
		return nil, err
	}

	var s Settings
	if err := loader.Load(&s); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(&s); err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
	}

	if _, err := output.ParseFormat(s.Output.Format); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return &s, nil
}
