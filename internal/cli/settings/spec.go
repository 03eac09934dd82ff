package settings

// Settings is the configuration of velocity-config itself.
type Settings struct {
	Log    LogSettings    `koanf:"log"`
	Output OutputSettings `koanf:"output"`
}

// LogSettings controls diagnostic logging.
type LogSettings struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
}

// OutputSettings controls how command results are printed.
type OutputSettings struct {
	Format string `koanf:"format"` // table, json, yaml, toml
	Wide   bool   `koanf:"wide"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
		Output: OutputSettings{
			Format: "table",
		},
	}
}

func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"log.level":     d.Log.Level,
		"log.format":    d.Log.Format,
		"output.format": d.Output.Format,
		"output.wide":   d.Output.Wide,
	}
}
