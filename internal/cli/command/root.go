package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/velocity-go/internal/cli/output"
	"github.com/yndnr/velocity-go/internal/cli/settings"
	"github.com/yndnr/velocity-go/internal/infra/buildinfo"
	"github.com/yndnr/velocity-go/internal/telemetry/logger"
)

const settingsKey = "settings"

// errMissingFile is returned when a command is run without a document path.
var errMissingFile = errors.New("configuration file argument is required")

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "velocity-config",
		Usage:   "Inspect and validate Velocity proxy configuration files",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			CheckCommand(),
			ShowCommand(),
			MotdCommand(),
		},
		Before: setup,
	}
}

// globalFlags returns the global CLI flags. Flags only override settings
// when given explicitly.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "settings",
			Usage: "Path to a TOML settings file for this tool",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml, toml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
	}
}

// flagOverrides maps explicitly set global flags to settings keys.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = c.String("log-format")
	}
	if c.IsSet("output") {
		overrides["output.format"] = c.String("output")
	}
	if c.IsSet("wide") {
		overrides["output.wide"] = c.Bool("wide")
	}
	return overrides
}

// setup resolves settings and installs the logger before any command runs.
func setup(c *cli.Context) error {
	s, err := settings.Load(c.String("settings"), flagOverrides(c))
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  s.Log.Level,
		Format: s.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[settingsKey] = s
	c.Context = logger.WithLogger(c.Context, log)
	return nil
}

// Settings returns the resolved settings, or the defaults before setup.
func Settings(c *cli.Context) *settings.Settings {
	if s, ok := c.App.Metadata[settingsKey].(*settings.Settings); ok {
		return s
	}
	return settings.Default()
}

func loggerFrom(c *cli.Context) logger.Logger {
	return logger.FromContext(c.Context)
}

// formatter returns the formatter selected by the output settings.
func formatter(c *cli.Context) (output.Format, output.Formatter) {
	s := Settings(c)
	format, err := output.ParseFormat(s.Output.Format)
	if err != nil {
		format = output.FormatTable
	}
	return format, output.NewFormatter(format, s.Output.Wide)
}

// fileArg returns the single document path argument.
func fileArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(fmt.Sprintf("%s: %v", c.Command.Name, errMissingFile), 2)
	}
	return c.Args().First(), nil
}

func stdout(c *cli.Context) io.Writer {
	return c.App.Writer
}
