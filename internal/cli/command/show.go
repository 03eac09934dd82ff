package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/velocity-go/internal/cli/output"
	"github.com/yndnr/velocity-go/internal/proxy/config"
)

// ShowCommand returns the show command.
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the parsed configuration",
		ArgsUsage: "FILE",
		Action:    runShow,
	}
}

func runShow(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}

	cfg, err := config.Read(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	format, f := formatter(c)
	if format == output.FormatTOML {
		return f.Format(stdout(c), cfg.Document())
	}
	return f.Format(stdout(c), cfg.Summary())
}
