package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/velocity-go/internal/chat"
	"github.com/yndnr/velocity-go/internal/proxy/config"
)

// MOTD renderings.
const (
	motdPlain  = "plain"
	motdLegacy = "legacy"
	motdJSON   = "json"
)

// MotdCommand returns the motd command.
func MotdCommand() *cli.Command {
	return &cli.Command{
		Name:      "motd",
		Usage:     "Print the decoded message of the day",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Rendering: plain, legacy, json",
				Value: motdPlain,
			},
		},
		Action: runMotd,
	}
}

func runMotd(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}

	cfg, err := config.Read(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	component, err := cfg.MotdComponent()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var text string
	switch c.String("format") {
	case motdPlain:
		text = component.PlainText()
	case motdLegacy:
		text = component.Legacy('&')
	case motdJSON:
		if text, err = chat.SerializeJSON(component); err != nil {
			return err
		}
	default:
		return cli.Exit(fmt.Sprintf("unknown motd format %q", c.String("format")), 2)
	}

	_, err = fmt.Fprintln(stdout(c), text)
	return err
}
