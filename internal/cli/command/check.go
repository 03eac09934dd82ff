package command

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/velocity-go/internal/cli/output"
	"github.com/yndnr/velocity-go/internal/proxy/config"
	"github.com/yndnr/velocity-go/internal/telemetry/metric"
)

// checkReport is the printed result of a check.
type checkReport struct {
	File   string         `json:"file" yaml:"file" toml:"file"`
	Valid  bool           `json:"valid" yaml:"valid" toml:"valid"`
	Issues []config.Issue `json:"issues" yaml:"issues" toml:"issues"`
}

// CheckCommand returns the check command.
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Read and validate a configuration file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write check metrics to `PATH` in Prometheus text format",
			},
		},
		Action: runCheck,
	}
}

func runCheck(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}
	log := loggerFrom(c).With("file", path)
	reg := metric.NewRegistry()

	start := time.Now()
	cfg, err := config.Read(path)
	reg.RecordLoad(err, time.Since(start))
	if err != nil {
		log.Error("configuration could not be read", "error", err)
		if werr := writeMetrics(c, reg); werr != nil {
			log.Warn("metrics not written", "error", werr)
		}
		return cli.Exit("", 1)
	}

	log.Debug("configuration read", "config", cfg.String())

	valid := cfg.Validate(log)
	report := checkReport{
		File:   path,
		Valid:  valid,
		Issues: cfg.ValidationIssues(),
	}

	issues := make(map[string]int)
	for _, issue := range report.Issues {
		issues[issue.Check]++
	}
	reg.RecordCheck(metric.Check{
		Valid:           valid,
		Servers:         len(cfg.Servers()),
		FallbackServers: len(cfg.AttemptConnectionOrder()),
		Issues:          issues,
	})
	if err := writeMetrics(c, reg); err != nil {
		return err
	}

	if err := printReport(c, report); err != nil {
		return err
	}

	if !valid {
		return cli.Exit("", 1)
	}
	return nil
}

func printReport(c *cli.Context, report checkReport) error {
	format, f := formatter(c)
	if format != output.FormatTable {
		return f.Format(stdout(c), report)
	}

	if report.Valid {
		_, err := fmt.Fprintf(stdout(c), "%s: configuration is valid\n", report.File)
		return err
	}
	return f.Format(stdout(c), report.Issues)
}

func writeMetrics(c *cli.Context, reg *metric.Registry) error {
	path := c.String("metrics-file")
	if path == "" {
		return nil
	}
	return reg.WriteTextfile(path)
}
