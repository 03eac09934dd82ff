package config

import (
	"github.com/yndnr/velocity-go/internal/telemetry/logger"
)

// Checks reported by Validate.
const (
	CheckBind           = "bind"
	CheckOnlineMode     = "online_mode"
	CheckIPForwarding   = "ip_forwarding"
	CheckServers        = "servers"
	CheckFallbackOrder  = "fallback_order"
	CheckFallbackServer = "fallback_server"
)

type severity int

const (
	severityInfo severity = iota
	severityWarn
	severityError
)

// Issue is a defect that makes a configuration unfit to run.
type Issue struct {
	Check   string `json:"check" yaml:"check" toml:"check"`
	Message string `json:"message" yaml:"message" toml:"message"`
	// Server is set for CheckFallbackServer issues.
	Server string `json:"server,omitempty" yaml:"server,omitempty" toml:"server,omitempty" table:"wide"`
}

type diagnostic struct {
	severity severity
	Issue
}

// Validate reports the state of the configuration to log and returns
// whether it is fit to run. Every check is reported even after one fails.
// A nil log uses logger.Default().
func (c *Configuration) Validate(log logger.Logger) bool {
	if log == nil {
		log = logger.Default()
	}

	valid := true
	for _, d := range c.diagnose() {
		args := []any{"check", d.Check}
		if d.Server != "" {
			args = append(args, "server", d.Server)
		}

		switch d.severity {
		case severityInfo:
			log.Info(d.Message, args...)
		case severityWarn:
			log.Warn(d.Message, args...)
		case severityError:
			log.Error(d.Message, args...)
			valid = false
		}
	}
	return valid
}

// ValidationIssues returns the defects Validate would report at error
// level, without logging them.
func (c *Configuration) ValidationIssues() []Issue {
	var issues []Issue
	for _, d := range c.diagnose() {
		if d.severity == severityError {
			issues = append(issues, d.Issue)
		}
	}
	return issues
}

func (c *Configuration) diagnose() []diagnostic {
	var out []diagnostic
	add := func(s severity, check, msg string) {
		out = append(out, diagnostic{severity: s, Issue: Issue{Check: check, Message: msg}})
	}

	if c.bind == "" {
		add(severityError, CheckBind, "'bind' option is empty.")
	}

	if !c.onlineMode {
		add(severityInfo, CheckOnlineMode, "Proxy is running in offline mode!")
	}

	switch c.ipForwardingMode {
	case ForwardingNone:
		add(severityInfo, CheckIPForwarding, "IP forwarding is disabled! All players will appear to be connecting from the proxy and will have offline-mode UUIDs.")
	case ForwardingModern:
		add(severityWarn, CheckIPForwarding, "Modern IP forwarding is not currently implemented.")
	}

	if len(c.servers) == 0 {
		add(severityError, CheckServers, "You have no servers configured. :(")
		return out
	}

	if len(c.attemptConnectionOrder) == 0 {
		add(severityError, CheckFallbackOrder, "No fallback servers are configured!")
	}

	for _, name := range c.attemptConnectionOrder {
		if _, ok := c.servers[name]; !ok {
			out = append(out, diagnostic{
				severity: severityError,
				Issue: Issue{
					Check:   CheckFallbackServer,
					Message: "Fallback server " + name + " doesn't exist!",
					Server:  name,
				},
			})
		}
	}

	return out
}
