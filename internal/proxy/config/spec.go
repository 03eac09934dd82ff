package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/yndnr/velocity-go/internal/chat"
)

// ErrUnknownForwardingMode is returned when ip-forwarding names no known mode.
var ErrUnknownForwardingMode = errors.New("unknown ip forwarding mode")

// IPForwardingMode controls how a player's real address reaches backends.
type IPForwardingMode int

// IP forwarding modes.
const (
	// ForwardingNone does not forward player addresses.
	ForwardingNone IPForwardingMode = iota
	// ForwardingModern is the modern forwarding scheme.
	ForwardingModern
)

var forwardingNames = map[IPForwardingMode]string{
	ForwardingNone:   "NONE",
	ForwardingModern: "MODERN",
}

// ParseIPForwardingMode matches s case-insensitively against the mode names.
func ParseIPForwardingMode(s string) (IPForwardingMode, error) {
	upper := strings.ToUpper(s)
	for mode, name := range forwardingNames {
		if name == upper {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownForwardingMode, s)
}

func (m IPForwardingMode) String() string {
	if name, ok := forwardingNames[m]; ok {
		return name
	}
	return fmt.Sprintf("IPForwardingMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m IPForwardingMode) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

// Configuration is the proxy startup configuration. It is created by Read
// and never modified afterwards.
type Configuration struct {
	bind                   string
	motd                   string
	showMaxPlayers         int32
	onlineMode             bool
	ipForwardingMode       IPForwardingMode
	servers                map[string]string
	attemptConnectionOrder []string

	// motdComponent caches the decoded motd. Concurrent first calls may
	// each decode; every result is equal, so whichever store lands is kept.
	motdComponent atomic.Pointer[chat.Component]
}

// Bind returns the address the proxy listens on.
func (c *Configuration) Bind() string {
	return c.bind
}

// Motd returns the raw message of the day as written in the document.
func (c *Configuration) Motd() string {
	return c.motd
}

// ShowMaxPlayers returns the player limit advertised to clients.
func (c *Configuration) ShowMaxPlayers() int32 {
	return c.showMaxPlayers
}

// OnlineMode reports whether player identities are authenticated.
func (c *Configuration) OnlineMode() bool {
	return c.onlineMode
}

// IPForwardingMode returns the configured forwarding mode.
func (c *Configuration) IPForwardingMode() IPForwardingMode {
	return c.ipForwardingMode
}

// Servers returns a copy of the server name to address mapping.
func (c *Configuration) Servers() map[string]string {
	return maps.Clone(c.servers)
}

// AttemptConnectionOrder returns a copy of the fallback server order.
func (c *Configuration) AttemptConnectionOrder() []string {
	return slices.Clone(c.attemptConnectionOrder)
}
