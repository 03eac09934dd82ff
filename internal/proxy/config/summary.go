package config

import "fmt"

// Summary is a flat, exported view of a Configuration for display.
type Summary struct {
	Bind           string            `json:"bind" yaml:"bind"`
	Motd           string            `json:"motd" yaml:"motd"`
	ShowMaxPlayers int32             `json:"show_max_players" yaml:"show_max_players"`
	OnlineMode     bool              `json:"online_mode" yaml:"online_mode"`
	IPForwarding   IPForwardingMode  `json:"ip_forwarding" yaml:"ip_forwarding"`
	Servers        map[string]string `json:"servers" yaml:"servers"`
	Try            []string          `json:"try" yaml:"try"`
}

// Summary returns the display view of c.
func (c *Configuration) Summary() Summary {
	return Summary{
		Bind:           c.bind,
		Motd:           c.motd,
		ShowMaxPlayers: c.showMaxPlayers,
		OnlineMode:     c.onlineMode,
		IPForwarding:   c.ipForwardingMode,
		Servers:        c.Servers(),
		Try:            c.AttemptConnectionOrder(),
	}
}

// Document returns c in the shape of the configuration document, suitable
// for encoding back to TOML.
func (c *Configuration) Document() map[string]any {
	servers := make(map[string]any, len(c.servers)+1)
	for name, addr := range c.servers {
		servers[name] = addr
	}
	servers[keyTry] = c.AttemptConnectionOrder()

	return map[string]any{
		keyBind:           c.bind,
		keyMotd:           c.motd,
		keyShowMaxPlayers: int64(c.showMaxPlayers),
		keyOnlineMode:     c.onlineMode,
		keyIPForwarding:   c.ipForwardingMode.String(),
		keyServers:        servers,
	}
}

// String returns a one-line description of every field, for logs.
func (c *Configuration) String() string {
	return fmt.Sprintf(
		"Configuration{bind=%q, motd=%q, showMaxPlayers=%d, onlineMode=%t, ipForwardingMode=%s, servers=%v, attemptConnectionOrder=%v}",
		c.bind, c.motd, c.showMaxPlayers, c.onlineMode, c.ipForwardingMode, c.servers, c.attemptConnectionOrder,
	)
}
