package config

import (
	"fmt"
	"strings"

	"github.com/yndnr/velocity-go/internal/chat"
)

// MotdComponent returns the message of the day decoded into rich text.
//
// A motd starting with '{' is decoded as JSON chat; anything else is
// legacy text using '&' color codes. The result is decoded once and then
// shared between callers, who must not modify it. Decode errors are not
// cached.
func (c *Configuration) MotdComponent() (*chat.Component, error) {
	if cached := c.motdComponent.Load(); cached != nil {
		return cached, nil
	}

	decoded, err := decodeMotd(c.motd)
	if err != nil {
		return nil, fmt.Errorf("decode motd: %w", err)
	}

	c.motdComponent.Store(decoded)
	return decoded, nil
}

func decodeMotd(raw string) (*chat.Component, error) {
	if strings.HasPrefix(raw, "{") {
		return chat.DeserializeJSON(raw)
	}
	return chat.DeserializeLegacy(chat.TranslateAlternateColorCodes('&', raw), chat.SectionSign), nil
}
