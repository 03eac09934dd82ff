package chat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedJSON is returned when a JSON chat document cannot be decoded.
var ErrMalformedJSON = errors.New("malformed chat json")

// DeserializeJSON decodes a JSON chat document. The document may be an
// object, a bare string, or an array whose first element is the parent of
// the remaining ones.
func DeserializeJSON(s string) (*Component, error) {
	var c Component
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		if errors.Is(err, ErrMalformedJSON) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return &c, nil
}

// SerializeJSON encodes c in the JSON chat format.
func SerializeJSON(c *Component) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Component) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty document", ErrMalformedJSON)
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Component{Text: s}
		return nil

	case '[':
		var parts []Component
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		if len(parts) == 0 {
			return fmt.Errorf("%w: empty component array", ErrMalformedJSON)
		}
		*c = parts[0]
		c.Extra = append(c.Extra, parts[1:]...)
		return nil

	case '{':
		type raw Component
		var obj struct {
			raw
			Text  *string `json:"text"`
			Color string  `json:"color"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Text == nil && obj.Translate == "" && obj.Keybind == "" {
			return fmt.Errorf("%w: component has no text, translate or keybind", ErrMalformedJSON)
		}
		*c = Component(obj.raw)
		if obj.Text != nil {
			c.Text = *obj.Text
		}
		// Unknown color names are ignored.
		c.Color, _ = ParseColor(obj.Color)
		return nil

	case 'n':
		return fmt.Errorf("%w: null component", ErrMalformedJSON)

	default:
		// Numbers and booleans become their literal text.
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = Component{Text: string(data)}
		return nil
	}
}

// MarshalJSON implements json.Marshaler. The text field is omitted for
// translatable and keybind components.
func (c Component) MarshalJSON() ([]byte, error) {
	type raw Component
	out := struct {
		Text *string `json:"text,omitempty"`
		raw
	}{raw: raw(c)}
	if c.Translate == "" && c.Keybind == "" {
		out.Text = &c.Text
	}
	return json.Marshal(out)
}
