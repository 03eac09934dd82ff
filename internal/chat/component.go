package chat

import "strings"

// Color is a named chat color.
type Color string

// Named chat colors.
const (
	Black       Color = "black"
	DarkBlue    Color = "dark_blue"
	DarkGreen   Color = "dark_green"
	DarkAqua    Color = "dark_aqua"
	DarkRed     Color = "dark_red"
	DarkPurple  Color = "dark_purple"
	Gold        Color = "gold"
	Gray        Color = "gray"
	DarkGray    Color = "dark_gray"
	Blue        Color = "blue"
	Green       Color = "green"
	Aqua        Color = "aqua"
	Red         Color = "red"
	LightPurple Color = "light_purple"
	Yellow      Color = "yellow"
	White       Color = "white"
)

// colors is indexed by the legacy format code of each color.
var colors = [16]Color{
	Black, DarkBlue, DarkGreen, DarkAqua, DarkRed, DarkPurple, Gold, Gray,
	DarkGray, Blue, Green, Aqua, Red, LightPurple, Yellow, White,
}

// ParseColor returns the named color for name, case-insensitively.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(name)
	for _, c := range colors {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// ClickEvent is an action performed when the component is clicked.
type ClickEvent struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

// HoverEvent is an action performed when the component is hovered.
type HoverEvent struct {
	Action string     `json:"action"`
	Value  *Component `json:"value,omitempty"`
}

// Component is a node of styled rich text. Exactly one of Text, Translate
// or Keybind carries the content; Extra holds children that inherit style.
type Component struct {
	Text      string      `json:"text"`
	Translate string      `json:"translate,omitempty"`
	With      []Component `json:"with,omitempty"`
	Keybind   string      `json:"keybind,omitempty"`

	Color         Color `json:"color,omitempty"`
	Bold          *bool `json:"bold,omitempty"`
	Italic        *bool `json:"italic,omitempty"`
	Underlined    *bool `json:"underlined,omitempty"`
	Strikethrough *bool `json:"strikethrough,omitempty"`
	Obfuscated    *bool `json:"obfuscated,omitempty"`

	Insertion  string      `json:"insertion,omitempty"`
	ClickEvent *ClickEvent `json:"clickEvent,omitempty"`
	HoverEvent *HoverEvent `json:"hoverEvent,omitempty"`

	Extra []Component `json:"extra,omitempty"`
}

// Text returns an unstyled component holding s.
func Text(s string) *Component {
	return &Component{Text: s}
}

// PlainText returns the text content of c and its children with all
// styling removed. Translatable and keybind content is rendered by key.
func (c *Component) PlainText() string {
	var b strings.Builder
	c.writePlain(&b)
	return b.String()
}

func (c *Component) writePlain(b *strings.Builder) {
	switch {
	case c.Translate != "":
		b.WriteString(c.Translate)
	case c.Keybind != "":
		b.WriteString(c.Keybind)
	default:
		b.WriteString(c.Text)
	}
	for i := range c.Extra {
		c.Extra[i].writePlain(b)
	}
}

func boolPtr(v bool) *bool {
	return &v
}
