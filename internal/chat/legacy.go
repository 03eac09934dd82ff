package chat

import (
	"strings"
	"unicode"
)

// SectionSign is the legacy format code prefix understood by clients.
const SectionSign = '§'

// formatChars lists every legacy format code: colors 0-f, then
// obfuscated, bold, strikethrough, underlined, italic and reset.
const formatChars = "0123456789abcdefklmnor"

// TranslateAlternateColorCodes replaces every alt character that is
// followed by a format code with SectionSign. Other occurrences of alt are
// kept as they are.
func TranslateAlternateColorCodes(alt rune, text string) string {
	runes := []rune(text)
	pending := -1
	for i, r := range runes {
		if r == alt {
			pending = i
			continue
		}
		if pending >= 0 {
			if strings.ContainsRune(formatChars, unicode.ToLower(r)) {
				runes[pending] = SectionSign
			}
			pending = -1
		}
	}
	return string(runes)
}

type style struct {
	color         Color
	bold          bool
	italic        bool
	underlined    bool
	strikethrough bool
	obfuscated    bool
}

func (s style) apply(code rune) style {
	switch code {
	case 'k':
		s.obfuscated = true
	case 'l':
		s.bold = true
	case 'm':
		s.strikethrough = true
	case 'n':
		s.underlined = true
	case 'o':
		s.italic = true
	case 'r':
		return style{}
	default:
		// Colors reset all decorations.
		return style{color: colors[strings.IndexRune(formatChars, code)]}
	}
	return s
}

func (s style) component(text string) Component {
	c := Component{Text: text, Color: s.color}
	if s.bold {
		c.Bold = boolPtr(true)
	}
	if s.italic {
		c.Italic = boolPtr(true)
	}
	if s.underlined {
		c.Underlined = boolPtr(true)
	}
	if s.strikethrough {
		c.Strikethrough = boolPtr(true)
	}
	if s.obfuscated {
		c.Obfuscated = boolPtr(true)
	}
	return c
}

// DeserializeLegacy decodes text formatted with legacy codes introduced by
// code. Text before the first format code becomes the root content, and
// every following styled run becomes one child of the root.
func DeserializeLegacy(text string, code rune) *Component {
	root := &Component{}
	var (
		cur     style
		buf     strings.Builder
		started bool
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		if started {
			root.Extra = append(root.Extra, cur.component(buf.String()))
		} else {
			root.Text = buf.String()
		}
		buf.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == code && i+1 < len(runes) {
			f := unicode.ToLower(runes[i+1])
			if strings.ContainsRune(formatChars, f) {
				flush()
				cur = cur.apply(f)
				started = true
				i++
				continue
			}
		}
		buf.WriteRune(runes[i])
	}
	flush()

	return root
}

// Legacy renders c as legacy formatted text using code as the format
// prefix. Styles are inherited from parents as clients do.
func (c *Component) Legacy(code rune) string {
	var (
		b    strings.Builder
		prev style
	)
	c.writeLegacy(&b, code, style{}, &prev)
	return b.String()
}

func (c *Component) writeLegacy(b *strings.Builder, code rune, parent style, prev *style) {
	s := parent
	if c.Color != "" {
		s.color = c.Color
	}
	inherit(&s.bold, c.Bold)
	inherit(&s.italic, c.Italic)
	inherit(&s.underlined, c.Underlined)
	inherit(&s.strikethrough, c.Strikethrough)
	inherit(&s.obfuscated, c.Obfuscated)

	content := c.Text
	switch {
	case c.Translate != "":
		content = c.Translate
	case c.Keybind != "":
		content = c.Keybind
	}

	if content != "" {
		if s != *prev {
			writeStyle(b, code, s, *prev)
			*prev = s
		}
		b.WriteString(content)
	}

	for i := range c.Extra {
		c.Extra[i].writeLegacy(b, code, s, prev)
	}
}

func inherit(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func writeStyle(b *strings.Builder, code rune, s, prev style) {
	switch {
	case s.color != "":
		for i, c := range colors {
			if c == s.color {
				b.WriteRune(code)
				b.WriteByte(formatChars[i])
				break
			}
		}
	case prev != (style{}):
		b.WriteRune(code)
		b.WriteByte('r')
	}

	flags := []struct {
		on   bool
		char byte
	}{
		{s.obfuscated, 'k'},
		{s.bold, 'l'},
		{s.strikethrough, 'm'},
		{s.underlined, 'n'},
		{s.italic, 'o'},
	}
	for _, f := range flags {
		if f.on {
			b.WriteRune(code)
			b.WriteByte(f.char)
		}
	}
}
