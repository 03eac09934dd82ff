package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateAlternateColorCodes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"color code", "&cHello", "§cHello"},
		{"upper case code", "&CHello", "§CHello"},
		{"format codes", "&l&nBold", "§l§nBold"},
		{"reset", "&rplain", "§rplain"},
		{"not a code", "Tom & Jerry", "Tom & Jerry"},
		{"invalid code char", "&zoops", "&zoops"},
		{"trailing ampersand", "end&", "end&"},
		{"double ampersand", "&&cred", "&§cred"},
		{"no codes", "A Server", "A Server"},
		{"multibyte text", "&6Ünïcödé", "§6Ünïcödé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateAlternateColorCodes('&', tt.in))
		})
	}
}

func TestDeserializeLegacy_NoCodes(t *testing.T) {
	assert.Equal(t, &Component{Text: "A Server"}, DeserializeLegacy("A Server", SectionSign))
}

func TestDeserializeLegacy_RedHello(t *testing.T) {
	got := DeserializeLegacy("§cHello", SectionSign)

	want := &Component{
		Extra: []Component{{Text: "Hello", Color: Red}},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "Hello", got.PlainText())
}

func TestDeserializeLegacy_Runs(t *testing.T) {
	got := DeserializeLegacy("Welcome §6to §lthe §ashow§r!", SectionSign)

	want := &Component{
		Text: "Welcome ",
		Extra: []Component{
			{Text: "to ", Color: Gold},
			{Text: "the ", Color: Gold, Bold: boolPtr(true)},
			{Text: "show", Color: Green},
			{Text: "!"},
		},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "Welcome to the show!", got.PlainText())
}

func TestDeserializeLegacy_Decorations(t *testing.T) {
	got := DeserializeLegacy("§k§l§m§n§ox", SectionSign)

	want := &Component{
		Extra: []Component{{
			Text:          "x",
			Bold:          boolPtr(true),
			Italic:        boolPtr(true),
			Underlined:    boolPtr(true),
			Strikethrough: boolPtr(true),
			Obfuscated:    boolPtr(true),
		}},
	}
	assert.Equal(t, want, got)
}

func TestDeserializeLegacy_IgnoresUnknownCodes(t *testing.T) {
	got := DeserializeLegacy("§zA§", SectionSign)
	assert.Equal(t, &Component{Text: "§zA§"}, got)
}

func TestDeserializeLegacy_UpperCaseCode(t *testing.T) {
	got := DeserializeLegacy("§CHi", SectionSign)
	assert.Equal(t, &Component{Extra: []Component{{Text: "Hi", Color: Red}}}, got)
}

func TestLegacy_RoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"§cHello",
		"Welcome §6to §lthe §ashow§r!",
		"§l§nbold underlined§r then §9blue",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			first := DeserializeLegacy(in, SectionSign)
			second := DeserializeLegacy(first.Legacy(SectionSign), SectionSign)
			assert.Equal(t, first, second)
		})
	}
}

func TestLegacy_InheritsParentStyle(t *testing.T) {
	c := &Component{
		Text:  "a",
		Color: Red,
		Extra: []Component{
			{Text: "b", Bold: boolPtr(true)},
			{Text: "c", Color: Blue},
		},
	}
	assert.Equal(t, "§ca§c§lb§9c", c.Legacy(SectionSign))
}
