package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserializeJSON_Object(t *testing.T) {
	got, err := DeserializeJSON(`{"text":"A ","color":"gold","bold":true,"extra":[{"text":"Server","color":"AQUA"}]}`)
	require.NoError(t, err)

	want := &Component{
		Text:  "A ",
		Color: Gold,
		Bold:  boolPtr(true),
		Extra: []Component{{Text: "Server", Color: Aqua}},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "A Server", got.PlainText())
}

func TestDeserializeJSON_ExplicitFalseDecoration(t *testing.T) {
	got, err := DeserializeJSON(`{"text":"x","italic":false}`)
	require.NoError(t, err)
	require.NotNil(t, got.Italic)
	assert.False(t, *got.Italic)
	assert.Nil(t, got.Bold)
}

func TestDeserializeJSON_UnknownColorDropped(t *testing.T) {
	got, err := DeserializeJSON(`{"text":"x","color":"mauve"}`)
	require.NoError(t, err)
	assert.Empty(t, got.Color)
}

func TestDeserializeJSON_StringAndArray(t *testing.T) {
	got, err := DeserializeJSON(`"just text"`)
	require.NoError(t, err)
	assert.Equal(t, &Component{Text: "just text"}, got)

	got, err = DeserializeJSON(`[{"text":"a"},"b",{"text":"c","color":"red"}]`)
	require.NoError(t, err)
	assert.Equal(t, &Component{
		Text:  "a",
		Extra: []Component{{Text: "b"}, {Text: "c", Color: Red}},
	}, got)
}

func TestDeserializeJSON_TranslateAndEvents(t *testing.T) {
	got, err := DeserializeJSON(`{
		"translate": "chat.type.text",
		"with": ["Steve", {"text": "hi"}],
		"insertion": "Steve",
		"clickEvent": {"action": "open_url", "value": "https://example.com"},
		"hoverEvent": {"action": "show_text", "value": {"text": "tip"}}
	}`)
	require.NoError(t, err)

	assert.Equal(t, "chat.type.text", got.Translate)
	assert.Equal(t, []Component{{Text: "Steve"}, {Text: "hi"}}, got.With)
	assert.Equal(t, "Steve", got.Insertion)
	assert.Equal(t, &ClickEvent{Action: "open_url", Value: "https://example.com"}, got.ClickEvent)
	require.NotNil(t, got.HoverEvent)
	assert.Equal(t, &Component{Text: "tip"}, got.HoverEvent.Value)
}

func TestDeserializeJSON_Errors(t *testing.T) {
	inputs := map[string]string{
		"truncated":   `{"text":"x"`,
		"no content":  `{"color":"red"}`,
		"empty array": `[]`,
		"null":        `null`,
		"bad extra":   `{"text":"x","extra":[{"bold":true}]}`,
		"not json":    `{text}`,
		"empty":       ``,
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := DeserializeJSON(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedJSON)
			assert.Nil(t, got)
		})
	}
}

func TestSerializeJSON_RoundTrip(t *testing.T) {
	in := &Component{
		Text:  "Hello",
		Color: Red,
		Bold:  boolPtr(false),
		Extra: []Component{{Translate: "multiplayer.player.joined", With: []Component{{Text: "Alex"}}}},
	}

	s, err := SerializeJSON(in)
	require.NoError(t, err)
	assert.NotContains(t, s, `"extra":[{"text"`)

	out, err := DeserializeJSON(s)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSerializeJSON_OmitsUnsetFields(t *testing.T) {
	s, err := SerializeJSON(Text("plain"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"plain"}`, s)
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("Light_Purple")
	assert.True(t, ok)
	assert.Equal(t, LightPurple, c)

	_, ok = ParseColor("orange")
	assert.False(t, ok)
}
