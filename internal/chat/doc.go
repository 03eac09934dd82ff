// Package chat implements the rich-text component model shown to Minecraft
// clients.
//
// Components can be decoded from the JSON chat format and from legacy
// section-sign formatted text:
//
//   - component.go: Component, Color and style fields
//   - json.go: JSON chat format codec
//   - legacy.go: legacy format codes and the alternate color code translator
package chat
