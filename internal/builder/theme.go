package builder

import (
	"github.com/plasmahub/plasma-builder-backend/internal/meta"
)

// Theme is the lookup contract of the external theme provider. Prop
// resolution asks it for semantic values ("dark.text.primary"); when no theme
// is attached, resolution degrades to literal CSS custom-property references.
type Theme interface {
	// TokenValue resolves a semantic path for the given token type and
	// platform. The second return is false when the path is unknown.
	TokenValue(path string, tokenType meta.TokenType, platform string) (any, bool)
	// Tokens enumerates the known semantic paths of one token type.
	Tokens(tokenType meta.TokenType) []string
}

// MapTheme is a minimal Theme backed by a flat path map. Tests and local
// tooling use it; production themes come from the theme builder service.
type MapTheme struct {
	Values map[string]any
}

func (m *MapTheme) TokenValue(path string, tokenType meta.TokenType, platform string) (any, bool) {
	if m == nil || m.Values == nil {
		return nil, false
	}
	v, ok := m.Values[path]
	return v, ok
}

func (m *MapTheme) Tokens(tokenType meta.TokenType) []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.Values))
	for k := range m.Values {
		out = append(out, k)
	}
	return out
}
