package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plasmahub/plasma-builder-backend/internal/meta"
)

// baseFontSize is the root font size the web platform converts pixel units
// against.
const baseFontSize = 16

// Prop holds one token's value inside one configuration scope (invariants or
// a single style) and knows how to derive the platform output tokens for it.
// The concrete type is fixed once, at construction, by the token's semantic
// type.
type Prop interface {
	TokenID() string
	Name() string
	Type() meta.TokenType

	Value() any
	SetValue(v any)
	// Default is the value the prop was constructed with. The editor compares
	// it against Value to decide whether to show a reset control.
	Default() any

	States() []meta.TokenState
	SetStates(states []meta.TokenState)
	Adjustment() any
	SetAdjustment(adjustment any)

	WebTokens() []meta.WebToken
	// WebTokenValues computes the web output tokens for the current value.
	// A nil value or an empty web mapping yields no output.
	WebTokenValues(theme Theme, themeMode string) []meta.WebToken

	// Config serializes the prop back to its persisted shape.
	Config() meta.PropConfig
}

// NewProp builds the typed prop for one PropConfig, using the token's API
// descriptor for name, type and web mapping.
func NewProp(api meta.ComponentAPI, cfg meta.PropConfig) Prop {
	base := baseProp{
		tokenID:    api.ID,
		name:       api.Name,
		tokenType:  api.Type,
		value:      cfg.Value,
		def:        cfg.Value,
		states:     cfg.States,
		adjustment: cfg.Adjustment,
		webTokens:  api.PlatformMappings.Web,
	}
	switch api.Type {
	case meta.TokenColor:
		return &ColorProp{baseProp: base}
	case meta.TokenDimension:
		return &DimensionProp{baseProp: base}
	case meta.TokenFloat:
		return &FloatProp{baseProp: base}
	case meta.TokenShape:
		return &ShapeProp{baseProp: base}
	case meta.TokenTypography:
		return &TypographyProp{baseProp: base}
	default:
		return &FloatProp{baseProp: base}
	}
}

type baseProp struct {
	tokenID    string
	name       string
	tokenType  meta.TokenType
	value      any
	def        any
	states     []meta.TokenState
	adjustment any
	webTokens  []meta.WebToken
}

func (p *baseProp) TokenID() string                    { return p.tokenID }
func (p *baseProp) Name() string                       { return p.name }
func (p *baseProp) Type() meta.TokenType               { return p.tokenType }
func (p *baseProp) Value() any                         { return p.value }
func (p *baseProp) SetValue(v any)                     { p.value = v }
func (p *baseProp) Default() any                       { return p.def }
func (p *baseProp) States() []meta.TokenState          { return p.states }
func (p *baseProp) SetStates(states []meta.TokenState) { p.states = states }
func (p *baseProp) Adjustment() any                    { return p.adjustment }
func (p *baseProp) SetAdjustment(adjustment any)       { p.adjustment = adjustment }
func (p *baseProp) WebTokens() []meta.WebToken         { return p.webTokens }

func (p *baseProp) Config() meta.PropConfig {
	return meta.PropConfig{
		ID:         p.tokenID,
		Value:      p.value,
		States:     p.states,
		Adjustment: p.adjustment,
	}
}

// createWebTokens emits one output entry per declared web token for an
// already-resolved value, applying a "$1" template adjustment when one is
// set.
func (p *baseProp) createWebTokens(resolved string) []meta.WebToken {
	out := make([]meta.WebToken, 0, len(p.webTokens))
	for _, wt := range p.webTokens {
		out = append(out, meta.WebToken{
			Name:  webTokenKey(wt.Name),
			Value: p.applyTemplate(resolved),
		})
	}
	return out
}

func (p *baseProp) applyTemplate(value string) string {
	tmpl, ok := p.adjustment.(string)
	if !ok || !strings.Contains(tmpl, "$1") {
		return value
	}
	return strings.ReplaceAll(tmpl, "$1", value)
}

// webTokenKey renders the CSS custom-property key for a web token name.
func webTokenKey(name string) string {
	return "--plasma" + capitalize(name)
}

// stateSuffixes maps interaction states onto the suffix of the extra CSS
// variable emitted for them.
var stateSuffixes = map[string]string{
	"hovered": "Hover",
	"pressed": "Active",
}

func stateSuffix(states []string) string {
	for _, s := range states {
		if suffix, ok := stateSuffixes[strings.ToLower(s)]; ok {
			return suffix
		}
	}
	return ""
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// rem formats a pixel-like quantity as a relative unit.
func rem(px float64) string {
	return strconv.FormatFloat(px/baseFontSize, 'f', -1, 64) + "rem"
}
