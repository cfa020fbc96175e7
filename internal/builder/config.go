package builder

import (
	"github.com/plasmahub/plasma-builder-backend/internal/meta"
)

// Selector picks which stored ConfigEntry a Config loads.
type Selector struct {
	ID   string
	Name string
}

// Scope selects the props context an operation targets. Both ids set means
// one style's props; both empty means the invariant props.
type Scope struct {
	VariationID string
	StyleID     string
}

// Invariants is the scope of variation-independent props.
var Invariants = Scope{}

// Config owns one component's full configurable surface: its variations,
// invariant props and per-variation defaults. Every mutation the editor
// performs goes through here. Lookups never fail hard: a stale variation,
// style or token id is a no-op, so the editor can keep referencing entities
// the user just deleted.
type Config struct {
	id         string
	name       string
	api        []meta.ComponentAPI
	variations []*Variation
	invariants *Props
	defaults   []*Default
}

// NewConfig builds the component facade from a Meta and a config selector.
// When no stored entry matches, the Config comes up empty instead of
// failing.
func NewConfig(m meta.Meta, sel Selector) *Config {
	c := &Config{
		id:         sel.ID,
		name:       sel.Name,
		api:        m.Sources.API,
		invariants: NewProps(nil, m.Sources.API),
	}
	entry := findConfigEntry(m.Sources.Configs, sel)
	if entry == nil {
		return c
	}
	c.id = entry.ID
	c.name = entry.Name

	for _, vc := range entry.Config.Variations {
		name := ""
		if v := m.Sources.FindVariation(vc.ID); v != nil {
			name = v.Name
		}
		c.variations = append(c.variations, NewVariation(vc.ID, name, vc.Styles, m.Sources.API))
	}
	c.invariants = NewProps(entry.Config.InvariantProps, m.Sources.API)

	for _, dv := range entry.Config.DefaultVariations {
		variation := c.GetVariation(dv.VariationID)
		if variation == nil {
			continue
		}
		styleName := ""
		if s := variation.Style(dv.StyleID); s != nil {
			styleName = s.Name()
		}
		c.defaults = append(c.defaults, NewDefault(variation.Name(), dv.VariationID, styleName, dv.StyleID))
	}
	return c
}

func (c *Config) ID() string { return c.id }

func (c *Config) Name() string { return c.name }

func (c *Config) API() []meta.ComponentAPI { return c.api }

func (c *Config) GetVariations() []*Variation { return c.variations }

func (c *Config) GetDefaults() []*Default { return c.defaults }

func (c *Config) GetInvariants() *Props { return c.invariants }

// GetVariation returns the variation with the given id, or nil.
func (c *Config) GetVariation(variationID string) *Variation {
	for _, v := range c.variations {
		if v.ID() == variationID {
			return v
		}
	}
	return nil
}

// GetStyleByVariation returns the style currently set as the variation's
// default, or nil when the variation or its default is unknown.
func (c *Config) GetStyleByVariation(variationID string) *Style {
	variation := c.GetVariation(variationID)
	if variation == nil {
		return nil
	}
	for _, d := range c.defaults {
		if d.VariationID() == variationID {
			return variation.Style(d.StyleID())
		}
	}
	return nil
}

// getProps is the single scope dispatch point: a fully-specified scope means
// that style's props, anything else means the invariants.
func (c *Config) getProps(scope Scope) *Props {
	if scope.VariationID != "" && scope.StyleID != "" {
		style := c.GetVariation(scope.VariationID).Style(scope.StyleID)
		if style == nil {
			return nil
		}
		return style.Props()
	}
	return c.invariants
}

// GetProp returns the prop for a token id within a scope, or nil.
func (c *Config) GetProp(tokenID string, scope Scope) Prop {
	return c.getProps(scope).Get(tokenID)
}

// UpdateToken sets a token's value within a scope. Unknown token: no-op.
func (c *Config) UpdateToken(tokenID string, value any, scope Scope) {
	prop := c.getProps(scope).Get(tokenID)
	if prop == nil {
		return
	}
	prop.SetValue(value)
}

// AddToken introduces a token into a scope with an initial value. Tokens
// without an API descriptor are ignored.
func (c *Config) AddToken(tokenID string, value any, scope Scope) {
	props := c.getProps(scope)
	if props == nil || props.Get(tokenID) != nil {
		return
	}
	entry := findAPI(c.api, tokenID)
	if entry == nil {
		return
	}
	props.Add(NewProp(*entry, meta.PropConfig{ID: tokenID, Value: value}))
}

// RemoveToken drops a token from a scope. An empty scope targets the
// invariants.
func (c *Config) RemoveToken(tokenID string, scope Scope) {
	c.getProps(scope).Remove(tokenID)
}

// AddVariationStyle appends a blank style to a variation. The new style
// starts with no props at all: values are not copied from any sibling style.
func (c *Config) AddVariationStyle(variationID, name string) *Style {
	return c.GetVariation(variationID).AddStyle(name, c.api)
}

// RemoveVariationStyle drops a style from a variation.
func (c *Config) RemoveVariationStyle(variationID, styleID string) {
	c.GetVariation(variationID).RemoveStyle(styleID)
}

// AddTokenState appends a state override to a prop.
func (c *Config) AddTokenState(tokenID string, states []string, value any, scope Scope) {
	prop := c.getProps(scope).Get(tokenID)
	if prop == nil {
		return
	}
	prop.SetStates(append(prop.States(), meta.TokenState{State: states, Value: value}))
}

// UpdateTokenState replaces the state override at an index.
func (c *Config) UpdateTokenState(tokenID string, index int, states []string, value any, scope Scope) {
	prop := c.getProps(scope).Get(tokenID)
	if prop == nil {
		return
	}
	current := prop.States()
	if index < 0 || index >= len(current) {
		return
	}
	current[index] = meta.TokenState{State: states, Value: value}
	prop.SetStates(current)
}

// RemoveTokenState drops the state override at an index.
func (c *Config) RemoveTokenState(tokenID string, index int, scope Scope) {
	prop := c.getProps(scope).Get(tokenID)
	if prop == nil {
		return
	}
	current := prop.States()
	if index < 0 || index >= len(current) {
		return
	}
	prop.SetStates(append(current[:index], current[index+1:]...))
}

// UpdateTokenAdjustment sets or clears the adjustment on a prop.
func (c *Config) UpdateTokenAdjustment(tokenID string, adjustment any, scope Scope) {
	prop := c.getProps(scope).Get(tokenID)
	if prop == nil {
		return
	}
	prop.SetAdjustment(adjustment)
}

// UpdateDefaults re-points the default style of a variation and refreshes
// its cached style name.
func (c *Config) UpdateDefaults(variationID, newStyleID string) {
	variation := c.GetVariation(variationID)
	if variation == nil {
		return
	}
	style := variation.Style(newStyleID)
	if style == nil {
		return
	}
	for _, d := range c.defaults {
		if d.VariationID() == variationID {
			d.SetStyle(style.Name(), newStyleID)
			return
		}
	}
	c.defaults = append(c.defaults, NewDefault(variation.Name(), variationID, style.Name(), newStyleID))
}

// GetMeta serializes the graph back to the persisted config shape. It is the
// exact inverse of construction for every field the constructor reads.
func (c *Config) GetMeta() meta.ConfigData {
	data := meta.ConfigData{}
	for _, d := range c.defaults {
		data.DefaultVariations = append(data.DefaultVariations, meta.DefaultVariation{
			VariationID: d.VariationID(),
			StyleID:     d.StyleID(),
		})
	}
	data.InvariantProps = c.invariants.Configs()
	for _, v := range c.variations {
		data.Variations = append(data.Variations, v.Config())
	}
	return data
}

func findConfigEntry(entries []meta.ConfigEntry, sel Selector) *meta.ConfigEntry {
	for i := range entries {
		if (sel.ID != "" && entries[i].ID == sel.ID) || (sel.Name != "" && entries[i].Name == sel.Name) {
			return &entries[i]
		}
	}
	return nil
}
