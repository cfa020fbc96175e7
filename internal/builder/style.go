package builder

import (
	"github.com/google/uuid"

	"github.com/plasmahub/plasma-builder-backend/internal/meta"
)

// Style is one named value of a variation, carrying its own prop overrides.
type Style struct {
	name          string
	id            string
	intersections any
	props         *Props
}

func NewStyle(data meta.StyleConfig, api []meta.ComponentAPI) *Style {
	return &Style{
		name:          data.Name,
		id:            data.ID,
		intersections: data.Intersections,
		props:         NewProps(data.Props, api),
	}
}

func (s *Style) Name() string { return s.name }
func (s *Style) ID() string { return s.id }
func (s *Style) Intersections() any { return s.intersections }
func (s *Style) Props() *Props { return s.props }

func (s *Style) Config() meta.StyleConfig {
	return meta.StyleConfig{
		Name:          s.name,
		ID:            s.id,
		Intersections: s.intersections,
		Props:         s.props.Configs(),
	}
}

// Variation is one configurable axis of a component, owning its styles in
// order.
type Variation struct {
	id     string
	name   string
	styles []*Style
}

func NewVariation(id, name string, styles []meta.StyleConfig, api []meta.ComponentAPI) *Variation {
	v := &Variation{id: id, name: name}
	for _, sc := range styles {
		v.styles = append(v.styles, NewStyle(sc, api))
	}
	return v
}

func (v *Variation) ID() string { return v.id }
func (v *Variation) Name() string { return v.name }
func (v *Variation) Styles() []*Style { return v.styles }

// Style returns the style with the given id, or nil.
func (v *Variation) Style(styleID string) *Style {
	if v == nil {
		return nil
	}
	for _, s := range v.styles {
		if s.id == styleID {
			return s
		}
	}
	return nil
}

// AddStyle appends a blank style: fresh id, no props. The new style inherits
// nothing from its siblings.
func (v *Variation) AddStyle(name string, api []meta.ComponentAPI) *Style {
	if v == nil {
		return nil
	}
	s := NewStyle(meta.StyleConfig{Name: name, ID: uuid.NewString(), Props: nil}, api)
	v.styles = append(v.styles, s)
	return s
}

// RemoveStyle drops the style with the given id, if present.
func (v *Variation) RemoveStyle(styleID string) {
	if v == nil {
		return
	}
	filtered := v.styles[:0]
	for _, s := range v.styles {
		if s.id != styleID {
			filtered = append(filtered, s)
		}
	}
	v.styles = filtered
}

func (v *Variation) Config() meta.VariationConfig {
	cfg := meta.VariationConfig{ID: v.id}
	for _, s := range v.styles {
		cfg.Styles = append(cfg.Styles, s.Config())
	}
	return cfg
}

// Default pairs a variation with the style currently chosen as its default.
type Default struct {
	variation   string
	variationID string
	style       string
	styleID     string
}

func NewDefault(variation, variationID, style, styleID string) *Default {
	return &Default{
		variation:   variation,
		variationID: variationID,
		style:       style,
		styleID:     styleID,
	}
}

func (d *Default) Variation() string { return d.variation }
func (d *Default) VariationID() string { return d.variationID }
func (d *Default) Style() string { return d.style }
func (d *Default) StyleID() string { return d.styleID }

// SetStyle re-points the default at another style of the same variation.
func (d *Default) SetStyle(style, styleID string) {
	d.style = style
	d.styleID = styleID
}
