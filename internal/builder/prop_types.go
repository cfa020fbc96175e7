package builder

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/plasmahub/plasma-builder-backend/internal/meta"
)

// ColorProp resolves a semantic color path against the active theme, or
// falls back to a literal CSS custom-property reference. Declared interaction
// states each emit an extra suffixed variable.
type ColorProp struct {
	baseProp
}

func (p *ColorProp) WebTokenValues(theme Theme, themeMode string) []meta.WebToken {
	if p.value == nil || len(p.webTokens) == 0 {
		return nil
	}
	out := p.createWebTokens(resolveColor(theme, themeMode, stringify(p.value)))
	for _, st := range p.states {
		suffix := stateSuffix(st.State)
		if suffix == "" {
			continue
		}
		stateValue := resolveColor(theme, themeMode, stringify(st.Value))
		for _, wt := range p.webTokens {
			out = append(out, meta.WebToken{
				Name:  webTokenKey(wt.Name + suffix),
				Value: stateValue,
			})
		}
	}
	return out
}

// resolveColor turns a color value into its web representation. Literal CSS
// colors are normalized; semantic paths go through the theme when one is
// attached and otherwise become custom-property references.
func resolveColor(theme Theme, themeMode, value string) string {
	if c, err := csscolorparser.Parse(value); err == nil && !strings.Contains(value, ".") {
		return c.HexString()
	}
	if theme != nil {
		if v, ok := theme.TokenValue(themeMode+"."+value, meta.TokenColor, "web"); ok {
			return stringify(v)
		}
	}
	return cssVarReference("colors", value)
}

// DimensionProp converts pixel-like values to relative units.
type DimensionProp struct {
	baseProp
}

func (p *DimensionProp) WebTokenValues(theme Theme, themeMode string) []meta.WebToken {
	if p.value == nil || len(p.webTokens) == 0 {
		return nil
	}
	px, ok := toFloat(p.value)
	if !ok {
		return nil
	}
	return p.createWebTokens(rem(px))
}

// FloatProp passes its numeric value through unchanged.
type FloatProp struct {
	baseProp
}

func (p *FloatProp) WebTokenValues(theme Theme, themeMode string) []meta.WebToken {
	if p.value == nil || len(p.webTokens) == 0 {
		return nil
	}
	return p.createWebTokens(stringify(p.value))
}

// ShapeProp resolves a semantic radius path; a numeric adjustment wraps the
// result in a calc() expression adding the delta in relative units.
type ShapeProp struct {
	baseProp
}

func (p *ShapeProp) WebTokenValues(theme Theme, themeMode string) []meta.WebToken {
	if p.value == nil || len(p.webTokens) == 0 {
		return nil
	}
	path := stringify(p.value)
	resolved := ""
	if theme != nil {
		if v, ok := theme.TokenValue(path, meta.TokenShape, "web"); ok {
			resolved = stringify(v)
		}
	}
	if resolved == "" {
		resolved = cssVarReference("shapes", path)
	}
	if delta, ok := toFloat(p.adjustment); ok {
		resolved = fmt.Sprintf("calc(%s + %s)", resolved, rem(delta))
	}
	return p.createWebTokens(resolved)
}

// TypographyProp resolves a composite typography value and fans it out across
// the token's web sub-tokens, matching each sub-token to a composite field by
// its suffix.
type TypographyProp struct {
	baseProp
}

func (p *TypographyProp) WebTokenValues(theme Theme, themeMode string) []meta.WebToken {
	if p.value == nil || len(p.webTokens) == 0 {
		return nil
	}
	tv, ok := p.resolveComposite(theme)
	if !ok {
		return nil
	}
	out := make([]meta.WebToken, 0, len(p.webTokens))
	for _, wt := range p.webTokens {
		field, matched := typographyField(wt.Name, tv)
		if !matched {
			continue
		}
		out = append(out, meta.WebToken{
			Name:  webTokenKey(wt.Name),
			Value: p.applyTemplate(field),
		})
	}
	return out
}

func (p *TypographyProp) resolveComposite(theme Theme) (TypographyValue, bool) {
	name := stringify(p.value)
	if theme != nil {
		if v, ok := theme.TokenValue(name, meta.TokenTypography, "web"); ok {
			if tv, isComposite := v.(TypographyValue); isComposite {
				return tv, true
			}
		}
	}
	return lookupStaticTypography(name)
}

// cssVarReference renders the literal custom-property fallback for a semantic
// path, e.g. colors + "text.primary" -> var(--plasma-colors-text-primary).
func cssVarReference(group, path string) string {
	return "var(--plasma-" + group + "-" + strings.ReplaceAll(path, ".", "-") + ")"
}
