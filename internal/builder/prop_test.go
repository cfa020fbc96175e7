package builder

import (
	"testing"

	"github.com/plasmahub/plasma-builder-backend/internal/meta"
)

func colorAPI(id, name string) meta.ComponentAPI {
	return meta.ComponentAPI{
		ID:   id,
		Name: name,
		Type: meta.TokenColor,
		PlatformMappings: meta.PlatformMappings{
			Web: []meta.WebToken{{Name: name}},
		},
	}
}

func TestNewPropDispatch(t *testing.T) {
	cases := []struct {
		tokenType meta.TokenType
		want      string
	}{
		{meta.TokenColor, "*builder.ColorProp"},
		{meta.TokenDimension, "*builder.DimensionProp"},
		{meta.TokenFloat, "*builder.FloatProp"},
		{meta.TokenShape, "*builder.ShapeProp"},
		{meta.TokenTypography, "*builder.TypographyProp"},
	}
	for _, tc := range cases {
		api := meta.ComponentAPI{ID: "t1", Name: "x", Type: tc.tokenType}
		prop := NewProp(api, meta.PropConfig{ID: "t1"})
		if prop.Type() != tc.tokenType {
			t.Errorf("%s: Type() = %q", tc.tokenType, prop.Type())
		}
		switch tc.tokenType {
		case meta.TokenColor:
			if _, ok := prop.(*ColorProp); !ok {
				t.Errorf("%s: got %T", tc.tokenType, prop)
			}
		case meta.TokenDimension:
			if _, ok := prop.(*DimensionProp); !ok {
				t.Errorf("%s: got %T", tc.tokenType, prop)
			}
		case meta.TokenFloat:
			if _, ok := prop.(*FloatProp); !ok {
				t.Errorf("%s: got %T", tc.tokenType, prop)
			}
		case meta.TokenShape:
			if _, ok := prop.(*ShapeProp); !ok {
				t.Errorf("%s: got %T", tc.tokenType, prop)
			}
		case meta.TokenTypography:
			if _, ok := prop.(*TypographyProp); !ok {
				t.Errorf("%s: got %T", tc.tokenType, prop)
			}
		}
	}
}

func TestDimensionPropRem(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"int px", 32, "2rem"},
		{"float px", 24.0, "1.5rem"},
		{"string px", "8", "0.5rem"},
		{"fractional", 10.0, "0.625rem"},
	}
	for _, tc := range cases {
		api := meta.ComponentAPI{
			ID: "dim", Name: "paddingLeft", Type: meta.TokenDimension,
			PlatformMappings: meta.PlatformMappings{Web: []meta.WebToken{{Name: "paddingLeft"}}},
		}
		prop := NewProp(api, meta.PropConfig{ID: "dim", Value: tc.value})
		tokens := prop.WebTokenValues(nil, "light")
		if len(tokens) != 1 {
			t.Fatalf("%s: got %d tokens, want 1", tc.name, len(tokens))
		}
		if tokens[0].Name != "--plasmaPaddingLeft" {
			t.Errorf("%s: name = %q", tc.name, tokens[0].Name)
		}
		if tokens[0].Value != tc.want {
			t.Errorf("%s: value = %q, want %q", tc.name, tokens[0].Value, tc.want)
		}
	}
}

func TestDimensionPropNonNumeric(t *testing.T) {
	api := meta.ComponentAPI{
		ID: "dim", Name: "gap", Type: meta.TokenDimension,
		PlatformMappings: meta.PlatformMappings{Web: []meta.WebToken{{Name: "gap"}}},
	}
	prop := NewProp(api, meta.PropConfig{ID: "dim", Value: "auto"})
	if tokens := prop.WebTokenValues(nil, "light"); tokens != nil {
		t.Errorf("non-numeric dimension produced %v", tokens)
	}
}

func TestColorPropLiteral(t *testing.T) {
	prop := NewProp(colorAPI("c1", "backgroundColor"), meta.PropConfig{ID: "c1", Value: "rebeccapurple"})
	tokens := prop.WebTokenValues(nil, "light")
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	if tokens[0].Value != "#663399" {
		t.Errorf("literal color = %q, want normalized hex", tokens[0].Value)
	}
}

func TestColorPropThemeLookup(t *testing.T) {
	theme := &MapTheme{Values: map[string]any{
		"dark.text.primary": "#f0f0f0",
	}}
	prop := NewProp(colorAPI("c1", "textColor"), meta.PropConfig{ID: "c1", Value: "text.primary"})
	tokens := prop.WebTokenValues(theme, "dark")
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	if tokens[0].Value != "#f0f0f0" {
		t.Errorf("theme color = %q", tokens[0].Value)
	}
}

func TestColorPropVarFallback(t *testing.T) {
	prop := NewProp(colorAPI("c1", "textColor"), meta.PropConfig{ID: "c1", Value: "text.secondary"})
	tokens := prop.WebTokenValues(nil, "light")
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	want := "var(--plasma-colors-text-secondary)"
	if tokens[0].Value != want {
		t.Errorf("fallback = %q, want %q", tokens[0].Value, want)
	}
}

func TestColorPropStateExtras(t *testing.T) {
	cfg := meta.PropConfig{
		ID:    "c1",
		Value: "#ffffff",
		States: []meta.TokenState{
			{State: []string{"hovered"}, Value: "#eeeeee"},
			{State: []string{"pressed"}, Value: "#dddddd"},
			{State: []string{"focused"}, Value: "#cccccc"},
		},
	}
	prop := NewProp(colorAPI("c1", "backgroundColor"), cfg)
	tokens := prop.WebTokenValues(nil, "light")

	// base token plus hovered and pressed extras; focused has no suffix
	// mapping and is skipped.
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(tokens), tokens)
	}
	byName := map[string]string{}
	for _, wt := range tokens {
		byName[wt.Name] = wt.Value
	}
	if byName["--plasmaBackgroundColor"] != "#ffffff" {
		t.Errorf("base = %q", byName["--plasmaBackgroundColor"])
	}
	if byName["--plasmaBackgroundColorHover"] != "#eeeeee" {
		t.Errorf("hover = %q", byName["--plasmaBackgroundColorHover"])
	}
	if byName["--plasmaBackgroundColorActive"] != "#dddddd" {
		t.Errorf("active = %q", byName["--plasmaBackgroundColorActive"])
	}
}

func TestFloatPropPassThrough(t *testing.T) {
	api := meta.ComponentAPI{
		ID: "f1", Name: "disabledOpacity", Type: meta.TokenFloat,
		PlatformMappings: meta.PlatformMappings{Web: []meta.WebToken{{Name: "disabledOpacity"}}},
	}
	prop := NewProp(api, meta.PropConfig{ID: "f1", Value: 0.4})
	tokens := prop.WebTokenValues(nil, "light")
	if len(tokens) != 1 || tokens[0].Value != "0.4" {
		t.Fatalf("got %v", tokens)
	}
}

func TestShapePropAdjustment(t *testing.T) {
	api := meta.ComponentAPI{
		ID: "s1", Name: "borderRadius", Type: meta.TokenShape,
		PlatformMappings: meta.PlatformMappings{Web: []meta.WebToken{{Name: "borderRadius"}}},
	}
	prop := NewProp(api, meta.PropConfig{ID: "s1", Value: "round.m", Adjustment: 4})
	tokens := prop.WebTokenValues(nil, "light")
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	want := "calc(var(--plasma-shapes-round-m) + 0.25rem)"
	if tokens[0].Value != want {
		t.Errorf("adjusted shape = %q, want %q", tokens[0].Value, want)
	}
}

func TestTypographyPropFanOut(t *testing.T) {
	api := meta.ComponentAPI{
		ID: "t1", Name: "linkFont", Type: meta.TokenTypography,
		PlatformMappings: meta.PlatformMappings{Web: []meta.WebToken{
			{Name: "linkFontFamily"},
			{Name: "linkFontSize"},
			{Name: "linkFontStyle"},
			{Name: "linkFontWeight"},
			{Name: "linkLetterSpacing"},
			{Name: "linkLineHeight"},
		}},
	}
	prop := NewProp(api, meta.PropConfig{ID: "t1", Value: "body.m.bold"})
	tokens := prop.WebTokenValues(nil, "light")
	if len(tokens) != 6 {
		t.Fatalf("got %d tokens, want 6: %v", len(tokens), tokens)
	}
	byName := map[string]string{}
	for _, wt := range tokens {
		byName[wt.Name] = wt.Value
	}
	if byName["--plasmaLinkFontSize"] != "0.875rem" {
		t.Errorf("fontSize = %q", byName["--plasmaLinkFontSize"])
	}
	if byName["--plasmaLinkFontWeight"] != "700" {
		t.Errorf("fontWeight = %q", byName["--plasmaLinkFontWeight"])
	}
	if byName["--plasmaLinkLineHeight"] != "1.25rem" {
		t.Errorf("lineHeight = %q", byName["--plasmaLinkLineHeight"])
	}
}

func TestTypographyPropUnknownName(t *testing.T) {
	api := meta.ComponentAPI{
		ID: "t1", Name: "linkFont", Type: meta.TokenTypography,
		PlatformMappings: meta.PlatformMappings{Web: []meta.WebToken{{Name: "linkFontSize"}}},
	}
	prop := NewProp(api, meta.PropConfig{ID: "t1", Value: "marquee.xxl"})
	if tokens := prop.WebTokenValues(nil, "light"); tokens != nil {
		t.Errorf("unknown typography resolved to %v", tokens)
	}
}

func TestApplyTemplateAdjustment(t *testing.T) {
	api := meta.ComponentAPI{
		ID: "f1", Name: "loaderOpacity", Type: meta.TokenFloat,
		PlatformMappings: meta.PlatformMappings{Web: []meta.WebToken{{Name: "loaderOpacity"}}},
	}
	prop := NewProp(api, meta.PropConfig{ID: "f1", Value: 0.5, Adjustment: "calc($1 * 2)"})
	tokens := prop.WebTokenValues(nil, "light")
	if len(tokens) != 1 || tokens[0].Value != "calc(0.5 * 2)" {
		t.Fatalf("got %v", tokens)
	}
}

func TestPropNilValueEmitsNothing(t *testing.T) {
	prop := NewProp(colorAPI("c1", "backgroundColor"), meta.PropConfig{ID: "c1"})
	if tokens := prop.WebTokenValues(nil, "light"); tokens != nil {
		t.Errorf("nil value produced %v", tokens)
	}
}

func TestPropDefaultSurvivesSetValue(t *testing.T) {
	prop := NewProp(colorAPI("c1", "backgroundColor"), meta.PropConfig{ID: "c1", Value: "#111111"})
	prop.SetValue("#222222")
	if prop.Default() != "#111111" {
		t.Errorf("Default() = %v after SetValue", prop.Default())
	}
	if prop.Value() != "#222222" {
		t.Errorf("Value() = %v", prop.Value())
	}
}

func TestRem(t *testing.T) {
	cases := []struct {
		px   float64
		want string
	}{
		{16, "1rem"},
		{32, "2rem"},
		{8, "0.5rem"},
		{0, "0rem"},
		{-16, "-1rem"},
	}
	for _, tc := range cases {
		if got := rem(tc.px); got != tc.want {
			t.Errorf("rem(%v) = %q, want %q", tc.px, got, tc.want)
		}
	}
}

func TestStateSuffix(t *testing.T) {
	cases := []struct {
		states []string
		want   string
	}{
		{[]string{"hovered"}, "Hover"},
		{[]string{"Pressed"}, "Active"},
		{[]string{"focused"}, ""},
		{[]string{"focused", "hovered"}, "Hover"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := stateSuffix(tc.states); got != tc.want {
			t.Errorf("stateSuffix(%v) = %q, want %q", tc.states, got, tc.want)
		}
	}
}
