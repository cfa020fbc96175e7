package transformer

import (
	"testing"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/meta"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

// checkboxData is a small but complete design system: one Checkbox component
// with a size variation (s/m/l, m default), a color token gated by the
// variation, a typography token and an invariant opacity token.
func checkboxData() BackendData {
	return BackendData{
		DesignSystem: types.DesignSystem{ID: 1, Name: "plasma_b2c", Description: "Consumer theme"},
		Components: []types.Component{
			{ID: 4, Name: "Checkbox", Description: "A checkbox"},
		},
		Tokens: []types.Token{
			{ID: 40, ComponentID: 4, Name: "focusColor", Type: meta.TokenColor, WebParam: "focusColor"},
			{ID: 41, ComponentID: 4, Name: "disableAlpha", Type: meta.TokenFloat, WebParam: "disableAlpha"},
			{ID: 42, ComponentID: 4, Name: "labelFont", Type: meta.TokenTypography, WebParam: "label"},
		},
		Variations: []types.Variation{
			{ID: 9, ComponentID: 4, Name: "size"},
		},
		TokenVariations: []types.TokenVariation{
			{ID: 100, TokenID: 40, VariationID: 9},
		},
		VariationValues: []types.VariationValue{
			{ID: 22, VariationID: 9, ComponentID: 4, Name: "s", IsDefaultValue: "false"},
			{ID: 23, VariationID: 9, ComponentID: 4, Name: "m", IsDefaultValue: "true"},
			{ID: 24, VariationID: 9, ComponentID: 4, Name: "l", IsDefaultValue: "false"},
		},
		TokenValues: []types.TokenValue{
			{ID: 200, VariationValueID: 23, TokenID: 40, Value: "#00ff00", Type: meta.TokenColor, ComponentID: 4, DesignSystemID: 1},
		},
		InvariantTokenValues: []types.InvariantTokenValue{
			{ID: 300, TokenID: 41, Value: "0.4", Type: meta.TokenFloat, ComponentID: 4, DesignSystemID: 1},
		},
		PropsAPI: []types.PropsAPI{
			{ID: 400, ComponentID: 4, Name: "disabled", Type: "boolean", DefaultValue: "false"},
		},
	}
}

func newTestTransformer(opts ...Option) *FormatTransformer {
	return NewFormatTransformer(logger.NewNop(), opts...)
}

func TestBackendToClientCheckbox(t *testing.T) {
	payload, rep := newTestTransformer().TransformBackendToClient(checkboxData())

	if len(payload.ComponentsData) != 1 {
		t.Fatalf("components = %d, want 1", len(payload.ComponentsData))
	}
	cd := payload.ComponentsData[0]
	if cd.Name != "Checkbox" || cd.ID == "" {
		t.Errorf("component = (%q, %q)", cd.Name, cd.ID)
	}
	if len(cd.Sources.API) != 3 {
		t.Fatalf("api tokens = %d, want 3", len(cd.Sources.API))
	}
	if len(cd.Sources.Variations) != 1 {
		t.Fatalf("variations = %d, want 1", len(cd.Sources.Variations))
	}

	size := cd.Sources.Variations[0]
	if size.Name != "size" || len(size.TokenVariations) != 1 {
		t.Errorf("size variation = %+v", size)
	}
	focus := cd.Sources.FindAPI(size.TokenVariations[0].TokenID)
	if focus == nil || focus.Name != "focusColor" {
		t.Fatalf("token-variation link does not resolve to focusColor")
	}
	if len(focus.Variations) != 1 || focus.Variations[0] != size.ID {
		t.Errorf("inverse index = %v", focus.Variations)
	}

	if len(cd.Sources.Configs) != 1 {
		t.Fatalf("configs = %d, want 1", len(cd.Sources.Configs))
	}
	cfg := cd.Sources.Configs[0].Config
	if len(cfg.Variations) != 1 || len(cfg.Variations[0].Styles) != 3 {
		t.Fatalf("config styles = %+v", cfg.Variations)
	}
	names := map[string]meta.StyleConfig{}
	for _, style := range cfg.Variations[0].Styles {
		names[style.Name] = style
	}
	if len(names["m"].Props) != 1 || names["m"].Props[0].Value != "#00ff00" {
		t.Errorf("style m props = %+v", names["m"].Props)
	}
	if len(names["s"].Props) != 0 {
		t.Errorf("style s props = %+v", names["s"].Props)
	}

	if len(cfg.DefaultVariations) != 1 {
		t.Fatalf("defaults = %+v", cfg.DefaultVariations)
	}
	if cfg.DefaultVariations[0].StyleID != names["m"].ID {
		t.Errorf("default style is not m")
	}

	if len(cfg.InvariantProps) != 1 || cfg.InvariantProps[0].Value != "0.4" {
		t.Errorf("invariant props = %+v", cfg.InvariantProps)
	}

	if len(cd.Props) != 1 || cd.Props[0].Name != "disabled" {
		t.Errorf("props api = %+v", cd.Props)
	}
	if len(rep.DataLoss) == 0 {
		t.Error("propsAPI type drop not reported as data loss")
	}
}

func TestBackendToClientTypographyFanOut(t *testing.T) {
	payload, _ := newTestTransformer().TransformBackendToClient(checkboxData())
	api := payload.ComponentsData[0].Sources.API
	var label *meta.ComponentAPI
	for i := range api {
		if api[i].Name == "labelFont" {
			label = &api[i]
		}
	}
	if label == nil {
		t.Fatal("labelFont missing")
	}
	if len(label.PlatformMappings.Web) != 6 {
		t.Fatalf("web tokens = %d, want 6", len(label.PlatformMappings.Web))
	}
	if label.PlatformMappings.Web[0].Name != "labelFontFamily" {
		t.Errorf("first sub-token = %q", label.PlatformMappings.Web[0].Name)
	}
	if label.PlatformMappings.Web[5].Name != "labelLineHeight" {
		t.Errorf("last sub-token = %q", label.PlatformMappings.Web[5].Name)
	}
}

func TestBackendToClientEmptyCollections(t *testing.T) {
	data := BackendData{
		DesignSystem: types.DesignSystem{ID: 1, Name: "plasma_b2c"},
		Components:   []types.Component{{ID: 2, Name: "Divider"}},
	}
	payload, _ := newTestTransformer().TransformBackendToClient(data)
	if len(payload.ComponentsData) != 1 {
		t.Fatalf("components = %d, want 1", len(payload.ComponentsData))
	}
	cd := payload.ComponentsData[0]
	if cd.Sources.API == nil {
		t.Error("Sources.API is nil, serializes as null")
	}
	if cd.Sources.Variations == nil {
		t.Error("Sources.Variations is nil, serializes as null")
	}
	if cd.Props == nil {
		t.Error("Props is nil, serializes as null")
	}
}

func TestTransformCallsAreIndependent(t *testing.T) {
	trans := newTestTransformer()
	first, _ := trans.TransformBackendToClient(checkboxData())
	second, _ := trans.TransformBackendToClient(checkboxData())

	if first.ComponentsData[0].ID == second.ComponentsData[0].ID {
		t.Error("component id reused across calls")
	}
	if first.DesignSystem.ID == second.DesignSystem.ID {
		t.Error("design system id reused across calls")
	}
	if first.ComponentsData[0].Sources.API[0].ID == second.ComponentsData[0].Sources.API[0].ID {
		t.Error("token id reused across calls")
	}
}

func TestClientToBackendRoundTrip(t *testing.T) {
	trans := newTestTransformer()
	client, _ := trans.TransformBackendToClient(checkboxData())
	result, rep := trans.TransformClientToBackend(client)

	if result.DesignSystem.Name != "plasma_b2c" {
		t.Errorf("design system name = %q", result.DesignSystem.Name)
	}
	if len(result.Components) != 1 || result.Components[0].Name != "Checkbox" {
		t.Fatalf("components = %+v", result.Components)
	}
	if len(result.DesignSystemComponents) != 1 {
		t.Errorf("join rows = %d", len(result.DesignSystemComponents))
	}
	if result.DesignSystemComponents[0].ComponentID != result.Components[0].ID {
		t.Error("join row points at the wrong component")
	}
	if len(result.Tokens) != 3 {
		t.Fatalf("tokens = %d, want 3", len(result.Tokens))
	}
	tokensByName := map[string]types.Token{}
	for _, tok := range result.Tokens {
		tokensByName[tok.Name] = tok
	}
	if tokensByName["labelFont"].WebParam != "label" {
		t.Errorf("typography web param not collapsed: %q", tokensByName["labelFont"].WebParam)
	}
	if tokensByName["focusColor"].Type != meta.TokenColor {
		t.Errorf("focusColor type = %q", tokensByName["focusColor"].Type)
	}

	if len(result.Variations) != 1 || result.Variations[0].Name != "size" {
		t.Fatalf("variations = %+v", result.Variations)
	}
	if len(result.TokenVariations) != 1 {
		t.Errorf("token variations = %d", len(result.TokenVariations))
	}
	if result.TokenVariations[0].TokenID != tokensByName["focusColor"].ID {
		t.Error("token variation points at the wrong token")
	}

	if len(result.VariationValues) != 3 {
		t.Fatalf("variation values = %d, want 3", len(result.VariationValues))
	}
	defaults := map[string]string{}
	for _, vv := range result.VariationValues {
		defaults[vv.Name] = vv.IsDefaultValue
	}
	if defaults["m"] != "true" || defaults["s"] != "false" || defaults["l"] != "false" {
		t.Errorf("default flags = %v", defaults)
	}

	if len(result.TokenValues) != 1 {
		t.Fatalf("token values = %d, want 1", len(result.TokenValues))
	}
	tv := result.TokenValues[0]
	if tv.Value != "#00ff00" || tv.Type != meta.TokenColor {
		t.Errorf("token value = %+v", tv)
	}
	if tv.TokenID != tokensByName["focusColor"].ID {
		t.Error("token value points at the wrong token")
	}
	if tv.DesignSystemID != result.DesignSystem.ID {
		t.Error("token value not scoped to the new design system")
	}

	componentID := result.Components[0].ID
	invariants := result.InvariantPropConfigs[componentID]
	if len(invariants) != 1 || invariants[0].Value != "0.4" {
		t.Fatalf("invariant configs = %+v", result.InvariantPropConfigs)
	}
	if _, ok := result.TokenIDs[invariants[0].ID]; !ok {
		t.Error("invariant prop token missing from the id map")
	}

	if len(result.PropsAPI) != 1 || result.PropsAPI[0].Name != "disabled" {
		t.Errorf("props api = %+v", result.PropsAPI)
	}
	if len(rep.Warnings) == 0 {
		t.Error("invariant hand-back not reported")
	}
}

func TestClientToBackendDeterministicSequence(t *testing.T) {
	client, _ := newTestTransformer().TransformBackendToClient(checkboxData())

	trans := newTestTransformer(WithSequence(NewSequence(100)))
	result, _ := trans.TransformClientToBackend(client)
	if result.DesignSystem.ID != 100 {
		t.Errorf("design system id = %d, want 100", result.DesignSystem.ID)
	}
	if result.Components[0].ID != 101 {
		t.Errorf("component id = %d, want 101", result.Components[0].ID)
	}
}

func TestClientToBackendUnmappedTokenLink(t *testing.T) {
	client := meta.ClientPayload{
		DesignSystem: meta.ClientDesignSystem{ID: "ds", Name: "x"},
		ComponentsData: []meta.ComponentData{
			{
				ID:   "comp",
				Name: "Button",
				Sources: meta.Sources{
					Variations: []meta.ComponentVariation{
						{ID: "v1", Name: "view", TokenVariations: []meta.TokenVariationRef{
							{ID: "tv1", TokenID: "ghost-token"},
						}},
					},
				},
			},
		},
	}
	result, rep := newTestTransformer().TransformClientToBackend(client)
	if len(result.TokenVariations) != 0 {
		t.Errorf("unmapped link produced rows: %+v", result.TokenVariations)
	}
	if len(rep.Warnings) == 0 {
		t.Error("dropped link not reported")
	}
}

func TestWithoutStylePropExpansion(t *testing.T) {
	client, _ := newTestTransformer().TransformBackendToClient(checkboxData())
	result, rep := newTestTransformer(WithoutStylePropExpansion()).TransformClientToBackend(client)

	if len(result.TokenValues) != 0 {
		t.Errorf("expansion disabled but %d token values produced", len(result.TokenValues))
	}
	if len(result.VariationValues) != 3 {
		t.Errorf("variation values = %d, want 3", len(result.VariationValues))
	}
	found := false
	for _, w := range rep.Warnings {
		if w == `style "m" of component "Checkbox": props parsed but not expanded to token values` {
			found = true
		}
	}
	if !found {
		t.Errorf("missing expansion warning, got %v", rep.Warnings)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	seq := NewSequence(1)
	for want := uint(1); want <= 5; want++ {
		if got := seq.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
}

func TestStringifyValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"#00ff00", "#00ff00"},
		{0.4, "0.4"},
		{float64(48), "48"},
		{12, "12"},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := StringifyValue(tc.in); got != tc.want {
			t.Errorf("StringifyValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCollapseWebParam(t *testing.T) {
	cases := []struct {
		name string
		api  meta.ComponentAPI
		want string
	}{
		{
			"color single",
			meta.ComponentAPI{Type: meta.TokenColor, PlatformMappings: meta.PlatformMappings{Web: []meta.WebToken{{Name: "fillColor"}}}},
			"fillColor",
		},
		{
			"typography fan-out",
			meta.ComponentAPI{Type: meta.TokenTypography, PlatformMappings: meta.PlatformMappings{Web: []meta.WebToken{
				{Name: "labelFontFamily"}, {Name: "labelFontSize"},
			}}},
			"label",
		},
		{
			"empty",
			meta.ComponentAPI{Type: meta.TokenColor},
			"",
		},
	}
	for _, tc := range cases {
		if got := collapseWebParam(tc.api); got != tc.want {
			t.Errorf("%s: collapseWebParam = %q, want %q", tc.name, got, tc.want)
		}
	}
}
