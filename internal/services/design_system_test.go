package services

import (
	"testing"

	"github.com/plasmahub/plasma-builder-backend/internal/meta"
	"github.com/plasmahub/plasma-builder-backend/internal/transformer"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

func invariantResult() transformer.BackendResult {
	return transformer.BackendResult{
		BackendData: transformer.BackendData{
			DesignSystem: types.DesignSystem{ID: 1, Name: "plasma_b2c"},
			Tokens: []types.Token{
				{ID: 41, ComponentID: 4, Name: "disableAlpha", Type: meta.TokenFloat},
				{ID: 42, ComponentID: 4, Name: "focusColor", Type: meta.TokenColor},
			},
		},
		InvariantPropConfigs: map[uint][]meta.PropConfig{
			4: {
				{ID: "tok-alpha", Value: 0.4},
				{ID: "tok-focus", Value: "#00ff00"},
			},
		},
		TokenIDs: map[string]uint{
			"tok-alpha": 41,
			"tok-focus": 42,
		},
	}
}

func TestConvertInvariantPropsValues(t *testing.T) {
	var rep transformer.Report
	rows := convertInvariantProps(invariantResult(), &rep)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	byToken := map[uint]*types.InvariantTokenValue{}
	for _, row := range rows {
		byToken[row.TokenID] = row
	}

	// JSON-decoded numbers arrive as float64 and must survive as strings
	alpha := byToken[41]
	if alpha == nil {
		t.Fatal("disableAlpha row missing")
	}
	if alpha.Value != "0.4" {
		t.Errorf("invariant value = %q, want \"0.4\"", alpha.Value)
	}
	if alpha.Type != meta.TokenFloat {
		t.Errorf("invariant type = %q, want %q", alpha.Type, meta.TokenFloat)
	}

	focus := byToken[42]
	if focus == nil {
		t.Fatal("focusColor row missing")
	}
	if focus.Value != "#00ff00" || focus.Type != meta.TokenColor {
		t.Errorf("focusColor row = %+v", focus)
	}

	for _, row := range rows {
		if row.ComponentID != 4 || row.DesignSystemID != 1 {
			t.Errorf("row scope = (%d, %d)", row.ComponentID, row.DesignSystemID)
		}
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", rep.Warnings)
	}
}

func TestConvertInvariantPropsUnmappedToken(t *testing.T) {
	result := invariantResult()
	result.InvariantPropConfigs[4] = append(result.InvariantPropConfigs[4], meta.PropConfig{ID: "tok-ghost", Value: "dropped"})

	var rep transformer.Report
	rows := convertInvariantProps(result, &rep)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want unmapped prop dropped", len(rows))
	}
	if len(rep.Warnings) != 1 {
		t.Errorf("warnings = %v, want one drop notice", rep.Warnings)
	}
}
