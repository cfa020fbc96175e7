package transformer

import (
	"time"

	"github.com/plasmahub/plasma-builder-backend/internal/meta"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

// typographyWebSuffixes is the fan-out order of a typography token's web
// sub-tokens.
var typographyWebSuffixes = []string{
	"FontFamily",
	"FontSize",
	"FontStyle",
	"FontWeight",
	"LetterSpacing",
	"LineHeight",
}

// TransformBackendToClient converts relational rows into the client nested
// shape. All identifiers are regenerated; the id map lives and dies inside
// this call.
func (t *FormatTransformer) TransformBackendToClient(data BackendData) (meta.ClientPayload, Report) {
	ids := make(map[string]string)
	var rep Report

	payload := meta.ClientPayload{
		ComponentsData: []meta.ComponentData{},
		SavedAt:        time.Now().UTC().Format(time.RFC3339Nano),
	}

	for _, comp := range data.Components {
		componentID := t.newUUID()
		ids[idKey(comp.ID, kindComponent)] = componentID

		cd := meta.ComponentData{
			ID:          componentID,
			Name:        comp.Name,
			Description: comp.Description,
			CreatedAt:   formatTime(comp.CreatedAt),
			UpdatedAt:   formatTime(comp.UpdatedAt),
			Props:       []meta.PropAPIEntry{},
			Sources: meta.Sources{
				API:        []meta.ComponentAPI{},
				Variations: []meta.ComponentVariation{},
			},
		}

		for _, tok := range data.Tokens {
			if tok.ComponentID != comp.ID {
				continue
			}
			tokenID := t.newUUID()
			ids[idKey(tok.ID, kindToken)] = tokenID
			cd.Sources.API = append(cd.Sources.API, meta.ComponentAPI{
				ID:           tokenID,
				Name:         tok.Name,
				Type:         tok.Type,
				Description:  tok.Description,
				DefaultValue: tok.DefaultValue,
				Variations:   []string{},
				PlatformMappings: meta.PlatformMappings{
					XML:     tok.XMLParam,
					Compose: tok.ComposeParam,
					IOS:     tok.IOSParam,
					Web:     expandWebParam(tok),
				},
				CreatedAt: formatTime(tok.CreatedAt),
				UpdatedAt: formatTime(tok.UpdatedAt),
			})
		}

		for _, variation := range data.Variations {
			if variation.ComponentID != comp.ID {
				continue
			}
			variationID := t.newUUID()
			ids[idKey(variation.ID, kindVariation)] = variationID
			cv := meta.ComponentVariation{
				ID:              variationID,
				Name:            variation.Name,
				Description:     variation.Description,
				TokenVariations: []meta.TokenVariationRef{},
				CreatedAt:       formatTime(variation.CreatedAt),
				UpdatedAt:       formatTime(variation.UpdatedAt),
			}
			for _, tv := range data.TokenVariations {
				if tv.VariationID != variation.ID {
					continue
				}
				tokenID, ok := ids[idKey(tv.TokenID, kindToken)]
				if !ok {
					tokenID = t.newUUID()
					rep.warnf("token %d referenced by variation %q has no mapping, generated a fresh id", tv.TokenID, variation.Name)
				}
				cv.TokenVariations = append(cv.TokenVariations, meta.TokenVariationRef{
					ID:      t.newUUID(),
					TokenID: tokenID,
				})
				// Inverse index: the API token learns which variations gate it.
				for i := range cd.Sources.API {
					if cd.Sources.API[i].ID == tokenID {
						cd.Sources.API[i].Variations = append(cd.Sources.API[i].Variations, variationID)
						break
					}
				}
			}
			cd.Sources.Variations = append(cd.Sources.Variations, cv)
		}

		for _, propAPI := range data.PropsAPI {
			if propAPI.ComponentID != comp.ID {
				continue
			}
			cd.Props = append(cd.Props, meta.PropAPIEntry{
				ID:    t.newUUID(),
				Name:  propAPI.Name,
				Value: propAPI.DefaultValue,
			})
		}
		if len(cd.Props) > 0 {
			rep.lossf("component %q: propsAPI type field is not carried by the client shape", comp.Name)
		}

		cd.Sources.Configs = []meta.ConfigEntry{t.buildConfigEntry(comp, data, ids, &rep)}
		payload.ComponentsData = append(payload.ComponentsData, cd)
	}

	payload.DesignSystem = meta.ClientDesignSystem{
		ID:          t.newUUID(),
		Name:        data.DesignSystem.Name,
		Description: data.DesignSystem.Description,
		CreatedAt:   formatTime(data.DesignSystem.CreatedAt),
		UpdatedAt:   formatTime(data.DesignSystem.UpdatedAt),
	}

	return payload, rep
}

// buildConfigEntry groups a component's variation values into the config
// tree: one style per variation value, invariant props from the invariant
// rows, defaults from the rows flagged isDefaultValue.
func (t *FormatTransformer) buildConfigEntry(comp types.Component, data BackendData, ids map[string]string, rep *Report) meta.ConfigEntry {
	cfg := meta.ConfigData{
		DefaultVariations: []meta.DefaultVariation{},
		InvariantProps:    []meta.PropConfig{},
		Variations:        []meta.VariationConfig{},
	}

	for _, variation := range data.Variations {
		if variation.ComponentID != comp.ID {
			continue
		}
		variationID := ids[idKey(variation.ID, kindVariation)]
		vc := meta.VariationConfig{ID: variationID, Styles: []meta.StyleConfig{}}
		for _, vv := range data.VariationValues {
			if vv.VariationID != variation.ID || vv.ComponentID != comp.ID {
				continue
			}
			styleID := t.newUUID()
			ids[idKey(vv.ID, kindVariationValue)] = styleID
			style := meta.StyleConfig{
				Name:          vv.Name,
				ID:            styleID,
				Intersections: nil,
				Props:         []meta.PropConfig{},
			}
			for _, tokenValue := range data.TokenValues {
				if tokenValue.VariationValueID != vv.ID {
					continue
				}
				style.Props = append(style.Props, meta.PropConfig{
					ID:     t.mappedTokenID(tokenValue.TokenID, ids, rep),
					Value:  tokenValue.Value,
					States: tokenValue.States.Data(),
				})
			}
			vc.Styles = append(vc.Styles, style)
		}
		cfg.Variations = append(cfg.Variations, vc)
	}

	// The backend encodes the default flag as the string "true".
	for _, vv := range data.VariationValues {
		if vv.ComponentID != comp.ID || vv.IsDefaultValue != "true" {
			continue
		}
		variationID, ok := ids[idKey(vv.VariationID, kindVariation)]
		if !ok {
			rep.warnf("default variation value %q references unknown variation %d", vv.Name, vv.VariationID)
			continue
		}
		styleID := findStyleIDByName(cfg.Variations, variationID, vv.Name)
		if styleID == "" {
			rep.warnf("default style %q not found under variation %d", vv.Name, vv.VariationID)
			continue
		}
		cfg.DefaultVariations = append(cfg.DefaultVariations, meta.DefaultVariation{
			VariationID: variationID,
			StyleID:     styleID,
		})
	}

	for _, invariant := range data.InvariantTokenValues {
		if invariant.ComponentID != comp.ID {
			continue
		}
		cfg.InvariantProps = append(cfg.InvariantProps, meta.PropConfig{
			ID:    t.mappedTokenID(invariant.TokenID, ids, rep),
			Value: invariant.Value,
		})
	}

	return meta.ConfigEntry{
		ID:     t.newUUID(),
		Name:   comp.Name,
		Config: cfg,
	}
}

// mappedTokenID resolves a numeric token id through the call-local map,
// falling back to a fresh identifier. The fallback keeps the transform
// total; the warning keeps it observable.
func (t *FormatTransformer) mappedTokenID(tokenID uint, ids map[string]string, rep *Report) string {
	if mapped, ok := ids[idKey(tokenID, kindToken)]; ok {
		return mapped
	}
	rep.warnf("token %d has no mapping, generated a fresh id", tokenID)
	return t.newUUID()
}

// expandWebParam fans a typography token's web parameter out into the six
// CSS font sub-tokens; other types keep a single web entry.
func expandWebParam(tok types.Token) []meta.WebToken {
	if tok.WebParam == "" {
		return []meta.WebToken{}
	}
	if tok.Type == meta.TokenTypography {
		out := make([]meta.WebToken, 0, len(typographyWebSuffixes))
		for _, suffix := range typographyWebSuffixes {
			out = append(out, meta.WebToken{Name: tok.WebParam + suffix})
		}
		return out
	}
	return []meta.WebToken{{Name: tok.WebParam}}
}

func findStyleIDByName(variations []meta.VariationConfig, variationID, name string) string {
	for _, vc := range variations {
		if vc.ID != variationID {
			continue
		}
		for _, style := range vc.Styles {
			if style.Name == name {
				return style.ID
			}
		}
	}
	return ""
}
