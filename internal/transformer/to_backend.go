package transformer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/plasmahub/plasma-builder-backend/internal/meta"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

// TransformClientToBackend rebuilds relational rows from a client payload.
// Numeric ids come from the injected monotonic sequence, the reverse id map
// is call-local, and absent timestamps fall back to the current time.
func (t *FormatTransformer) TransformClientToBackend(client meta.ClientPayload) (BackendResult, Report) {
	rev := make(map[string]uint)
	tokenTypes := make(map[string]meta.TokenType)
	var rep Report
	now := time.Now().UTC()

	res := BackendResult{
		InvariantPropConfigs: make(map[uint][]meta.PropConfig),
		TokenIDs:             make(map[string]uint),
	}
	res.DesignSystem = types.DesignSystem{
		ID:          t.seq.Next(),
		Name:        client.DesignSystem.Name,
		Description: client.DesignSystem.Description,
		CreatedAt:   parseTimeOr(client.DesignSystem.CreatedAt, now),
		UpdatedAt:   parseTimeOr(client.DesignSystem.UpdatedAt, now),
	}

	for _, cd := range client.ComponentsData {
		componentID := t.seq.Next()
		rev[cd.ID] = componentID
		res.Components = append(res.Components, types.Component{
			ID:          componentID,
			Name:        cd.Name,
			Description: cd.Description,
			CreatedAt:   parseTimeOr(cd.CreatedAt, now),
			UpdatedAt:   parseTimeOr(cd.UpdatedAt, now),
		})
		res.DesignSystemComponents = append(res.DesignSystemComponents, types.DesignSystemComponent{
			ID:             t.seq.Next(),
			DesignSystemID: res.DesignSystem.ID,
			ComponentID:    componentID,
		})

		for _, api := range cd.Sources.API {
			tokenID := t.seq.Next()
			rev[api.ID] = tokenID
			res.TokenIDs[api.ID] = tokenID
			tokenTypes[api.ID] = api.Type
			res.Tokens = append(res.Tokens, types.Token{
				ID:           tokenID,
				ComponentID:  componentID,
				Name:         api.Name,
				Type:         api.Type,
				DefaultValue: StringifyValue(api.DefaultValue),
				Description:  api.Description,
				XMLParam:     api.PlatformMappings.XML,
				ComposeParam: api.PlatformMappings.Compose,
				IOSParam:     api.PlatformMappings.IOS,
				WebParam:     collapseWebParam(api),
				CreatedAt:    parseTimeOr(api.CreatedAt, now),
				UpdatedAt:    parseTimeOr(api.UpdatedAt, now),
			})
		}

		for _, cv := range cd.Sources.Variations {
			variationID := t.seq.Next()
			rev[cv.ID] = variationID
			res.Variations = append(res.Variations, types.Variation{
				ID:          variationID,
				ComponentID: componentID,
				Name:        cv.Name,
				Description: cv.Description,
				CreatedAt:   parseTimeOr(cv.CreatedAt, now),
				UpdatedAt:   parseTimeOr(cv.UpdatedAt, now),
			})
			for _, ref := range cv.TokenVariations {
				tokenID, ok := rev[ref.TokenID]
				if !ok {
					rep.warnf("variation %q references unmapped token %s, dropping the link", cv.Name, ref.TokenID)
					continue
				}
				res.TokenVariations = append(res.TokenVariations, types.TokenVariation{
					ID:          t.seq.Next(),
					TokenID:     tokenID,
					VariationID: variationID,
				})
			}
		}

		for _, prop := range cd.Props {
			res.PropsAPI = append(res.PropsAPI, types.PropsAPI{
				ID:           t.seq.Next(),
				ComponentID:  componentID,
				Name:         prop.Name,
				DefaultValue: StringifyValue(prop.Value),
			})
		}
		if len(cd.Props) > 0 {
			rep.lossf("component %q: propsAPI rows restored without their type", cd.Name)
		}

		for _, entry := range cd.Sources.Configs {
			t.transformConfigsToVariationValues(entry, componentID, cd.Name, rev, tokenTypes, now, &res, &rep)
		}
	}

	return res, rep
}

// transformConfigsToVariationValues rebuilds VariationValue rows (and, when
// expansion is enabled, TokenValue rows) from one config entry.
func (t *FormatTransformer) transformConfigsToVariationValues(entry meta.ConfigEntry, componentID uint, componentName string, rev map[string]uint, tokenTypes map[string]meta.TokenType, now time.Time, res *BackendResult, rep *Report) {
	defaultStyleIDs := make(map[string]struct{}, len(entry.Config.DefaultVariations))
	for _, dv := range entry.Config.DefaultVariations {
		defaultStyleIDs[dv.StyleID] = struct{}{}
	}

	for _, vc := range entry.Config.Variations {
		variationID, ok := rev[vc.ID]
		if !ok {
			rep.warnf("config %q references unmapped variation %s, skipping its styles", entry.Name, vc.ID)
			continue
		}
		for _, style := range vc.Styles {
			variationValueID := t.seq.Next()
			rev[style.ID] = variationValueID
			isDefault := "false"
			if _, isDef := defaultStyleIDs[style.ID]; isDef {
				isDefault = "true"
			}
			res.VariationValues = append(res.VariationValues, types.VariationValue{
				ID:             variationValueID,
				VariationID:    variationID,
				ComponentID:    componentID,
				Name:           style.Name,
				IsDefaultValue: isDefault,
				CreatedAt:      now,
				UpdatedAt:      now,
			})
			if style.Intersections != nil {
				rep.lossf("style %q of component %q: intersections are not representable as rows", style.Name, componentName)
			}

			if !t.expandStyleProps {
				if len(style.Props) > 0 {
					rep.warnf("style %q of component %q: props parsed but not expanded to token values", style.Name, componentName)
				}
				continue
			}
			for _, prop := range style.Props {
				tokenID, mapped := rev[prop.ID]
				if !mapped {
					rep.warnf("style %q of component %q references unmapped token %s, dropping its value", style.Name, componentName, prop.ID)
					continue
				}
				res.TokenValues = append(res.TokenValues, types.TokenValue{
					ID:               t.seq.Next(),
					VariationValueID: variationValueID,
					TokenID:          tokenID,
					Value:            StringifyValue(prop.Value),
					States:           datatypes.NewJSONType(prop.States),
					Type:             tokenTypes[prop.ID],
					ComponentID:      componentID,
					DesignSystemID:   res.DesignSystem.ID,
					CreatedAt:        now,
					UpdatedAt:        now,
				})
			}
		}
	}

	// Invariant props need token-id context the caller owns; hand them back
	// parsed instead of guessing.
	if len(entry.Config.InvariantProps) > 0 {
		res.InvariantPropConfigs[componentID] = entry.Config.InvariantProps
		rep.warnf("component %q: invariant props returned unconverted for caller-side mapping", componentName)
	}
}

// collapseWebParam recovers the backend web parameter from the client web
// token list; for typography the shared prefix of the fan-out is the
// parameter.
func collapseWebParam(api meta.ComponentAPI) string {
	web := api.PlatformMappings.Web
	if len(web) == 0 {
		return ""
	}
	name := web[0].Name
	if api.Type == meta.TokenTypography {
		for _, suffix := range typographyWebSuffixes {
			if strings.HasSuffix(name, suffix) {
				return strings.TrimSuffix(name, suffix)
			}
		}
	}
	return name
}

// StringifyValue renders a client-side prop value in the string encoding the
// backend value columns use. JSON-decoded payloads carry numbers as float64.
func StringifyValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}
