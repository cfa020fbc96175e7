package transformer

import (
	"github.com/plasmahub/plasma-builder-backend/internal/meta"
)

// Direction names which way a transformation ran.
type Direction string

const (
	DirectionToClient  Direction = "toClient"
	DirectionToBackend Direction = "toBackend"
)

// ValidationResult is the advisory lint output for one transformation.
// Callers log or display it; nothing blocks on it.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Warnings []string `json:"warnings"`
	DataLoss []string `json:"dataLoss"`
}

// ValidateTransformation cross-checks a transformation's input and output
// for known lossy spots. Unexpected input types yield a single warning
// rather than an error: validation is tooling, not a gate.
func (t *FormatTransformer) ValidateTransformation(original, transformed any, direction Direction) ValidationResult {
	res := ValidationResult{Warnings: []string{}, DataLoss: []string{}}

	switch direction {
	case DirectionToClient:
		backend, okIn := original.(BackendData)
		client, okOut := transformed.(meta.ClientPayload)
		if !okIn || !okOut {
			res.Warnings = append(res.Warnings, "toClient validation expects (BackendData, ClientPayload)")
			break
		}
		t.validateToClient(backend, client, &res)
	case DirectionToBackend:
		client, okIn := original.(meta.ClientPayload)
		backend, okOut := transformed.(BackendResult)
		if !okIn || !okOut {
			res.Warnings = append(res.Warnings, "toBackend validation expects (ClientPayload, BackendResult)")
			break
		}
		t.validateToBackend(client, backend, &res)
	default:
		res.Warnings = append(res.Warnings, "unknown validation direction: "+string(direction))
	}

	res.IsValid = len(res.Warnings) == 0 && len(res.DataLoss) == 0
	return res
}

func (t *FormatTransformer) validateToClient(backend BackendData, client meta.ClientPayload, res *ValidationResult) {
	if client.DesignSystem.Name == "" && backend.DesignSystem.Name != "" {
		res.DataLoss = append(res.DataLoss, "design system metadata missing from client payload")
	}
	if len(backend.PropsAPI) > 0 {
		found := false
		for _, cd := range client.ComponentsData {
			if len(cd.Props) > 0 {
				found = true
				break
			}
		}
		if !found {
			res.DataLoss = append(res.DataLoss, "propsAPI rows present in backend but absent from client payload")
		}
		res.Warnings = append(res.Warnings, "propsAPI entries do not carry their type on the client side")
	}
	for _, variation := range backend.Variations {
		if variation.Description == "" {
			continue
		}
		if !clientHasVariationDescription(client, variation.Name) {
			res.DataLoss = append(res.DataLoss, "variation description lost: "+variation.Name)
		}
	}
	if len(backend.TokenVariations) > 0 && !clientHasTokenVariations(client) {
		res.DataLoss = append(res.DataLoss, "token-variation links missing from client payload")
	}
}

func (t *FormatTransformer) validateToBackend(client meta.ClientPayload, backend BackendResult, res *ValidationResult) {
	for _, cd := range client.ComponentsData {
		for _, entry := range cd.Sources.Configs {
			for _, vc := range entry.Config.Variations {
				for _, style := range vc.Styles {
					if style.Intersections != nil {
						res.DataLoss = append(res.DataLoss, "style intersections are not restored: "+style.Name)
					}
					if !t.expandStyleProps && len(style.Props) > 0 {
						res.DataLoss = append(res.DataLoss, "state-based prop values not expanded for style: "+style.Name)
					}
				}
			}
		}
		if len(cd.Props) > 0 {
			res.Warnings = append(res.Warnings, "propsAPI restored without type for component: "+cd.Name)
		}
	}
	if len(backend.InvariantPropConfigs) > 0 {
		res.Warnings = append(res.Warnings, "invariant props require caller-side conversion")
	}
}

func clientHasVariationDescription(client meta.ClientPayload, name string) bool {
	for _, cd := range client.ComponentsData {
		for _, cv := range cd.Sources.Variations {
			if cv.Name == name && cv.Description != "" {
				return true
			}
		}
	}
	return false
}

func clientHasTokenVariations(client meta.ClientPayload) bool {
	for _, cd := range client.ComponentsData {
		for _, cv := range cd.Sources.Variations {
			if len(cv.TokenVariations) > 0 {
				return true
			}
		}
	}
	return false
}
