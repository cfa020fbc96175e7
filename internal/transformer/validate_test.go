package transformer

import (
	"testing"
)

func TestValidateToClientCleanTransform(t *testing.T) {
	trans := newTestTransformer()
	data := checkboxData()
	data.PropsAPI = nil
	data.Variations[0].Description = ""
	payload, _ := trans.TransformBackendToClient(data)

	res := trans.ValidateTransformation(data, payload, DirectionToClient)
	if !res.IsValid {
		t.Errorf("clean transform flagged: warnings=%v dataLoss=%v", res.Warnings, res.DataLoss)
	}
}

func TestValidateToClientFlagsPropsAPIType(t *testing.T) {
	trans := newTestTransformer()
	data := checkboxData()
	payload, _ := trans.TransformBackendToClient(data)

	res := trans.ValidateTransformation(data, payload, DirectionToClient)
	if res.IsValid {
		t.Fatal("propsAPI type drop not flagged")
	}
	if len(res.Warnings) == 0 {
		t.Errorf("expected a propsAPI warning, got %v", res.Warnings)
	}
}

func TestValidateToClientDetectsMissingLinks(t *testing.T) {
	trans := newTestTransformer()
	data := checkboxData()
	payload, _ := trans.TransformBackendToClient(data)
	for i := range payload.ComponentsData {
		payload.ComponentsData[i].Sources.Variations = nil
	}

	res := trans.ValidateTransformation(data, payload, DirectionToClient)
	found := false
	for _, loss := range res.DataLoss {
		if loss == "token-variation links missing from client payload" {
			found = true
		}
	}
	if !found {
		t.Errorf("stripped links not detected: %v", res.DataLoss)
	}
}

func TestValidateToBackendIntersections(t *testing.T) {
	trans := newTestTransformer()
	client, _ := trans.TransformBackendToClient(checkboxData())
	client.ComponentsData[0].Sources.Configs[0].Config.Variations[0].Styles[0].Intersections = map[string]any{"view": "primary"}
	result, _ := trans.TransformClientToBackend(client)

	res := trans.ValidateTransformation(client, result, DirectionToBackend)
	if res.IsValid {
		t.Fatal("intersections not flagged")
	}
	if len(res.DataLoss) == 0 {
		t.Errorf("expected data loss entries, got %v", res.DataLoss)
	}
}

func TestValidateWrongShapes(t *testing.T) {
	trans := newTestTransformer()
	res := trans.ValidateTransformation("nonsense", 42, DirectionToClient)
	if res.IsValid || len(res.Warnings) != 1 {
		t.Errorf("mismatched shapes = %+v", res)
	}
	res = trans.ValidateTransformation("nonsense", 42, Direction("sideways"))
	if res.IsValid {
		t.Error("unknown direction accepted")
	}
}
