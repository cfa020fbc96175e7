package types

// ExportMetadata is the summary block of a design system export. Field names
// are wire-frozen; existing consumers parse them verbatim.
type ExportMetadata struct {
	DesignSystemID       uint   `json:"designSystemId"`
	DesignSystemName     string `json:"designSystemName"`
	TotalComponents      int    `json:"totalComponents"`
	TotalVariations      int    `json:"totalVariations"`
	TotalVariationValues int    `json:"totalVariationValues"`
	TotalTokens          int    `json:"totalTokens"`
	TotalTokenValues     int    `json:"totalTokenValues"`
	TotalPropsAPI        int    `json:"totalPropsAPI"`
	APIBaseURL           string `json:"apiBaseUrl"`
}

// ExportPayload is the serialized wire shape of a full design system export.
type ExportPayload struct {
	Timestamp            string                `json:"timestamp"`
	DesignSystem         DesignSystem          `json:"designSystem"`
	Components           []Component           `json:"components"`
	VariationValues      []VariationValue      `json:"variationValues"`
	TokenValues          []TokenValue          `json:"tokenValues"`
	InvariantTokenValues []InvariantTokenValue `json:"invariantTokenValues"`
	Metadata             ExportMetadata        `json:"metadata"`
}
