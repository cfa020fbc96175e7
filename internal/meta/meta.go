package meta

// TokenType is the semantic kind of a design token. Every token row carries
// one of these, and prop resolution dispatches on it exactly once, at
// construction time.
type TokenType string

const (
	TokenColor      TokenType = "color"
	TokenDimension  TokenType = "dimension"
	TokenFloat      TokenType = "float"
	TokenShape      TokenType = "shape"
	TokenTypography TokenType = "typography"
)

// WebToken is a single web-platform output slot of a token. A backend token
// maps to one web token for most types; typography fans out into six.
type WebToken struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// PlatformMappings carries the per-platform parameter names of one token.
type PlatformMappings struct {
	XML     string     `json:"xml,omitempty"`
	Compose string     `json:"compose,omitempty"`
	IOS     string     `json:"ios,omitempty"`
	Web     []WebToken `json:"web"`
}

// ComponentAPI is the client-side descriptor of one token: identity, semantic
// type, platform mappings and the variations that gate it.
type ComponentAPI struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Type             TokenType        `json:"type"`
	Description      string           `json:"description,omitempty"`
	DefaultValue     any              `json:"defaultValue,omitempty"`
	Variations       []string         `json:"variations"`
	PlatformMappings PlatformMappings `json:"platformMappings"`
	CreatedAt        string           `json:"createdAt,omitempty"`
	UpdatedAt        string           `json:"updatedAt,omitempty"`
}

// TokenVariationRef links a variation to one token it affects, client-side.
type TokenVariationRef struct {
	ID      string `json:"id"`
	TokenID string `json:"tokenId"`
}

// ComponentVariation is one configurable axis of a component (e.g. "size").
type ComponentVariation struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	TokenVariations []TokenVariationRef `json:"tokenVariations"`
	CreatedAt       string              `json:"createdAt,omitempty"`
	UpdatedAt       string              `json:"updatedAt,omitempty"`
}

// TokenState is a conditional override of a token value under interaction
// states such as hovered or pressed.
type TokenState struct {
	State []string `json:"state"`
	Value any      `json:"value"`
}

// PropConfig is one token's value inside one configuration scope.
type PropConfig struct {
	ID         string       `json:"id"`
	Value      any          `json:"value"`
	States     []TokenState `json:"states,omitempty"`
	Adjustment any          `json:"adjustment,omitempty"`
}

// StyleConfig is one concrete value of a variation ("m" of "size") together
// with the token overrides it carries.
type StyleConfig struct {
	Name          string       `json:"name"`
	ID            string       `json:"id"`
	Intersections any          `json:"intersections"`
	Props         []PropConfig `json:"props"`
}

// VariationConfig groups the styles of one variation inside a config entry.
type VariationConfig struct {
	ID     string        `json:"id"`
	Styles []StyleConfig `json:"styles"`
}

// DefaultVariation points a variation at its default style.
type DefaultVariation struct {
	VariationID string `json:"variationID"`
	StyleID     string `json:"styleID"`
}

// ConfigData is the persisted shape of one component configuration.
type ConfigData struct {
	DefaultVariations []DefaultVariation `json:"defaultVariations"`
	InvariantProps    []PropConfig       `json:"invariantProps"`
	Variations        []VariationConfig  `json:"variations"`
}

// ConfigEntry names one stored configuration of a component.
type ConfigEntry struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Config ConfigData `json:"config"`
}

// PropAPIEntry is the client-side projection of a PropsAPI row. The backend
// row also carries a type; the client shape drops it (see transformer data
// loss reporting).
type PropAPIEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Value     any    `json:"value,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Sources aggregates everything the editor needs about one component.
type Sources struct {
	API        []ComponentAPI       `json:"api"`
	Variations []ComponentVariation `json:"variations"`
	Configs    []ConfigEntry        `json:"configs"`
}

// Meta is the client-side root object of one component.
type Meta struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Sources     Sources `json:"sources"`
}

// ComponentData is one component inside a transformed design system payload.
type ComponentData struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Sources     Sources        `json:"sources"`
	Props       []PropAPIEntry `json:"props"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	UpdatedAt   string         `json:"updatedAt,omitempty"`
}

// ClientDesignSystem is the denormalized design system header.
type ClientDesignSystem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// ClientPayload is the full client-side representation of a design system.
type ClientPayload struct {
	ComponentsData []ComponentData    `json:"componentsData"`
	SavedAt        string             `json:"savedAt"`
	DesignSystem   ClientDesignSystem `json:"designSystem"`
}

// FindAPI returns the API entry with the given token id, or nil.
func (s Sources) FindAPI(tokenID string) *ComponentAPI {
	for i := range s.API {
		if s.API[i].ID == tokenID {
			return &s.API[i]
		}
	}
	return nil
}

// FindVariation returns the variation descriptor with the given id, or nil.
func (s Sources) FindVariation(variationID string) *ComponentVariation {
	for i := range s.Variations {
		if s.Variations[i].ID == variationID {
			return &s.Variations[i]
		}
	}
	return nil
}

// Meta builds the client Meta root for a component payload.
func (c ComponentData) Meta() Meta {
	return Meta{
		Name:        c.Name,
		Description: c.Description,
		Sources:     c.Sources,
	}
}
