package types

import (
	"time"

	"gorm.io/datatypes"

	"github.com/plasmahub/plasma-builder-backend/internal/meta"
)

type Token struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ComponentID  uint           `gorm:"not null;index;column:component_id" json:"componentId"`
	Name         string         `gorm:"not null;column:name" json:"name"`
	Type         meta.TokenType `gorm:"not null;column:type" json:"type"`
	DefaultValue string         `gorm:"column:default_value" json:"defaultValue"`
	Description  string         `gorm:"column:description" json:"description"`
	XMLParam     string         `gorm:"column:xml_param" json:"xmlParam"`
	ComposeParam string         `gorm:"column:compose_param" json:"composeParam"`
	IOSParam     string         `gorm:"column:ios_param" json:"iosParam"`
	WebParam     string         `gorm:"column:web_param" json:"webParam"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Token) TableName() string {
	return "token"
}

type TokenVariation struct {
	ID          uint `gorm:"primaryKey;autoIncrement" json:"id"`
	TokenID     uint `gorm:"not null;index;column:token_id" json:"tokenId"`
	VariationID uint `gorm:"not null;index;column:variation_id" json:"variationId"`
}

func (TokenVariation) TableName() string {
	return "token_variation"
}

// VariationValue is one concrete style of a variation (e.g. size "m").
// IsDefaultValue is stored as the strings "true"/"false" for compatibility
// with the existing backend encoding.
type VariationValue struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VariationID    uint      `gorm:"not null;index;column:variation_id" json:"variationId"`
	ComponentID    uint      `gorm:"not null;index;column:component_id" json:"componentId"`
	Name           string    `gorm:"not null;column:name" json:"name"`
	Description    string    `gorm:"column:description" json:"description"`
	IsDefaultValue string    `gorm:"column:is_default_value;default:'false'" json:"isDefaultValue"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (VariationValue) TableName() string {
	return "variation_value"
}

type TokenValue struct {
	ID               uint                                  `gorm:"primaryKey;autoIncrement" json:"id"`
	VariationValueID uint                                  `gorm:"not null;index;column:variation_value_id" json:"variationValueId"`
	TokenID          uint                                  `gorm:"not null;index;column:token_id" json:"tokenId"`
	Value            string                                `gorm:"column:value" json:"value"`
	States           datatypes.JSONType[[]meta.TokenState] `gorm:"column:states" json:"states,omitempty"`
	Type             meta.TokenType                        `gorm:"column:type" json:"type"`
	ComponentID      uint                                  `gorm:"not null;index;column:component_id" json:"componentId"`
	DesignSystemID   uint                                  `gorm:"not null;index;column:design_system_id" json:"designSystemId"`
	CreatedAt        time.Time                             `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt        time.Time                             `gorm:"not null;default:now()" json:"updatedAt"`
}

func (TokenValue) TableName() string {
	return "token_value"
}

type InvariantTokenValue struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	TokenID        uint           `gorm:"not null;index;column:token_id" json:"tokenId"`
	Value          string         `gorm:"column:value" json:"value"`
	Type           meta.TokenType `gorm:"column:type" json:"type"`
	ComponentID    uint           `gorm:"not null;index;column:component_id" json:"componentId"`
	DesignSystemID uint           `gorm:"not null;index;column:design_system_id" json:"designSystemId"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updatedAt"`
}

func (InvariantTokenValue) TableName() string {
	return "invariant_token_value"
}
