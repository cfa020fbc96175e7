package types

import (
	"time"
)

type Component struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Component) TableName() string {
	return "component"
}

type Variation struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ComponentID uint      `gorm:"not null;index;column:component_id" json:"componentId"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Variation) TableName() string {
	return "variation"
}

type PropsAPI struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ComponentID  uint   `gorm:"not null;index;column:component_id" json:"componentId"`
	Name         string `gorm:"not null;column:name" json:"name"`
	Type         string `gorm:"column:type" json:"type"`
	Description  string `gorm:"column:description" json:"description"`
	Required     bool   `gorm:"column:required" json:"required"`
	DefaultValue string `gorm:"column:default_value" json:"defaultValue"`
}

func (PropsAPI) TableName() string {
	return "props_api"
}
