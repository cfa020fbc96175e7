package types

import (
	"time"
)

type DesignSystem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (DesignSystem) TableName() string {
	return "design_system"
}

type DesignSystemComponent struct {
	ID             uint `gorm:"primaryKey;autoIncrement" json:"id"`
	DesignSystemID uint `gorm:"not null;index;column:design_system_id" json:"designSystemId"`
	ComponentID    uint `gorm:"not null;index;column:component_id" json:"componentId"`
}

func (DesignSystemComponent) TableName() string {
	return "design_system_component"
}
