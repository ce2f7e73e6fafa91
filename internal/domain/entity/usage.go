package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VegetableUsage counts how often a vegetable has been billed, per shop.
// Feeds the dashboard's top-vegetables list.
type VegetableUsage struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_usage_user_veg" json:"user_id"`
	VegetableID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_usage_user_veg" json:"vegetable_id"`
	UsageCount  int64     `gorm:"default:0" json:"usage_count"`
	LastUsedAt  time.Time `json:"last_used_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a usage row
func (u *VegetableUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VegetableUsage model
func (VegetableUsage) TableName() string {
	return "vegetable_usages"
}
