package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a repeat buyer identified by mobile number
type Customer struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	MobileNumber string         `gorm:"size:20;not null;index" json:"mobile_number"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerStats is an aggregate view of a customer's purchase history
type CustomerStats struct {
	Name             string     `json:"name"`
	MobileNumber     string     `json:"mobile_number"`
	TotalPurchases   int64      `json:"total_purchases"`
	TotalSpent       float64    `json:"total_spent"`
	LastPurchaseDate *time.Time `json:"last_purchase_date,omitempty"`
	LastBillNumber   string     `json:"last_bill_number,omitempty"`
}
