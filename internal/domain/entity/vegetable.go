package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vegetable represents a catalog item sold by weight
type Vegetable struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string         `gorm:"size:255;not null;index" json:"name"`
	TamilName      string         `gorm:"size:255" json:"tamil_name"`
	TanglishName   string         `gorm:"size:255" json:"tanglish_name"`
	Category       string         `gorm:"size:100" json:"category"`
	PricePerKg     int64          `gorm:"default:0" json:"price_per_kg"`     // Stored in paise
	RetailPrice    int64          `gorm:"default:0" json:"retail_price"`     // Stored in paise
	WholesalePrice int64          `gorm:"default:0" json:"wholesale_price"`  // Stored in paise
	StockKg        float64        `gorm:"default:0" json:"stock_kg"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vegetable
func (v *Vegetable) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vegetable model
func (Vegetable) TableName() string {
	return "vegetables"
}

// GetPricePerKgDecimal returns the generic price in rupees (for display)
func (v *Vegetable) GetPricePerKgDecimal() float64 {
	return float64(v.PricePerKg) / 100
}

// GetRetailPriceDecimal returns the retail price in rupees (for display)
func (v *Vegetable) GetRetailPriceDecimal() float64 {
	return float64(v.RetailPrice) / 100
}

// GetWholesalePriceDecimal returns the wholesale price in rupees (for display)
func (v *Vegetable) GetWholesalePriceDecimal() float64 {
	return float64(v.WholesalePrice) / 100
}

// SetPricePerKgFromDecimal sets the generic price from a rupee value,
// rounded to the nearest paisa
func (v *Vegetable) SetPricePerKgFromDecimal(price float64) {
	v.PricePerKg = int64(math.Round(price * 100))
}

// SetRetailPriceFromDecimal sets the retail price from a rupee value,
// rounded to the nearest paisa
func (v *Vegetable) SetRetailPriceFromDecimal(price float64) {
	v.RetailPrice = int64(math.Round(price * 100))
}

// SetWholesalePriceFromDecimal sets the wholesale price from a rupee value,
// rounded to the nearest paisa
func (v *Vegetable) SetWholesalePriceFromDecimal(price float64) {
	v.WholesalePrice = int64(math.Round(price * 100))
}

// VegetableJSON is a helper struct for JSON marshaling with rupee prices
type VegetableJSON struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	TamilName      string    `json:"tamil_name"`
	TanglishName   string    `json:"tanglish_name"`
	Category       string    `json:"category"`
	PricePerKg     float64   `json:"price_per_kg"`
	RetailPrice    float64   `json:"retail_price"`
	WholesalePrice float64   `json:"wholesale_price"`
	StockKg        float64   `json:"stock_kg"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MarshalJSON converts Vegetable to JSON with rupee prices
func (v Vegetable) MarshalJSON() ([]byte, error) {
	return json.Marshal(VegetableJSON{
		ID:             v.ID,
		Name:           v.Name,
		TamilName:      v.TamilName,
		TanglishName:   v.TanglishName,
		Category:       v.Category,
		PricePerKg:     v.GetPricePerKgDecimal(),
		RetailPrice:    v.GetRetailPriceDecimal(),
		WholesalePrice: v.GetWholesalePriceDecimal(),
		StockKg:        v.StockKg,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	})
}
