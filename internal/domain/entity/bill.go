package entity

import (
	"encoding/json"
	"time"

	"github.com/arunvel/kadai-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCustomerName labels bills where no customer was recorded. Stored
// bills keep the empty string; the fallback applies only on display.
const DefaultCustomerName = "Walking Customer"

// Bill represents a finalized sale
type Bill struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber     string           `gorm:"size:50;unique;not null" json:"bill_number"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	ShopName       string           `gorm:"size:255" json:"shop_name"`
	CustomerName   string           `gorm:"size:255" json:"customer_name"`
	CustomerMobile string           `gorm:"size:20;index" json:"customer_mobile"`
	BillingMode    enum.BillingMode `gorm:"size:20;not null;default:'Retail'" json:"billing_mode"`
	SubTotal       int64            `gorm:"default:0" json:"-"` // Stored in paise
	TaxAmount      int64            `gorm:"default:0" json:"-"` // Stored in paise
	DiscountAmount int64            `gorm:"default:0" json:"-"` // Stored in paise
	GrandTotal     int64            `gorm:"default:0" json:"-"` // Stored in paise
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`

	User  User       `gorm:"foreignKey:UserID" json:"-"`
	Items []BillItem `gorm:"foreignKey:BillID" json:"items"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// GetSubTotalDecimal returns the subtotal in rupees
func (b *Bill) GetSubTotalDecimal() float64 {
	return float64(b.SubTotal) / 100
}

// GetTaxAmountDecimal returns the tax amount in rupees
func (b *Bill) GetTaxAmountDecimal() float64 {
	return float64(b.TaxAmount) / 100
}

// GetDiscountAmountDecimal returns the discount in rupees
func (b *Bill) GetDiscountAmountDecimal() float64 {
	return float64(b.DiscountAmount) / 100
}

// GetGrandTotalDecimal returns the grand total in rupees
func (b *Bill) GetGrandTotalDecimal() float64 {
	return float64(b.GrandTotal) / 100
}

// BillJSON is a helper struct for JSON marshaling with rupee amounts
type BillJSON struct {
	ID             uuid.UUID        `json:"id"`
	BillNumber     string           `json:"bill_number"`
	ShopName       string           `json:"shop_name"`
	CustomerName   string           `json:"customer_name"`
	CustomerMobile string           `json:"customer_mobile"`
	BillingMode    enum.BillingMode `json:"billing_mode"`
	SubTotal       float64          `json:"sub_total"`
	TaxAmount      float64          `json:"tax_amount"`
	DiscountAmount float64          `json:"discount_amount"`
	GrandTotal     float64          `json:"grand_total"`
	Items          []BillItem       `json:"items"`
	CreatedAt      time.Time        `json:"created_at"`
}

// MarshalJSON converts Bill to JSON with rupee amounts
func (b Bill) MarshalJSON() ([]byte, error) {
	items := b.Items
	if items == nil {
		items = []BillItem{}
	}
	customerName := b.CustomerName
	if customerName == "" {
		customerName = DefaultCustomerName
	}
	return json.Marshal(BillJSON{
		ID:             b.ID,
		BillNumber:     b.BillNumber,
		ShopName:       b.ShopName,
		CustomerName:   customerName,
		CustomerMobile: b.CustomerMobile,
		BillingMode:    b.BillingMode,
		SubTotal:       b.GetSubTotalDecimal(),
		TaxAmount:      b.GetTaxAmountDecimal(),
		DiscountAmount: b.GetDiscountAmountDecimal(),
		GrandTotal:     b.GetGrandTotalDecimal(),
		Items:          items,
		CreatedAt:      b.CreatedAt,
	})
}

// BillItem represents a single weighed line on a bill
type BillItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"bill_id"`
	VegetableID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"vegetable_id"`
	VegetableName string         `gorm:"size:255;not null" json:"vegetable_name"`
	TamilName     string         `gorm:"size:255" json:"tamil_name"`
	QtyKg         float64        `gorm:"not null" json:"qty_kg"`
	UnitPrice     int64          `gorm:"default:0" json:"-"` // Stored in paise
	Total         int64          `gorm:"default:0" json:"-"` // Stored in paise
	CreatedAt     time.Time      `json:"created_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// BillItemJSON is a helper struct for JSON marshaling with rupee amounts
type BillItemJSON struct {
	ID            uuid.UUID `json:"id"`
	VegetableID   uuid.UUID `json:"vegetable_id"`
	VegetableName string    `json:"vegetable_name"`
	TamilName     string    `json:"tamil_name"`
	QtyKg         float64   `json:"qty_kg"`
	UnitPrice     float64   `json:"unit_price"`
	Total         float64   `json:"total"`
}

// MarshalJSON converts BillItem to JSON with rupee amounts
func (i BillItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(BillItemJSON{
		ID:            i.ID,
		VegetableID:   i.VegetableID,
		VegetableName: i.VegetableName,
		TamilName:     i.TamilName,
		QtyKg:         i.QtyKg,
		UnitPrice:     float64(i.UnitPrice) / 100,
		Total:         float64(i.Total) / 100,
	})
}
