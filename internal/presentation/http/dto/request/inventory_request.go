package request

// CreateVegetableRequest represents a new catalog item
type CreateVegetableRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=255"`
	TamilName      string  `json:"tamil_name"`
	TanglishName   string  `json:"tanglish_name"`
	Category       string  `json:"category"`
	RetailPrice    float64 `json:"retail_price" binding:"required,gt=0"`
	WholesalePrice float64 `json:"wholesale_price" binding:"gte=0"`
	StockKg        float64 `json:"stock_kg" binding:"gte=0"`
}

// UpdateVegetableRequest represents a catalog update; nil fields are left alone
type UpdateVegetableRequest struct {
	RetailPrice    *float64 `json:"retail_price" binding:"omitempty,gt=0"`
	WholesalePrice *float64 `json:"wholesale_price" binding:"omitempty,gte=0"`
	StockKg        *float64 `json:"stock_kg" binding:"omitempty,gte=0"`
	TamilName      *string  `json:"tamil_name"`
	Category       *string  `json:"category"`
}

// BulkSyncRow is one row of a bulk catalog upload
type BulkSyncRow struct {
	Name           string  `json:"name" binding:"required"`
	TamilName      string  `json:"tamil_name"`
	TanglishName   string  `json:"tanglish_name"`
	RetailPrice    float64 `json:"retail_price" binding:"gte=0"`
	WholesalePrice float64 `json:"wholesale_price" binding:"gte=0"`
	StockKg        float64 `json:"stock_kg" binding:"gte=0"`
}

// BulkSyncRequest represents a bulk catalog upload
type BulkSyncRequest struct {
	Items []BulkSyncRow `json:"items" binding:"required,min=1,dive"`
}
