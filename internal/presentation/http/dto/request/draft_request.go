package request

// AddItemRequest puts a vegetable on the draft
type AddItemRequest struct {
	VegetableID string `json:"vegetable_id" binding:"required,uuid"`
}

// EditLineRequest changes one field of a draft line. Field selects which of
// the three mutually derived values the operator typed.
type EditLineRequest struct {
	Field string  `json:"field" binding:"required,oneof=quantity price total"`
	Value float64 `json:"value" binding:"required"`
}

// StepQuantityRequest nudges a line's weight by delta kg
type StepQuantityRequest struct {
	DeltaKg float64 `json:"delta_kg" binding:"required"`
}

// SetDiscountRequest sets the flat rupee discount on the draft
type SetDiscountRequest struct {
	Discount float64 `json:"discount"`
}

// SetBillingModeRequest switches Retail/Wholesale pricing
type SetBillingModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=Retail Wholesale"`
}

// SetCustomerRequest updates the draft's customer fields. Mobile may be
// partial; the lookup only fires once it reaches ten digits.
type SetCustomerRequest struct {
	Name   *string `json:"name"`
	Mobile *string `json:"mobile"`
}

// SetSearchTermRequest records the current item search box contents
type SetSearchTermRequest struct {
	Term string `json:"term"`
}
