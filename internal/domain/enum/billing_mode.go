package enum

// BillingMode selects which price column applies to a sale.
type BillingMode string

const (
	BillingModeRetail    BillingMode = "Retail"
	BillingModeWholesale BillingMode = "Wholesale"
)

// IsValid checks if the billing mode is valid
func (m BillingMode) IsValid() bool {
	switch m {
	case BillingModeRetail, BillingModeWholesale:
		return true
	}
	return false
}

// String returns the string representation
func (m BillingMode) String() string {
	return string(m)
}
