package invoice

// Totals is the computed money summary of a draft invoice, in rupees at full
// float precision.
type Totals struct {
	SubTotal   float64 `json:"sub_total"`
	TaxAmount  float64 `json:"tax_amount"`
	Discount   float64 `json:"discount"`
	GrandTotal float64 `json:"grand_total"`
}

// Compute derives the invoice totals. taxRate is a fraction (0.05 for 5%).
// The grand total floors at zero so an oversized discount can never produce
// a negative bill.
func Compute(lines []LineItem, taxRate, discount float64) Totals {
	var subTotal float64
	for i := range lines {
		subTotal += lines[i].Total
	}

	tax := subTotal * taxRate
	grand := subTotal + tax - discount
	if grand < 0 {
		grand = 0
	}

	return Totals{
		SubTotal:   subTotal,
		TaxAmount:  tax,
		Discount:   discount,
		GrandTotal: grand,
	}
}
