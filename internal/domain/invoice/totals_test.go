package invoice

import (
	"testing"

	"github.com/google/uuid"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		lines    []LineItem
		taxRate  float64
		discount float64
		want     Totals
	}{
		{
			name:  "empty ledger",
			lines: nil,
			want:  Totals{},
		},
		{
			name: "subtotal sums line totals",
			lines: []LineItem{
				{Total: 45},
				{Total: 30},
			},
			want: Totals{SubTotal: 75, GrandTotal: 75},
		},
		{
			name:     "discount subtracts",
			lines:    []LineItem{{Total: 45}},
			discount: 10,
			want:     Totals{SubTotal: 45, Discount: 10, GrandTotal: 35},
		},
		{
			name:    "tax applies to subtotal",
			lines:   []LineItem{{Total: 100}},
			taxRate: 0.05,
			want:    Totals{SubTotal: 100, TaxAmount: 5, GrandTotal: 105},
		},
		{
			name:     "oversized discount floors at zero",
			lines:    []LineItem{{Total: 30}},
			discount: 50,
			want:     Totals{SubTotal: 30, Discount: 50, GrandTotal: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.lines, tt.taxRate, tt.discount)
			if got != tt.want {
				t.Errorf("Compute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// End-to-end over the reducer: add tomato at 20/kg, weigh 2.5kg, override the
// line total to 45 (so price becomes 18), then bill with a 10 rupee discount.
func TestComputeAfterEdits(t *testing.T) {
	id := uuid.New()
	l := NewLedger()
	l.Add(id, "Tomato", "தக்காளி", 20)

	if _, err := l.Apply(id, Edit{Kind: EditQuantity, Value: 2.5}); err != nil {
		t.Fatal(err)
	}
	line, err := l.Apply(id, Edit{Kind: EditTotal, Value: 45})
	if err != nil {
		t.Fatal(err)
	}
	if Round2(line.UnitPrice) != 18 {
		t.Errorf("unit price = %v, want 18", line.UnitPrice)
	}

	totals := Compute(l.Lines(), 0, 10)
	if totals.GrandTotal != 35 {
		t.Errorf("grand total = %v, want 35", totals.GrandTotal)
	}
}
