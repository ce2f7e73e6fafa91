package invoice

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// MinQuantityKg is the smallest weight the till accepts on a line.
const MinQuantityKg = 0.01

// QuantityStepKg is the increment used by the quantity stepper buttons.
const QuantityStepKg = 0.25

var (
	// ErrLineNotFound is returned when an edit targets a vegetable not on the ledger.
	ErrLineNotFound = errors.New("line item not found")
	// ErrQuantityBelowFloor is returned when a quantity edit would drop below MinQuantityKg.
	ErrQuantityBelowFloor = errors.New("quantity below minimum")
)

// LineItem is one weighed entry on the draft invoice. Amounts are rupees at
// full float precision; rounding happens only at presentation.
type LineItem struct {
	VegetableID uuid.UUID `json:"vegetable_id"`
	Name        string    `json:"name"`
	TamilName   string    `json:"tamil_name"`
	QtyKg       float64   `json:"qty_kg"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
}

// EditKind names which of the three mutually derived fields the operator typed.
type EditKind int

const (
	EditQuantity EditKind = iota
	EditPrice
	EditTotal
)

// Edit is a single field change to a line. Exactly one field drives; the
// reducer derives the other two.
type Edit struct {
	Kind  EditKind
	Value float64
}

// Ledger is the ordered set of line items on a draft invoice, keyed by
// vegetable identity. Not safe for concurrent use; callers serialize access.
type Ledger struct {
	lines []LineItem
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{lines: make([]LineItem, 0)}
}

// Lines returns a copy of the current line items in insertion order.
func (l *Ledger) Lines() []LineItem {
	out := make([]LineItem, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of lines.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// IsEmpty reports whether the ledger has no lines.
func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

func (l *Ledger) find(vegetableID uuid.UUID) int {
	for i := range l.lines {
		if l.lines[i].VegetableID == vegetableID {
			return i
		}
	}
	return -1
}

// Add puts a vegetable on the ledger. A repeated add of the same vegetable
// bumps its quantity by one kg and recomputes the total at the line's current
// unit price, which may have been hand-edited since the first add. A new
// vegetable starts at one kg of the given unit price.
func (l *Ledger) Add(vegetableID uuid.UUID, name, tamilName string, unitPrice float64) LineItem {
	if idx := l.find(vegetableID); idx >= 0 {
		line := &l.lines[idx]
		line.QtyKg = roundQty(line.QtyKg + 1)
		line.Total = line.QtyKg * line.UnitPrice
		return *line
	}

	line := LineItem{
		VegetableID: vegetableID,
		Name:        name,
		TamilName:   tamilName,
		QtyKg:       1,
		UnitPrice:   unitPrice,
		Total:       unitPrice,
	}
	l.lines = append(l.lines, line)
	return line
}

// Remove deletes a line. Removing an absent vegetable is a no-op.
func (l *Ledger) Remove(vegetableID uuid.UUID) {
	idx := l.find(vegetableID)
	if idx < 0 {
		return
	}
	l.lines = append(l.lines[:idx], l.lines[idx+1:]...)
}

// Apply runs one edit against a line and rederives the dependent fields:
//
//	quantity drives: total = qty * price
//	price drives:    total = price * qty
//	total drives:    price = total / qty (price 0 when qty is 0)
//
// Quantities are rounded to two decimals and floored at MinQuantityKg; an
// edit below the floor returns ErrQuantityBelowFloor and leaves the line
// unchanged. Negative prices and totals clamp to zero.
func (l *Ledger) Apply(vegetableID uuid.UUID, edit Edit) (LineItem, error) {
	idx := l.find(vegetableID)
	if idx < 0 {
		return LineItem{}, ErrLineNotFound
	}
	line := &l.lines[idx]

	switch edit.Kind {
	case EditQuantity:
		qty := roundQty(edit.Value)
		if qty < MinQuantityKg {
			return *line, ErrQuantityBelowFloor
		}
		line.QtyKg = qty
		line.Total = line.QtyKg * line.UnitPrice

	case EditPrice:
		price := edit.Value
		if price < 0 {
			price = 0
		}
		line.UnitPrice = price
		line.Total = line.UnitPrice * line.QtyKg

	case EditTotal:
		total := edit.Value
		if total < 0 {
			total = 0
		}
		line.Total = total
		if line.QtyKg > 0 {
			line.UnitPrice = total / line.QtyKg
		} else {
			line.UnitPrice = 0
		}
	}

	return *line, nil
}

// Step nudges a line's quantity by delta kg, subject to the same rounding and
// floor rules as a typed quantity.
func (l *Ledger) Step(vegetableID uuid.UUID, delta float64) (LineItem, error) {
	idx := l.find(vegetableID)
	if idx < 0 {
		return LineItem{}, ErrLineNotFound
	}
	return l.Apply(vegetableID, Edit{Kind: EditQuantity, Value: l.lines[idx].QtyKg + delta})
}

func roundQty(kg float64) float64 {
	return math.Round(kg*100) / 100
}

// Round2 rounds a rupee amount to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
