package invoice

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLedgerAdd(t *testing.T) {
	tomatoID := uuid.New()
	onionID := uuid.New()

	t.Run("new line starts at one kg", func(t *testing.T) {
		l := NewLedger()
		line := l.Add(tomatoID, "Tomato", "தக்காளி", 20)

		if line.QtyKg != 1 {
			t.Errorf("qty = %v, want 1", line.QtyKg)
		}
		if line.UnitPrice != 20 {
			t.Errorf("unit price = %v, want 20", line.UnitPrice)
		}
		if line.Total != 20 {
			t.Errorf("total = %v, want 20", line.Total)
		}
	})

	t.Run("repeat add bumps quantity", func(t *testing.T) {
		l := NewLedger()
		l.Add(tomatoID, "Tomato", "தக்காளி", 20)
		line := l.Add(tomatoID, "Tomato", "தக்காளி", 20)

		if l.Len() != 1 {
			t.Fatalf("len = %d, want 1", l.Len())
		}
		if line.QtyKg != 2 || line.Total != 40 {
			t.Errorf("qty = %v total = %v, want 2 and 40", line.QtyKg, line.Total)
		}
	})

	t.Run("repeat add uses edited unit price", func(t *testing.T) {
		l := NewLedger()
		l.Add(tomatoID, "Tomato", "தக்காளி", 20)
		if _, err := l.Apply(tomatoID, Edit{Kind: EditPrice, Value: 30}); err != nil {
			t.Fatal(err)
		}
		line := l.Add(tomatoID, "Tomato", "தக்காளி", 20)

		if line.QtyKg != 2 || line.Total != 60 {
			t.Errorf("qty = %v total = %v, want 2 and 60", line.QtyKg, line.Total)
		}
	})

	t.Run("distinct vegetables keep insertion order", func(t *testing.T) {
		l := NewLedger()
		l.Add(tomatoID, "Tomato", "", 20)
		l.Add(onionID, "Onion", "", 40)

		lines := l.Lines()
		if len(lines) != 2 || lines[0].Name != "Tomato" || lines[1].Name != "Onion" {
			t.Errorf("unexpected lines %+v", lines)
		}
	})
}

func TestLedgerRemove(t *testing.T) {
	id := uuid.New()
	l := NewLedger()
	l.Add(id, "Tomato", "", 20)

	l.Remove(id)
	if !l.IsEmpty() {
		t.Fatal("ledger not empty after remove")
	}

	// Removing again is a no-op.
	l.Remove(id)
	if !l.IsEmpty() {
		t.Fatal("second remove changed the ledger")
	}
}

func TestLedgerApplyQuantity(t *testing.T) {
	id := uuid.New()

	newLine := func() *Ledger {
		l := NewLedger()
		l.Add(id, "Tomato", "", 20)
		return l
	}

	t.Run("quantity drives total", func(t *testing.T) {
		l := newLine()
		line, err := l.Apply(id, Edit{Kind: EditQuantity, Value: 2.5})
		if err != nil {
			t.Fatal(err)
		}
		if line.QtyKg != 2.5 || !almostEqual(line.Total, 50) {
			t.Errorf("qty = %v total = %v, want 2.5 and 50", line.QtyKg, line.Total)
		}
	})

	t.Run("quantity rounds to two decimals", func(t *testing.T) {
		l := newLine()
		line, err := l.Apply(id, Edit{Kind: EditQuantity, Value: 1.23456})
		if err != nil {
			t.Fatal(err)
		}
		if line.QtyKg != 1.23 {
			t.Errorf("qty = %v, want 1.23", line.QtyKg)
		}
	})

	t.Run("below floor rejected and line unchanged", func(t *testing.T) {
		l := newLine()
		line, err := l.Apply(id, Edit{Kind: EditQuantity, Value: 0.004})
		if !errors.Is(err, ErrQuantityBelowFloor) {
			t.Fatalf("err = %v, want ErrQuantityBelowFloor", err)
		}
		if line.QtyKg != 1 || line.Total != 20 {
			t.Errorf("line changed on rejected edit: %+v", line)
		}
	})

	t.Run("exact floor accepted", func(t *testing.T) {
		l := newLine()
		line, err := l.Apply(id, Edit{Kind: EditQuantity, Value: 0.01})
		if err != nil {
			t.Fatal(err)
		}
		if line.QtyKg != 0.01 {
			t.Errorf("qty = %v, want 0.01", line.QtyKg)
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		l := newLine()
		if _, err := l.Apply(uuid.New(), Edit{Kind: EditQuantity, Value: 2}); !errors.Is(err, ErrLineNotFound) {
			t.Fatalf("err = %v, want ErrLineNotFound", err)
		}
	})
}

func TestLedgerApplyPrice(t *testing.T) {
	id := uuid.New()
	l := NewLedger()
	l.Add(id, "Tomato", "", 20)
	if _, err := l.Apply(id, Edit{Kind: EditQuantity, Value: 2.5}); err != nil {
		t.Fatal(err)
	}

	line, err := l.Apply(id, Edit{Kind: EditPrice, Value: 18})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(line.Total, 45) {
		t.Errorf("total = %v, want 45", line.Total)
	}

	t.Run("negative price clamps to zero", func(t *testing.T) {
		line, err := l.Apply(id, Edit{Kind: EditPrice, Value: -5})
		if err != nil {
			t.Fatal(err)
		}
		if line.UnitPrice != 0 || line.Total != 0 {
			t.Errorf("price = %v total = %v, want 0 and 0", line.UnitPrice, line.Total)
		}
	})
}

func TestLedgerApplyTotal(t *testing.T) {
	id := uuid.New()

	t.Run("total drives price", func(t *testing.T) {
		l := NewLedger()
		l.Add(id, "Tomato", "", 20)
		if _, err := l.Apply(id, Edit{Kind: EditQuantity, Value: 2.5}); err != nil {
			t.Fatal(err)
		}

		line, err := l.Apply(id, Edit{Kind: EditTotal, Value: 45})
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(line.UnitPrice, 18) {
			t.Errorf("unit price = %v, want 18", line.UnitPrice)
		}
	})

	t.Run("negative total clamps to zero", func(t *testing.T) {
		l := NewLedger()
		l.Add(id, "Tomato", "", 20)

		line, err := l.Apply(id, Edit{Kind: EditTotal, Value: -10})
		if err != nil {
			t.Fatal(err)
		}
		if line.Total != 0 || line.UnitPrice != 0 {
			t.Errorf("total = %v price = %v, want 0 and 0", line.Total, line.UnitPrice)
		}
	})
}

func TestLedgerStep(t *testing.T) {
	id := uuid.New()
	l := NewLedger()
	l.Add(id, "Tomato", "", 20)

	line, err := l.Step(id, QuantityStepKg)
	if err != nil {
		t.Fatal(err)
	}
	if line.QtyKg != 1.25 || !almostEqual(line.Total, 25) {
		t.Errorf("qty = %v total = %v, want 1.25 and 25", line.QtyKg, line.Total)
	}

	t.Run("step below floor rejected", func(t *testing.T) {
		if _, err := l.Apply(id, Edit{Kind: EditQuantity, Value: 0.1}); err != nil {
			t.Fatal(err)
		}
		_, err := l.Step(id, -QuantityStepKg)
		if !errors.Is(err, ErrQuantityBelowFloor) {
			t.Fatalf("err = %v, want ErrQuantityBelowFloor", err)
		}
	})
}

func TestLinesIsACopy(t *testing.T) {
	id := uuid.New()
	l := NewLedger()
	l.Add(id, "Tomato", "", 20)

	lines := l.Lines()
	lines[0].QtyKg = 99

	if l.Lines()[0].QtyKg != 1 {
		t.Fatal("Lines exposed internal state")
	}
}
