package catalog

import (
	"testing"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/internal/domain/enum"
)

func veg(name, tamil string) entity.Vegetable {
	return entity.Vegetable{Name: name, TamilName: tamil}
}

func names(items []entity.Vegetable) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = v.Name
	}
	return out
}

func assertNames(t *testing.T, got []entity.Vegetable, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", names(got), want)
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("got %v, want %v", names(got), want)
		}
	}
}

func TestFilter(t *testing.T) {
	items := []entity.Vegetable{
		veg("Tomato", "தக்காளி"),
		veg("Onion", "வெங்காயம்"),
		veg("Potato", "உருளைக்கிழங்கு"),
		veg("Sweet Potato", "சர்க்கரைவள்ளி கிழங்கு"),
	}

	t.Run("empty term returns all", func(t *testing.T) {
		got := Filter(items, "")
		if len(got) != len(items) {
			t.Fatalf("got %d items, want %d", len(got), len(items))
		}
	})

	t.Run("name substring case-insensitive", func(t *testing.T) {
		assertNames(t, Filter(items, "toma"), "Tomato")
		assertNames(t, Filter(items, "TOMA"), "Tomato")
	})

	t.Run("substring matches multiple", func(t *testing.T) {
		assertNames(t, Filter(items, "potato"), "Potato", "Sweet Potato")
	})

	t.Run("tanglish term resolves", func(t *testing.T) {
		assertNames(t, Filter(items, "thakkali"), "Tomato")
	})

	t.Run("tamil script matches", func(t *testing.T) {
		assertNames(t, Filter(items, "தக்காளி"), "Tomato")
	})

	t.Run("no match", func(t *testing.T) {
		if got := Filter(items, "zucchini"); len(got) != 0 {
			t.Fatalf("got %v, want empty", names(got))
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		got := Filter(items, "")
		got[0] = veg("Changed", "")
		if items[0].Name != "Tomato" {
			t.Fatal("Filter returned a slice aliasing the input")
		}
	})
}

func TestRank(t *testing.T) {
	t.Run("priority items lead in fixed order", func(t *testing.T) {
		items := []entity.Vegetable{
			veg("Beetroot", ""),
			veg("Carrot", ""),
			veg("Onion", ""),
			veg("Ash Gourd", ""),
			veg("Tomato", ""),
			veg("Green Chilly", ""),
		}
		Rank(items)
		assertNames(t, items, "Green Chilly", "Tomato", "Onion", "Carrot", "Ash Gourd", "Beetroot")
	})

	t.Run("beans alias ranks with green beans", func(t *testing.T) {
		items := []entity.Vegetable{
			veg("Cabbage", ""),
			veg("Beans", ""),
			veg("Potato", ""),
		}
		Rank(items)
		assertNames(t, items, "Potato", "Beans", "Cabbage")
	})

	t.Run("non-priority alphabetical", func(t *testing.T) {
		items := []entity.Vegetable{
			veg("Radish", ""),
			veg("Brinjal", ""),
			veg("Cucumber", ""),
		}
		Rank(items)
		assertNames(t, items, "Brinjal", "Cucumber", "Radish")
	})

	t.Run("stable within a priority group", func(t *testing.T) {
		items := []entity.Vegetable{
			veg("Small Onion", ""),
			veg("Onion", ""),
		}
		Rank(items)
		assertNames(t, items, "Small Onion", "Onion")
	})
}

func TestCandidatePrice(t *testing.T) {
	v := entity.Vegetable{
		PricePerKg:     3000,
		RetailPrice:    4000,
		WholesalePrice: 3200,
	}

	if got := CandidatePrice(&v, enum.BillingModeRetail); got != 40 {
		t.Errorf("retail price = %v, want 40", got)
	}
	if got := CandidatePrice(&v, enum.BillingModeWholesale); got != 32 {
		t.Errorf("wholesale price = %v, want 32", got)
	}

	t.Run("falls back to generic price", func(t *testing.T) {
		legacy := entity.Vegetable{PricePerKg: 3000}
		if got := CandidatePrice(&legacy, enum.BillingModeRetail); got != 30 {
			t.Errorf("retail fallback = %v, want 30", got)
		}
		if got := CandidatePrice(&legacy, enum.BillingModeWholesale); got != 30 {
			t.Errorf("wholesale fallback = %v, want 30", got)
		}
	})
}
