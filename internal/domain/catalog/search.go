package catalog

import (
	"sort"
	"strings"

	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/arunvel/kadai-api/internal/domain/enum"
)

// priorityGroups are the fast movers a vegetable shop sells all day. Matching
// items rank above everything else, in this order. Each group lists spelling
// aliases that identify the same item.
var priorityGroups = [][]string{
	{"green chili", "green chilly"},
	{"tomato"},
	{"onion"},
	{"potato"},
	{"green beans", "beans"},
	{"carrot"},
}

// Filter returns the vegetables matching the search term. A vegetable matches
// when its display name or Tamil name contains the raw term, or its display
// name contains the resolved Tanglish term. Comparison is case-insensitive.
// An empty term returns everything (browse mode).
func Filter(items []entity.Vegetable, term string) []entity.Vegetable {
	raw := strings.ToLower(strings.TrimSpace(term))
	if raw == "" {
		out := make([]entity.Vegetable, len(items))
		copy(out, items)
		return out
	}
	resolved := Resolve(raw)

	out := make([]entity.Vegetable, 0)
	for _, v := range items {
		name := strings.ToLower(v.Name)
		if strings.Contains(name, raw) ||
			strings.Contains(v.TamilName, raw) ||
			strings.Contains(name, resolved) {
			out = append(out, v)
		}
	}
	return out
}

// priorityRank returns the index of the first priority group whose alias the
// name contains, or len(priorityGroups) when none matches.
func priorityRank(name string) int {
	lower := strings.ToLower(name)
	for i, group := range priorityGroups {
		for _, alias := range group {
			if strings.Contains(lower, alias) {
				return i
			}
		}
	}
	return len(priorityGroups)
}

// Rank sorts vegetables in place for display: priority items first in their
// fixed order, everything else alphabetically by name. The sort is stable so
// equal-rank items keep their incoming order.
func Rank(items []entity.Vegetable) {
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := priorityRank(items[i].Name), priorityRank(items[j].Name)
		if ri != rj {
			return ri < rj
		}
		if ri < len(priorityGroups) {
			// Same priority group, keep incoming order.
			return false
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

// Search filters by term then ranks the result.
func Search(items []entity.Vegetable, term string) []entity.Vegetable {
	matched := Filter(items, term)
	Rank(matched)
	return matched
}

// CandidatePrice returns the per-kg price in rupees for the given billing
// mode. When the mode-specific price is unset it falls back to the generic
// price, so older catalog rows without split pricing still bill correctly.
func CandidatePrice(v *entity.Vegetable, mode enum.BillingMode) float64 {
	var paise int64
	switch mode {
	case enum.BillingModeWholesale:
		paise = v.WholesalePrice
	default:
		paise = v.RetailPrice
	}
	if paise == 0 {
		paise = v.PricePerKg
	}
	return float64(paise) / 100
}
