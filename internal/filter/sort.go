package filter

import (
	"slices"
	"strings"

	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/restock"
	"github.com/tayloree/restock/internal/textnorm"
)

// Sort modes accepted by SortEntries.
const (
	SortInsertion = ""
	SortName      = "name"
	SortQuantity  = "quantity"
	SortCategory  = "category"
)

// NormalizeSortMode maps user input to a sort mode. Unknown input keeps
// insertion order.
func NormalizeSortMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "name", "nombre", "nom", "alpha", "az":
		return SortName
	case "quantity", "qty", "cantidad", "quantite":
		return SortQuantity
	case "category", "cat", "categoria", "categorie", "kitchen":
		return SortCategory
	default:
		return SortInsertion
	}
}

// SortEntries returns a sorted copy of entries. Every mode is stable.
func SortEntries(entries []restock.Entry, mode string, lang catalog.Language) []restock.Entry {
	out := slices.Clone(entries)

	switch NormalizeSortMode(mode) {
	case SortName:
		slices.SortStableFunc(out, func(a, b restock.Entry) int {
			return strings.Compare(textnorm.Normalize(a.Name(lang)), textnorm.Normalize(b.Name(lang)))
		})
	case SortQuantity:
		slices.SortStableFunc(out, func(a, b restock.Entry) int {
			switch {
			case a.Quantity > b.Quantity:
				return -1
			case a.Quantity < b.Quantity:
				return 1
			default:
				return 0
			}
		})
	case SortCategory:
		rank := make(map[string]int)
		for i, id := range catalog.Default().CategoryOrder() {
			rank[id] = i
		}
		unknown := len(rank)
		slices.SortStableFunc(out, func(a, b restock.Entry) int {
			ra, ok := rank[a.CategoryID]
			if !ok {
				ra = unknown
			}
			rb, ok := rank[b.CategoryID]
			if !ok {
				rb = unknown
			}
			return ra - rb
		})
	}
	return out
}
