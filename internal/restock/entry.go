// Package restock owns the restocking list: classifying raw input into
// entries and aggregating them into a single list.
package restock

import (
	"strings"

	"github.com/tayloree/restock/internal/catalog"
)

// UnknownProductPrefix starts every product ID minted for input that did
// not resolve to a dictionary product.
const UnknownProductPrefix = "unknown-"

// Entry is one line of the restocking list. JSON field names are the
// persisted shape.
type Entry struct {
	ID             string       `json:"id"`
	ProductID      string       `json:"productId"`
	NameES         string       `json:"productNameEs"`
	NameFR         string       `json:"productNameFr"`
	CategoryID     string       `json:"categoryId"`
	CategoryNameES string       `json:"categoryNameEs"`
	CategoryNameFR string       `json:"categoryNameFr"`
	Quantity       float64      `json:"quantity"`
	Unit           catalog.Unit `json:"unit,omitempty"`
	IsKnown        bool         `json:"isKnown"`
	IsOrderMarked  bool         `json:"isOrderMarked"`
	OrderQuantity  *float64     `json:"orderQuantity,omitempty"`
}

// Name returns the display name for lang, falling back to the other
// language when it is empty.
func (e Entry) Name(lang catalog.Language) string {
	if lang == catalog.French && e.NameFR != "" {
		return e.NameFR
	}
	if e.NameES == "" {
		return e.NameFR
	}
	return e.NameES
}

// CategoryName returns the category display name for lang.
func (e Entry) CategoryName(lang catalog.Language) string {
	if lang == catalog.French && e.CategoryNameFR != "" {
		return e.CategoryNameFR
	}
	return e.CategoryNameES
}

// HasValidOrder reports whether a marked entry carries a positive order
// quantity. Unmarked entries are always valid.
func (e Entry) HasValidOrder() bool {
	if !e.IsOrderMarked {
		return true
	}
	return e.OrderQuantity != nil && *e.OrderQuantity > 0
}

// IsUnknownProductID reports whether id was minted for an unresolved input.
func IsUnknownProductID(id string) bool {
	return strings.HasPrefix(id, UnknownProductPrefix)
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	if e.OrderQuantity != nil {
		q := *e.OrderQuantity
		e.OrderQuantity = &q
	}
	return e
}

// Mode carries display/export toggles that change how entries are judged.
type Mode struct {
	// Quantity turns on per-entry quantities and units for export; entries
	// without a measured unit are then incomplete.
	Quantity bool
}

// Incomplete reports whether e blocks an export under m.
func (m Mode) Incomplete(e Entry) bool {
	return m.Quantity && !e.Unit.Measured()
}
