package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/restock"
)

// ErrInvalidPayload is returned when stored data does not describe a valid
// list.
var ErrInvalidPayload = errors.New("invalid stored list")

type fieldKind int

const (
	kindString fieldKind = iota
	kindNonEmptyString
	kindBool
	kindQuantity
)

var requiredFields = []struct {
	name string
	kind fieldKind
}{
	{"id", kindNonEmptyString},
	{"productId", kindNonEmptyString},
	{"productNameEs", kindNonEmptyString},
	{"productNameFr", kindString},
	{"categoryId", kindNonEmptyString},
	{"categoryNameEs", kindString},
	{"categoryNameFr", kindString},
	{"quantity", kindQuantity},
	{"isKnown", kindBool},
	{"isOrderMarked", kindBool},
}

// Decode validates data record by record against cat and returns the
// entries. Any bad record rejects the whole payload. A nil cat uses
// catalog.Default.
func Decode(data []byte, cat *catalog.Catalog) ([]restock.Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var records []map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: not an array of objects: %v", ErrInvalidPayload, err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: record %d is null", ErrInvalidPayload, i)
		}
		if err := validateRecord(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidPayload, i, err)
		}
	}

	var entries []restock.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if cat == nil {
		cat = catalog.Default()
	}
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if first, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("%w: record %d: id %q already used by record %d", ErrInvalidPayload, i, e.ID, first)
		}
		seen[e.ID] = i
		if err := checkEntry(e, cat); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidPayload, i, err)
		}
	}
	return entries, nil
}

// checkEntry enforces the invariants of a decoded entry against the
// dictionary.
func checkEntry(e restock.Entry, cat *catalog.Catalog) error {
	if _, ok := cat.Category(e.CategoryID); !ok {
		return fmt.Errorf("categoryId: unknown category %q", e.CategoryID)
	}
	if e.IsKnown {
		if _, ok := cat.Product(e.ProductID); !ok {
			return fmt.Errorf("productId: %q is not in the dictionary", e.ProductID)
		}
	} else if !restock.IsUnknownProductID(e.ProductID) {
		return fmt.Errorf("productId: unknown product must start with %q, got %q", restock.UnknownProductPrefix, e.ProductID)
	}
	if !e.IsOrderMarked && e.OrderQuantity != nil {
		return errors.New("orderQuantity: set on an entry not marked to order")
	}
	return nil
}

func validateRecord(rec map[string]json.RawMessage) error {
	for _, f := range requiredFields {
		raw, ok := rec[f.name]
		if !ok {
			return fmt.Errorf("missing %s", f.name)
		}
		if err := checkKind(raw, f.kind); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}

	if raw, ok := rec["unit"]; ok && !isNull(raw) {
		var unit string
		if err := json.Unmarshal(raw, &unit); err != nil {
			return errors.New("unit: not a string")
		}
		if !catalog.Unit(unit).Valid() {
			return fmt.Errorf("unit: unknown unit %q", unit)
		}
	}

	if raw, ok := rec["orderQuantity"]; ok && !isNull(raw) {
		var q float64
		if err := json.Unmarshal(raw, &q); err != nil {
			return errors.New("orderQuantity: not a number")
		}
		if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
			return errors.New("orderQuantity: must be greater than 0")
		}
	}
	return nil
}

func checkKind(raw json.RawMessage, kind fieldKind) error {
	switch kind {
	case kindString, kindNonEmptyString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || isNull(raw) {
			return errors.New("not a string")
		}
		if kind == kindNonEmptyString && s == "" {
			return errors.New("empty")
		}
	case kindBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil || isNull(raw) {
			return errors.New("not a boolean")
		}
	case kindQuantity:
		var q float64
		if err := json.Unmarshal(raw, &q); err != nil || isNull(raw) {
			return errors.New("not a number")
		}
		if q < 0 {
			return errors.New("negative")
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
