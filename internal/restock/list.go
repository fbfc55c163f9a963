package restock

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/textnorm"
)

// MinOrderQuantity is the smallest order quantity a marked entry can hold.
const MinOrderQuantity = 0.1

// List is the single owned restocking list. It is not safe for concurrent
// use; callers hand out copies from Entries.
type List struct {
	classifier *Classifier
	logger     *slog.Logger
	entries    []Entry
}

// AddResult describes what AddProduct did.
type AddResult struct {
	ID        string
	Duplicate bool
	Entry     Entry
}

// NewList creates a list seeded with entries.
func NewList(classifier *Classifier, entries ...Entry) *List {
	l := &List{classifier: classifier, logger: classifier.logger}
	l.Load(entries)
	return l
}

// Load replaces the list contents with a copy of entries.
func (l *List) Load(entries []Entry) {
	l.entries = cloneEntries(entries)
}

// Entries returns a copy of the entries in insertion order.
func (l *List) Entries() []Entry {
	return cloneEntries(l.entries)
}

// Classifier returns the classifier new entries are built with.
func (l *List) Classifier() *Classifier {
	return l.classifier
}

// AddProduct merges rawName into an existing entry with the same unit, or
// classifies and appends a new one. A nil quantity counts as 1.
//
// Duplicates are found by normalized name, and not only on the typed name:
// the name the dictionary resolves the input to also counts, so "tomates"
// merges into an existing "Tomate".
func (l *List) AddProduct(ctx context.Context, rawName string, quantity *float64, unit catalog.Unit) (AddResult, error) {
	res, merged, err := l.MergeExisting(rawName, quantity, unit)
	if err != nil || merged {
		return res, err
	}

	entry, err := l.classifier.Classify(ctx, rawName, QuantityOrDefault(quantity), unit)
	if err != nil {
		return AddResult{}, err
	}
	return l.Append(entry), nil
}

// MergeExisting adds quantity to the entry AddProduct would merge rawName
// into. merged is false when no entry matches and the input still needs
// classifying.
func (l *List) MergeExisting(rawName string, quantity *float64, unit catalog.Unit) (res AddResult, merged bool, err error) {
	qty := QuantityOrDefault(quantity)
	name, err := validateInput(rawName, qty, unit)
	if err != nil {
		return AddResult{}, false, err
	}

	idx := l.findDuplicate(name, unit)
	if idx < 0 {
		return AddResult{}, false, nil
	}
	return l.mergeAt(idx, qty), true, nil
}

// Append inserts an entry built by the classifier, merging it into an
// existing entry with the same name and unit.
func (l *List) Append(entry Entry) AddResult {
	if idx := l.findDuplicate(entry.NameES, entry.Unit); idx >= 0 {
		return l.mergeAt(idx, entry.Quantity)
	}
	l.entries = append(l.entries, entry.Clone())
	return AddResult{ID: entry.ID, Entry: entry.Clone()}
}

func (l *List) mergeAt(idx int, qty float64) AddResult {
	e := &l.entries[idx]
	e.Quantity = addQuantities(e.Quantity, qty)
	l.logger.Debug("merged duplicate entry", "id", e.ID, "name", e.NameES, "quantity", e.Quantity)
	return AddResult{ID: e.ID, Duplicate: true, Entry: e.Clone()}
}

// QuantityOrDefault returns *q, or 1 when q is nil.
func QuantityOrDefault(q *float64) float64 {
	if q == nil {
		return 1
	}
	return *q
}

// findDuplicate matches on the typed name and on the canonical name it
// resolves to, so "tomates" merges into an existing "Tomate".
func (l *List) findDuplicate(name string, unit catalog.Unit) int {
	keys := []string{textnorm.Normalize(name)}
	if m, ok := l.classifier.catalog.Lookup(name); ok {
		keys = append(keys, textnorm.Normalize(m.Product.NameES))
	}

	for i, e := range l.entries {
		if e.Unit != unit {
			continue
		}
		existing := textnorm.Normalize(e.NameES)
		for _, key := range keys {
			if existing == key {
				return i
			}
		}
	}
	return -1
}

// Merge folds already classified entries into the list. An entry with the
// same name and unit as an existing one adds its quantity; the rest are
// appended as given.
func (l *List) Merge(entries []Entry) (added, merged int) {
	for _, in := range entries {
		if l.Append(in).Duplicate {
			merged++
		} else {
			added++
		}
	}
	return added, merged
}

// RemoveItem deletes the entry with id. Missing IDs are ignored.
func (l *List) RemoveItem(id string) bool {
	idx := l.indexOf(id)
	if idx < 0 {
		return false
	}
	l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
	return true
}

// UpdateQuantity sets the quantity, clamped at zero.
func (l *List) UpdateQuantity(id string, value float64) bool {
	idx := l.indexOf(id)
	if idx < 0 {
		return false
	}
	if math.IsNaN(value) || value < 0 {
		value = 0
	}
	l.entries[idx].Quantity = value
	return true
}

// UpdateUnit replaces the unit; catalog.UnitNone clears it.
func (l *List) UpdateUnit(id string, unit catalog.Unit) (bool, error) {
	if !unit.Valid() {
		return false, &ValidationError{Field: "unit", Err: fmt.Errorf("%w: %q", ErrInvalidUnit, unit)}
	}
	idx := l.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	l.entries[idx].Unit = unit
	return true, nil
}

// ToggleOrderMarked flips the order mark. Marking copies the current
// quantity into the order quantity; unmarking clears it.
func (l *List) ToggleOrderMarked(id string) bool {
	idx := l.indexOf(id)
	if idx < 0 {
		return false
	}
	e := &l.entries[idx]
	if e.IsOrderMarked {
		e.IsOrderMarked = false
		e.OrderQuantity = nil
		return true
	}
	e.IsOrderMarked = true
	e.OrderQuantity = nil
	// A zero quantity leaves the order unset so the list reports it invalid.
	if e.Quantity > 0 {
		q := e.Quantity
		e.OrderQuantity = &q
	}
	return true
}

// UpdateOrderQuantity sets the order quantity of a marked entry, clamped at
// MinOrderQuantity. Unmarked entries are left untouched.
func (l *List) UpdateOrderQuantity(id string, value float64) bool {
	idx := l.indexOf(id)
	if idx < 0 || !l.entries[idx].IsOrderMarked {
		return false
	}
	if math.IsNaN(value) || value < MinOrderQuantity {
		value = MinOrderQuantity
	}
	l.entries[idx].OrderQuantity = &value
	return true
}

// Clear empties the list.
func (l *List) Clear() {
	l.entries = nil
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Get returns a copy of the entry with id.
func (l *List) Get(id string) (Entry, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return Entry{}, false
	}
	return l.entries[idx].Clone(), true
}

// Resolve finds an entry by full ID or by a unique ID prefix.
func (l *List) Resolve(idOrPrefix string) (Entry, error) {
	ref := strings.TrimSpace(idOrPrefix)
	if ref == "" {
		return Entry{}, ErrEntryNotFound
	}
	if e, ok := l.Get(ref); ok {
		return e, nil
	}

	found := -1
	for i, e := range l.entries {
		if !strings.HasPrefix(e.ID, ref) {
			continue
		}
		if found >= 0 {
			return Entry{}, fmt.Errorf("%w: %q", ErrAmbiguousID, ref)
		}
		found = i
	}
	if found < 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, ref)
	}
	return l.entries[found].Clone(), nil
}

// TotalQuantity sums every entry quantity without float drift.
func (l *List) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(decimal.NewFromFloat(e.Quantity))
	}
	return total
}

// OrderedCount returns the number of order-marked entries.
func (l *List) OrderedCount() int {
	n := 0
	for _, e := range l.entries {
		if e.IsOrderMarked {
			n++
		}
	}
	return n
}

// OrderedEntries returns copies of the order-marked entries.
func (l *List) OrderedEntries() []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.IsOrderMarked {
			out = append(out, e.Clone())
		}
	}
	return out
}

// IsOrderValid reports whether every marked entry has a positive order
// quantity.
func (l *List) IsOrderValid() bool {
	for _, e := range l.entries {
		if !e.HasValidOrder() {
			return false
		}
	}
	return true
}

// IncompleteEntries returns the entries that block an export under mode.
func (l *List) IncompleteEntries(mode Mode) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if mode.Incomplete(e) {
			out = append(out, e.Clone())
		}
	}
	return out
}

// Stats is a read-only summary of the list.
type Stats struct {
	Entries       int             `json:"entries"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
	Ordered       int             `json:"ordered"`
	OrderValid    bool            `json:"orderValid"`
	Unknown       int             `json:"unknown"`
	Incomplete    int             `json:"incomplete"`
}

// Stats summarizes the list under mode.
func (l *List) Stats(mode Mode) Stats {
	unknown := 0
	for _, e := range l.entries {
		if !e.IsKnown {
			unknown++
		}
	}
	return Stats{
		Entries:       l.Len(),
		TotalQuantity: l.TotalQuantity(),
		Ordered:       l.OrderedCount(),
		OrderValid:    l.IsOrderValid(),
		Unknown:       unknown,
		Incomplete:    len(l.IncompleteEntries(mode)),
	}
}

func (l *List) indexOf(id string) int {
	for i, e := range l.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func addQuantities(a, b float64) float64 {
	sum, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Float64()
	return sum
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
