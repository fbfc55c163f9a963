// Package grouping partitions list entries into category groups in kitchen
// order, ready for display, printing and the TUI.
package grouping

import (
	"slices"

	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/restock"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Group is one non-empty category bucket.
type Group struct {
	CategoryID  string          `json:"categoryId"`
	Entries     []restock.Entry `json:"entries"`
	HighlightID string          `json:"highlightId,omitempty"`
}

// Name returns the category display name for lang.
func (g Group) Name(lang catalog.Language) string {
	if len(g.Entries) == 0 {
		return g.CategoryID
	}
	return g.Entries[0].CategoryName(lang)
}

// Highlighted reports whether the group leads with the highlighted entry.
func (g Group) Highlighted() bool {
	return g.HighlightID != ""
}

// GroupAndOrder groups entries using the built-in category order.
func GroupAndOrder(entries []restock.Entry, highlightID string, lang catalog.Language) []Group {
	return GroupAndOrderBy(entries, highlightID, lang, catalog.Default().CategoryOrder())
}

// GroupAndOrderBy groups entries by category following order.
//
// Inside a group the highlighted entry comes first and the rest are sorted
// by display name for lang, ignoring case and accents; equal names keep
// insertion order. The highlighted entry's group moves to the front.
// Categories missing from order follow the known ones in first-seen order.
// Empty groups are never returned.
func GroupAndOrderBy(entries []restock.Entry, highlightID string, lang catalog.Language, order []string) []Group {
	if len(entries) == 0 {
		return nil
	}

	buckets := make(map[string][]restock.Entry)
	var seen []string
	highlightCategory := ""
	for _, e := range entries {
		if _, ok := buckets[e.CategoryID]; !ok {
			seen = append(seen, e.CategoryID)
		}
		buckets[e.CategoryID] = append(buckets[e.CategoryID], e.Clone())
		if highlightID != "" && e.ID == highlightID && highlightCategory == "" {
			highlightCategory = e.CategoryID
		}
	}

	col := collate.New(collateTag(lang), collate.IgnoreCase, collate.IgnoreDiacritics)

	groups := make([]Group, 0, len(buckets))
	for _, id := range categorySequence(order, seen, highlightCategory) {
		bucket, ok := buckets[id]
		if !ok {
			continue
		}
		g := Group{CategoryID: id}
		if id == highlightCategory {
			g.HighlightID = highlightID
		}
		g.Entries = orderBucket(col, bucket, g.HighlightID, lang)
		groups = append(groups, g)
	}
	return groups
}

// categorySequence is the emit order: highlighted category, then the
// canonical order, then unknown categories as first seen.
func categorySequence(order, seen []string, highlightCategory string) []string {
	seq := make([]string, 0, len(order)+len(seen)+1)
	done := make(map[string]bool, len(order)+len(seen))
	push := func(id string) {
		if done[id] {
			return
		}
		done[id] = true
		seq = append(seq, id)
	}

	if highlightCategory != "" {
		push(highlightCategory)
	}
	for _, id := range order {
		push(id)
	}
	for _, id := range seen {
		push(id)
	}
	return seq
}

func orderBucket(col *collate.Collator, bucket []restock.Entry, highlightID string, lang catalog.Language) []restock.Entry {
	var head []restock.Entry
	rest := make([]restock.Entry, 0, len(bucket))
	for _, e := range bucket {
		if highlightID != "" && e.ID == highlightID && len(head) == 0 {
			head = append(head, e)
			continue
		}
		rest = append(rest, e)
	}

	slices.SortStableFunc(rest, func(a, b restock.Entry) int {
		return col.CompareString(a.Name(lang), b.Name(lang))
	})
	return append(head, rest...)
}

func collateTag(lang catalog.Language) language.Tag {
	if lang == catalog.French {
		return language.French
	}
	return language.Spanish
}
