// Package filter narrows and reorders list entries for display.
package filter

import (
	"strings"

	"github.com/tayloree/restock/internal/restock"
	"github.com/tayloree/restock/internal/textnorm"
)

// Options holds all filter criteria.
type Options struct {
	// Category accepts a category ID, its Spanish or French name, or a
	// common synonym ("meat", "poisson", "especias").
	Category string
	// Query matches a substring of either product name, ignoring case and
	// accents.
	Query   string
	Ordered bool
	Unknown bool
	Limit   int
}

// Apply filters entries in a single pass, keeping list order.
func Apply(entries []restock.Entry, opts Options) []restock.Entry {
	var matcher categoryMatcher
	hasCategory := strings.TrimSpace(opts.Category) != ""
	if hasCategory {
		matcher = newCategoryMatcher(opts.Category)
	}
	query := textnorm.Normalize(opts.Query)

	capHint := len(entries)
	if opts.Limit > 0 && opts.Limit < capHint {
		capHint = opts.Limit
	}
	result := make([]restock.Entry, 0, capHint)

	for _, e := range entries {
		if opts.Ordered && !e.IsOrderMarked {
			continue
		}
		if opts.Unknown && e.IsKnown {
			continue
		}
		if hasCategory && !matcher.matches(e) {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}

		result = append(result, e)
		if opts.Limit > 0 && len(result) >= opts.Limit {
			break
		}
	}
	return result
}

func matchesQuery(e restock.Entry, query string) bool {
	return strings.Contains(textnorm.Normalize(e.NameES), query) ||
		strings.Contains(textnorm.Normalize(e.NameFR), query)
}

// CategoryCount is the number of entries filed under one category.
type CategoryCount struct {
	ID     string `json:"id"`
	NameES string `json:"nameEs"`
	NameFR string `json:"nameFr"`
	Count  int    `json:"count"`
}

// Categories counts entries per category in first-seen order.
func Categories(entries []restock.Entry) []CategoryCount {
	idx := make(map[string]int)
	var out []CategoryCount
	for _, e := range entries {
		i, ok := idx[e.CategoryID]
		if !ok {
			i = len(out)
			idx[e.CategoryID] = i
			out = append(out, CategoryCount{ID: e.CategoryID, NameES: e.CategoryNameES, NameFR: e.CategoryNameFR})
		}
		out[i].Count++
	}
	return out
}
