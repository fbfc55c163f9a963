package filter

import (
	"strings"

	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/restock"
	"github.com/tayloree/restock/internal/textnorm"
)

// categorySynonyms maps category IDs to kitchen shorthand in Spanish,
// French and English. Keys and values are already normalized.
var categorySynonyms = map[string][]string{
	"carnes":      {"carne", "meat", "viande", "viandes", "charcuteria", "aves", "volaille"},
	"pescados":    {"pescado", "marisco", "mariscos", "fish", "seafood", "poisson", "poissons", "fruits de mer"},
	"verduras":    {"verdura", "hortalizas", "vegetables", "veggies", "legumes", "produce"},
	"frutas":      {"fruta", "fruit", "fruits"},
	"lacteos":     {"lacteo", "dairy", "produits laitiers", "laitiers", "queso", "quesos"},
	"secos":       {"seco", "despensa", "pantry", "epicerie", "dry goods", "legumbres"},
	"condimentos": {"condimento", "especias", "especia", "spices", "epices", "salsas"},
	"aceites":     {"aceite", "oils", "oil", "huiles", "huile", "vinagres"},
	"bebidas":     {"bebida", "drinks", "boissons", "vinos", "alcohol"},
	"otros":       {"otro", "misc", "other", "autres", "varios"},
}

type categoryMatcher struct {
	ids   map[string]struct{}
	names map[string]struct{}
}

func newCategoryMatcher(wanted string) categoryMatcher {
	norm := normalizeCategory(wanted)
	m := categoryMatcher{
		ids:   make(map[string]struct{}, 1),
		names: map[string]struct{}{norm: {}},
	}
	if id := resolveCategoryGroup(wanted); id != "" {
		m.ids[id] = struct{}{}
	}
	return m
}

// resolveCategoryGroup maps free text to a category ID, or "" when nothing
// fits.
func resolveCategoryGroup(wanted string) string {
	if cat, ok := catalog.Default().ResolveCategory(wanted); ok {
		return cat.ID
	}

	norm := normalizeCategory(wanted)
	if norm == "" {
		return ""
	}
	if _, ok := categorySynonyms[norm]; ok {
		return norm
	}
	for id, synonyms := range categorySynonyms {
		for _, s := range synonyms {
			if normalizeCategory(s) == norm {
				return id
			}
		}
	}
	return ""
}

func (m categoryMatcher) matches(e restock.Entry) bool {
	if _, ok := m.ids[e.CategoryID]; ok {
		return true
	}
	// Entries filed under categories the catalog no longer knows are still
	// reachable by their stored names.
	for _, name := range []string{e.CategoryID, e.CategoryNameES, e.CategoryNameFR} {
		if _, ok := m.names[normalizeCategory(name)]; ok {
			return true
		}
	}
	return false
}

func normalizeCategory(raw string) string {
	s := textnorm.Normalize(raw)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}
