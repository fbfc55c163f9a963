// Package catalog holds the static product dictionary: categories in kitchen
// order, known products with their canonical names, and the lookup used to
// resolve free text to a product.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tayloree/restock/internal/textnorm"
)

// MiscCategoryID is the category unknown products are filed under.
const MiscCategoryID = "otros"

// Language selects which of the two display names is primary.
type Language string

const (
	Spanish Language = "es"
	French  Language = "fr"
)

// ParseLanguage accepts "es"/"fr" and a few spelled-out forms.
func ParseLanguage(raw string) (Language, bool) {
	switch textnorm.Normalize(raw) {
	case "es", "esp", "spanish", "espanol", "castellano":
		return Spanish, true
	case "fr", "fra", "french", "francais":
		return French, true
	default:
		return "", false
	}
}

// Category is a grouping bucket for entries.
type Category struct {
	ID     string
	NameES string
	NameFR string
}

// Name returns the display name for lang.
func (c Category) Name(lang Language) string {
	if lang == French {
		return c.NameFR
	}
	return c.NameES
}

// Product is a known dictionary entry.
type Product struct {
	ID          string
	CategoryID  string
	NameES      string
	NameFR      string
	DefaultUnit Unit
	Aliases     []string
}

// Name returns the display name for lang.
func (p Product) Name(lang Language) string {
	if lang == French {
		return p.NameFR
	}
	return p.NameES
}

var (
	ErrDuplicateID     = errors.New("duplicate id")
	ErrUnknownCategory = errors.New("unknown category")
	ErrMissingMisc     = errors.New("miscellaneous category missing")
	ErrInvalidUnit     = errors.New("invalid unit")
)

// Catalog is an immutable, indexed view of categories and products. It is
// safe for concurrent reads.
type Catalog struct {
	categories []Category
	categoryBy map[string]int

	// products sorted by ID; lookup passes iterate in this order.
	products  []Product
	productBy map[string]int

	// normalized ES names, parallel to products.
	keys []string

	// normalized name or alias -> product index.
	index map[string]int
}

// New validates and indexes the given tables. Categories keep the given
// order, which is the canonical emission order for grouping.
func New(categories []Category, products []Product) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		categoryBy: make(map[string]int, len(categories)),
		productBy:  make(map[string]int, len(products)),
		index:      make(map[string]int, len(products)*3),
	}

	for _, cat := range categories {
		if _, dup := c.categoryBy[cat.ID]; dup {
			return nil, fmt.Errorf("category %q: %w", cat.ID, ErrDuplicateID)
		}
		c.categoryBy[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	if _, ok := c.categoryBy[MiscCategoryID]; !ok {
		return nil, ErrMissingMisc
	}

	c.products = make([]Product, len(products))
	copy(c.products, products)
	sort.SliceStable(c.products, func(i, j int) bool { return c.products[i].ID < c.products[j].ID })

	c.keys = make([]string, len(c.products))
	for i, p := range c.products {
		if _, dup := c.productBy[p.ID]; dup {
			return nil, fmt.Errorf("product %q: %w", p.ID, ErrDuplicateID)
		}
		if _, ok := c.categoryBy[p.CategoryID]; !ok {
			return nil, fmt.Errorf("product %q category %q: %w", p.ID, p.CategoryID, ErrUnknownCategory)
		}
		if !p.DefaultUnit.Valid() {
			return nil, fmt.Errorf("product %q unit %q: %w", p.ID, p.DefaultUnit, ErrInvalidUnit)
		}
		c.productBy[p.ID] = i
		c.keys[i] = textnorm.Normalize(p.NameES)
	}

	// Canonical ES names claim index keys first, then FR names, then
	// aliases. Within a pass the smaller product ID wins a collision.
	for i := range c.products {
		c.addKey(c.keys[i], i)
	}
	for i, p := range c.products {
		c.addKey(textnorm.Normalize(p.NameFR), i)
	}
	for i, p := range c.products {
		for _, alias := range p.Aliases {
			c.addKey(textnorm.Normalize(alias), i)
		}
	}

	return c, nil
}

func (c *Catalog) addKey(key string, idx int) {
	if key == "" {
		return
	}
	if _, taken := c.index[key]; taken {
		return
	}
	c.index[key] = idx
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(builtinCategories, builtinProducts)
	if err != nil {
		panic(fmt.Sprintf("catalog: builtin tables: %v", err))
	}
	return c
})

// Default returns the compiled-in kitchen dictionary.
func Default() *Catalog {
	return defaultCatalog()
}

// Categories returns all categories in canonical order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryOrder returns category IDs in canonical kitchen order.
func (c *Catalog) CategoryOrder() []string {
	out := make([]string, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.ID
	}
	return out
}

// Category looks a category up by ID.
func (c *Catalog) Category(id string) (Category, bool) {
	idx, ok := c.categoryBy[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[idx], true
}

// Misc returns the miscellaneous category.
func (c *Catalog) Misc() Category {
	return c.categories[c.categoryBy[MiscCategoryID]]
}

// ResolveCategory finds a category by ID or by either display name.
func (c *Catalog) ResolveCategory(raw string) (Category, bool) {
	key := textnorm.Normalize(raw)
	if key == "" {
		return Category{}, false
	}
	for _, cat := range c.categories {
		if key == cat.ID || key == textnorm.Normalize(cat.NameES) || key == textnorm.Normalize(cat.NameFR) {
			return cat, true
		}
	}
	return Category{}, false
}

// Product looks a product up by ID.
func (c *Catalog) Product(id string) (Product, bool) {
	idx, ok := c.productBy[id]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// Products returns all products sorted by ID.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// TranslateExact returns the other-language name when text is exactly a
// product's canonical name in from (case-insensitive, accents significant).
func (c *Catalog) TranslateExact(text string, from Language) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(text))
	if want == "" {
		return "", false
	}
	for _, p := range c.products {
		switch from {
		case French:
			if strings.ToLower(p.NameFR) == want {
				return p.NameES, true
			}
		default:
			if strings.ToLower(p.NameES) == want {
				return p.NameFR, true
			}
		}
	}
	return "", false
}
