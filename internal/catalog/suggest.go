package catalog

import (
	"github.com/sahilm/fuzzy"
	"github.com/tayloree/restock/internal/textnorm"
)

// Suggestion is a ranked fuzzy hit from Suggest.
type Suggestion struct {
	Product Product
	Score   int
}

type productSource struct {
	products []Product
	text     []string
}

func (s productSource) String(i int) string { return s.text[i] }
func (s productSource) Len() int            { return len(s.products) }

// Suggest ranks products whose names contain the query characters in order,
// best first. Both display names and aliases are searched. A limit of zero
// or less returns every hit.
func (c *Catalog) Suggest(query string, limit int) []Suggestion {
	pattern := textnorm.Normalize(query)
	if pattern == "" {
		return nil
	}

	src := productSource{
		products: c.products,
		text:     make([]string, len(c.products)),
	}
	for i, p := range c.products {
		text := c.keys[i] + " / " + textnorm.Normalize(p.NameFR)
		for _, alias := range p.Aliases {
			text += " / " + textnorm.Normalize(alias)
		}
		src.text[i] = text
	}

	matches := fuzzy.FindFrom(pattern, src)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		out = append(out, Suggestion{Product: c.products[m.Index], Score: m.Score})
	}
	return out
}
