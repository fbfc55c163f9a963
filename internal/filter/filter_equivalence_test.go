package filter_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/filter"
	"github.com/tayloree/restock/internal/restock"
	"github.com/tayloree/restock/internal/textnorm"
)

// referenceApply is the straightforward multi-pass version Apply must agree
// with.
func referenceApply(entries []restock.Entry, opts filter.Options) []restock.Entry {
	result := entries

	if opts.Ordered {
		result = referenceWhere(result, func(e restock.Entry) bool { return e.IsOrderMarked })
	}

	if opts.Unknown {
		result = referenceWhere(result, func(e restock.Entry) bool { return !e.IsKnown })
	}

	if opts.Category != "" {
		want := opts.Category
		if cat, ok := catalog.Default().ResolveCategory(want); ok {
			want = cat.ID
		}
		result = referenceWhere(result, func(e restock.Entry) bool {
			return e.CategoryID == want
		})
	}

	if opts.Query != "" {
		q := textnorm.Normalize(opts.Query)
		result = referenceWhere(result, func(e restock.Entry) bool {
			return strings.Contains(textnorm.Normalize(e.NameES), q) ||
				strings.Contains(textnorm.Normalize(e.NameFR), q)
		})
	}

	if opts.Limit > 0 && opts.Limit < len(result) {
		result = result[:opts.Limit]
	}

	return result
}

func referenceWhere(entries []restock.Entry, fn func(restock.Entry) bool) []restock.Entry {
	result := []restock.Entry{}
	for _, e := range entries {
		if fn(e) {
			result = append(result, e)
		}
	}
	return result
}

func randomEntry(rng *rand.Rand, idx int) restock.Entry {
	cats := catalog.Default().Categories()
	cat := cats[rng.Intn(len(cats))]
	names := [][2]string{
		{"Tomate", "Tomate"},
		{"Pecho de pollo", "Blanc de poulet"},
		{"Salmón", "Saumon"},
		{"Leche entera", "Lait entier"},
		{"Harina de trigo", "Farine de blé"},
	}
	name := names[rng.Intn(len(names))]

	return restock.Entry{
		ID:             fmt.Sprintf("id-%d", idx),
		ProductID:      fmt.Sprintf("p-%d", idx),
		NameES:         fmt.Sprintf("%s %d", name[0], idx),
		NameFR:         fmt.Sprintf("%s %d", name[1], idx),
		CategoryID:     cat.ID,
		CategoryNameES: cat.NameES,
		CategoryNameFR: cat.NameFR,
		Quantity:       float64(rng.Intn(10)),
		IsKnown:        rng.Intn(3) != 0,
		IsOrderMarked:  rng.Intn(2) == 0,
	}
}

func randomOptions(rng *rand.Rand) filter.Options {
	categories := []string{"", "carnes", "verduras", "Pescados y mariscos", "Boissons", "otros"}
	queries := []string{"", "pollo", "SALMON", "lait", "1"}
	limits := []int{0, 1, 3, 5, 10}
	return filter.Options{
		Ordered:  rng.Intn(2) == 0,
		Unknown:  rng.Intn(4) == 0,
		Category: categories[rng.Intn(len(categories))],
		Query:    queries[rng.Intn(len(queries))],
		Limit:    limits[rng.Intn(len(limits))],
	}
}

func TestApply_ReferenceEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for caseNum := 0; caseNum < 300; caseNum++ {
		count := rng.Intn(60)
		entries := make([]restock.Entry, 0, count)
		for i := range count {
			entries = append(entries, randomEntry(rng, i))
		}

		opts := randomOptions(rng)
		got := filter.Apply(entries, opts)
		want := referenceApply(entries, opts)

		assert.Equal(t, ids(want), ids(got), "mismatch for opts=%+v case=%d", opts, caseNum)
	}
}

func BenchmarkApply_1kEntries(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	entries := make([]restock.Entry, 0, 1000)
	for i := 0; i < 1000; i++ {
		entries = append(entries, randomEntry(rng, i))
	}
	opts := filter.Options{
		Ordered:  true,
		Category: "carnes",
		Query:    "pollo",
		Limit:    50,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_ = filter.Apply(entries, opts)
	}
}

func BenchmarkApply_Reference_1kEntries(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	entries := make([]restock.Entry, 0, 1000)
	for i := 0; i < 1000; i++ {
		entries = append(entries, randomEntry(rng, i))
	}
	opts := filter.Options{
		Ordered:  true,
		Category: "carnes",
		Query:    "pollo",
		Limit:    50,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_ = referenceApply(entries, opts)
	}
}
