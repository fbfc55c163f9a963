package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/filter"
	"github.com/tayloree/restock/internal/restock"
)

func sampleEntries() []restock.Entry {
	q := 2.0
	return []restock.Entry{
		{
			ID: "1", ProductID: "pecho-pollo", NameES: "Pecho de pollo", NameFR: "Blanc de poulet",
			CategoryID: "carnes", CategoryNameES: "Carnes", CategoryNameFR: "Viandes",
			Quantity: 3, Unit: catalog.UnitKg, IsKnown: true,
		},
		{
			ID: "2", ProductID: "salmon-fresco", NameES: "Salmón", NameFR: "Saumon",
			CategoryID: "pescados", CategoryNameES: "Pescados", CategoryNameFR: "Poissons",
			Quantity: 1, IsKnown: true, IsOrderMarked: true, OrderQuantity: &q,
		},
		{
			ID: "3", ProductID: "tomate", NameES: "Tomate", NameFR: "Tomate",
			CategoryID: "verduras", CategoryNameES: "Verduras", CategoryNameFR: "Légumes",
			Quantity: 5, Unit: catalog.UnitKg, IsKnown: true,
		},
		{
			ID: "4", ProductID: "unknown-1-aaaa", NameES: "salsa secreta", NameFR: "sauce secrète",
			CategoryID: "otros", CategoryNameES: "Otros", CategoryNameFR: "Autres",
			Quantity: 2,
		},
		{
			ID: "5", ProductID: "unknown-2-bbbb", NameES: "Vajilla", NameFR: "Vaisselle",
			CategoryID: "menaje", CategoryNameES: "Menaje", CategoryNameFR: "Vaisselle",
			Quantity: 1, IsOrderMarked: true,
		},
	}
}

func ids(entries []restock.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestApply_NoFilters(t *testing.T) {
	result := filter.Apply(sampleEntries(), filter.Options{})
	assert.Len(t, result, 5)
}

func TestApply_Category(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "id", category: "carnes", want: []string{"1"}},
		{name: "spanish name", category: "Pescados", want: []string{"2"}},
		{name: "french name", category: "légumes", want: []string{"3"}},
		{name: "english synonym", category: "seafood", want: []string{"2"}},
		{name: "french synonym", category: "viande", want: []string{"1"}},
		{name: "misc", category: "otros", want: []string{"4"}},
		{name: "stored name outside catalog", category: "menaje", want: []string{"5"}},
		{name: "stored french name outside catalog", category: "vaisselle", want: []string{"5"}},
		{name: "no match", category: "juguetes", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.Apply(sampleEntries(), filter.Options{Category: tt.category})
			assert.Equal(t, tt.want, ids(result))
		})
	}
}

func TestApply_QueryMatchesBothNames(t *testing.T) {
	assert.Equal(t, []string{"1"}, ids(filter.Apply(sampleEntries(), filter.Options{Query: "POLLO"})))
	assert.Equal(t, []string{"1"}, ids(filter.Apply(sampleEntries(), filter.Options{Query: "poulet"})))
	assert.Equal(t, []string{"2"}, ids(filter.Apply(sampleEntries(), filter.Options{Query: "salmon"})))
	assert.Equal(t, []string{"4"}, ids(filter.Apply(sampleEntries(), filter.Options{Query: "secrete"})))
}

func TestApply_Ordered(t *testing.T) {
	result := filter.Apply(sampleEntries(), filter.Options{Ordered: true})
	assert.Equal(t, []string{"2", "5"}, ids(result))
}

func TestApply_Unknown(t *testing.T) {
	result := filter.Apply(sampleEntries(), filter.Options{Unknown: true})
	assert.Equal(t, []string{"4", "5"}, ids(result))
}

func TestApply_Limit(t *testing.T) {
	result := filter.Apply(sampleEntries(), filter.Options{Limit: 2})
	assert.Equal(t, []string{"1", "2"}, ids(result))
}

func TestApply_Combined(t *testing.T) {
	result := filter.Apply(sampleEntries(), filter.Options{
		Ordered: true,
		Unknown: true,
		Query:   "vaj",
	})
	assert.Equal(t, []string{"5"}, ids(result))
}

func TestApply_EmptyInput(t *testing.T) {
	assert.Empty(t, filter.Apply(nil, filter.Options{Query: "x"}))
}

func TestCategories(t *testing.T) {
	entries := append(sampleEntries(), restock.Entry{ID: "6", CategoryID: "carnes", CategoryNameES: "Carnes", CategoryNameFR: "Viandes"})

	counts := filter.Categories(entries)
	require.Len(t, counts, 5)
	assert.Equal(t, filter.CategoryCount{ID: "carnes", NameES: "Carnes", NameFR: "Viandes", Count: 2}, counts[0])
	assert.Equal(t, "menaje", counts[4].ID)
	assert.Equal(t, 1, counts[4].Count)
}

func TestSortEntries(t *testing.T) {
	entries := sampleEntries()

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(filter.SortEntries(entries, "", catalog.Spanish)))
	assert.Equal(t, []string{"1", "2", "4", "3", "5"}, ids(filter.SortEntries(entries, "name", catalog.Spanish)))
	assert.Equal(t, []string{"1", "4", "2", "3", "5"}, ids(filter.SortEntries(entries, "nom", catalog.French)))
	assert.Equal(t, []string{"3", "1", "4", "2", "5"}, ids(filter.SortEntries(entries, "qty", catalog.Spanish)))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(filter.SortEntries(entries, "category", catalog.Spanish)))

	// Input is left untouched.
	assert.Equal(t, "1", entries[0].ID)
}

func TestNormalizeSortMode(t *testing.T) {
	assert.Equal(t, filter.SortName, filter.NormalizeSortMode(" Nombre "))
	assert.Equal(t, filter.SortQuantity, filter.NormalizeSortMode("cantidad"))
	assert.Equal(t, filter.SortCategory, filter.NormalizeSortMode("kitchen"))
	assert.Equal(t, filter.SortInsertion, filter.NormalizeSortMode("random"))
}
