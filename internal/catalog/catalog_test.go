package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/restock/internal/catalog"
)

func TestDefault_CategoryOrder(t *testing.T) {
	order := catalog.Default().CategoryOrder()

	require.NotEmpty(t, order)
	assert.Equal(t, "carnes", order[0])
	assert.Equal(t, catalog.MiscCategoryID, order[len(order)-1])
	assert.Less(t, indexOf(order, "verduras"), indexOf(order, "lacteos"))
	assert.Less(t, indexOf(order, "secos"), indexOf(order, "aceites"))
}

func TestDefault_EveryProductResolvesCategory(t *testing.T) {
	cat := catalog.Default()
	for _, p := range cat.Products() {
		_, ok := cat.Category(p.CategoryID)
		assert.True(t, ok, "product %s", p.ID)
		assert.True(t, p.DefaultUnit.Valid(), "product %s", p.ID)
	}
}

func TestNew_Validation(t *testing.T) {
	misc := catalog.Category{ID: catalog.MiscCategoryID, NameES: "Otros", NameFR: "Autres"}

	_, err := catalog.New([]catalog.Category{{ID: "carnes"}}, nil)
	assert.ErrorIs(t, err, catalog.ErrMissingMisc)

	_, err = catalog.New([]catalog.Category{misc, misc}, nil)
	assert.ErrorIs(t, err, catalog.ErrDuplicateID)

	_, err = catalog.New([]catalog.Category{misc}, []catalog.Product{{ID: "x", CategoryID: "nope"}})
	assert.ErrorIs(t, err, catalog.ErrUnknownCategory)

	_, err = catalog.New([]catalog.Category{misc}, []catalog.Product{{ID: "x", CategoryID: catalog.MiscCategoryID, DefaultUnit: "bushel"}})
	assert.ErrorIs(t, err, catalog.ErrInvalidUnit)
}

func TestResolveCategory(t *testing.T) {
	cat := catalog.Default()

	c, ok := cat.ResolveCategory("Viandes")
	require.True(t, ok)
	assert.Equal(t, "carnes", c.ID)

	c, ok = cat.ResolveCategory("lácteos y huevos")
	require.True(t, ok)
	assert.Equal(t, "lacteos", c.ID)

	_, ok = cat.ResolveCategory("spaceships")
	assert.False(t, ok)
}

func TestTranslateExact(t *testing.T) {
	cat := catalog.Default()

	fr, ok := cat.TranslateExact("pecho de POLLO", catalog.Spanish)
	require.True(t, ok)
	assert.Equal(t, "Blanc de poulet", fr)

	es, ok := cat.TranslateExact("Huile d'olive", catalog.French)
	require.True(t, ok)
	assert.Equal(t, "Aceite de oliva", es)

	_, ok = cat.TranslateExact("caviar de beluga", catalog.Spanish)
	assert.False(t, ok)
}

func TestParseLanguage(t *testing.T) {
	lang, ok := catalog.ParseLanguage("FR")
	assert.True(t, ok)
	assert.Equal(t, catalog.French, lang)

	lang, ok = catalog.ParseLanguage("español")
	assert.True(t, ok)
	assert.Equal(t, catalog.Spanish, lang)

	_, ok = catalog.ParseLanguage("de")
	assert.False(t, ok)
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
