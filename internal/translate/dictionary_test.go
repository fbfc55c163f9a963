package translate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/translate"
)

func TestDictionary_TranslateText(t *testing.T) {
	dict := translate.NewDictionary(catalog.Default())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "canonical product", in: "Pecho de pollo", want: "Blanc de poulet"},
		{name: "canonical product lowercase input", in: "aceite de oliva", want: "Huile d'olive"},
		{name: "word by word", in: "salsa de tomate casera", want: "sauce de tomate maison"},
		{name: "multi word product phrase wins", in: "Caldo de pollo casero", want: "Bouillon de volaille maison"},
		{name: "single word prefers common table", in: "sopa de pollo", want: "sopa de poulet"},
		{name: "punctuation stripped from known words", in: "Queso, fresco!", want: "Fromage frais"},
		{name: "unknown words unchanged", in: "Xyzzy Quux", want: "Xyzzy Quux"},
		{name: "accents ignored for lookup", in: "limón verde", want: "citron vert"},
		{name: "blank", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dict.TranslateText(tt.in))
		})
	}
}

func TestDictionary_WithoutCatalog(t *testing.T) {
	dict := translate.NewDictionary(nil)

	out, err := dict.Translate(context.Background(), "arroz con leche")
	require.NoError(t, err)
	assert.Equal(t, "riz avec lait", out)
}
