package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tayloree/restock/internal/catalog"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in     string
		want   catalog.Unit
		wantOK bool
	}{
		{"", catalog.UnitNone, true},
		{"kg", catalog.UnitKg, true},
		{"KG", catalog.UnitKg, true},
		{"l", catalog.UnitLiter, true},
		{"L", catalog.UnitLiter, true},
		{"litros", catalog.UnitLiter, true},
		{"Unité", catalog.UnitPiece, true},
		{"boîte", catalog.UnitCan, true},
		{"docena", catalog.UnitDozen, true},
		{"bushel", catalog.UnitNone, false},
	}

	for _, tt := range tests {
		got, ok := catalog.ParseUnit(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestUnitPredicates(t *testing.T) {
	assert.True(t, catalog.UnitNone.Valid())
	assert.True(t, catalog.UnitMl.Valid())
	assert.False(t, catalog.Unit("oz").Valid())

	assert.False(t, catalog.UnitNone.Measured())
	assert.False(t, catalog.UnitPiece.Measured())
	assert.True(t, catalog.UnitBox.Measured())

	assert.Equal(t, "unité", catalog.UnitPiece.Label(catalog.French))
	assert.Equal(t, "unidad", catalog.UnitPiece.Label(catalog.Spanish))
	assert.Len(t, catalog.Units(), 10)
}
