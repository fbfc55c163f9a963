package store_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/store"
)

const validRecord = `{"id":"e1","productId":"tomate","productNameEs":"Tomate","productNameFr":"Tomate",` +
	`"categoryId":"verduras","categoryNameEs":"Verduras","categoryNameFr":"Légumes",` +
	`"quantity":2,"unit":"kg","isKnown":true,"isOrderMarked":true,"orderQuantity":3}`

const unknownRecord = `{"id":"e2","productId":"unknown-17-ab12cd34","productNameEs":"salsa secreta","productNameFr":"sauce secrète",` +
	`"categoryId":"otros","categoryNameEs":"Otros","categoryNameFr":"Autres",` +
	`"quantity":1,"isKnown":false,"isOrderMarked":false}`

func TestDecode_Valid(t *testing.T) {
	got, err := store.Decode([]byte("["+validRecord+"]"), catalog.Default())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tomate", got[0].ProductID)
	assert.Equal(t, catalog.UnitKg, got[0].Unit)
	require.NotNil(t, got[0].OrderQuantity)
	assert.Equal(t, 3.0, *got[0].OrderQuantity)
}

func TestDecode_OptionalFields(t *testing.T) {
	rec := strings.Replace(validRecord, `,"unit":"kg"`, "", 1)
	rec = strings.Replace(rec, `,"orderQuantity":3`, `,"orderQuantity":null`, 1)

	got, err := store.Decode([]byte("["+rec+"]"), catalog.Default())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, catalog.UnitNone, got[0].Unit)
	assert.Nil(t, got[0].OrderQuantity)
}

func TestDecode_EmptyInputs(t *testing.T) {
	for _, in := range []string{"", "  ", "[]"} {
		got, err := store.Decode([]byte(in), catalog.Default())
		require.NoError(t, err, in)
		assert.Empty(t, got, in)
	}
}

func TestDecode_RejectsWholePayload(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{name: "missing id", record: strings.Replace(validRecord, `"id":"e1",`, "", 1)},
		{name: "empty id", record: strings.Replace(validRecord, `"id":"e1"`, `"id":""`, 1)},
		{name: "numeric name", record: strings.Replace(validRecord, `"productNameEs":"Tomate"`, `"productNameEs":7`, 1)},
		{name: "null secondary name", record: strings.Replace(validRecord, `"productNameFr":"Tomate"`, `"productNameFr":null`, 1)},
		{name: "empty category", record: strings.Replace(validRecord, `"categoryId":"verduras"`, `"categoryId":""`, 1)},
		{name: "string quantity", record: strings.Replace(validRecord, `"quantity":2`, `"quantity":"2"`, 1)},
		{name: "negative quantity", record: strings.Replace(validRecord, `"quantity":2`, `"quantity":-1`, 1)},
		{name: "unknown unit", record: strings.Replace(validRecord, `"unit":"kg"`, `"unit":"bushel"`, 1)},
		{name: "numeric unit", record: strings.Replace(validRecord, `"unit":"kg"`, `"unit":3`, 1)},
		{name: "string bool", record: strings.Replace(validRecord, `"isKnown":true`, `"isKnown":"yes"`, 1)},
		{name: "missing order flag", record: strings.Replace(validRecord, `"isOrderMarked":true,`, "", 1)},
		{name: "zero order quantity", record: strings.Replace(validRecord, `"orderQuantity":3`, `"orderQuantity":0`, 1)},
		{name: "unknown category", record: strings.Replace(unknownRecord, `"categoryId":"otros"`, `"categoryId":"no-such-category"`, 1)},
		{name: "unknown entry with dictionary id", record: strings.Replace(unknownRecord, `"productId":"unknown-17-ab12cd34"`, `"productId":"tomate"`, 1)},
		{name: "known entry outside dictionary", record: strings.Replace(unknownRecord, `"isKnown":false`, `"isKnown":true`, 1)},
		{name: "duplicate id", record: strings.Replace(validRecord, `"id":"e1"`, `"id":"e2"`, 1)},
		{name: "order quantity without mark", record: strings.Replace(unknownRecord, `"isOrderMarked":false`, `"isOrderMarked":false,"orderQuantity":3`, 1)},
		{name: "null record", record: "null"},
		{name: "scalar record", record: `"tomate"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := "[" + unknownRecord + "," + tt.record + "]"
			got, err := store.Decode([]byte(payload), catalog.Default())
			assert.ErrorIs(t, err, store.ErrInvalidPayload)
			assert.Nil(t, got)
		})
	}
}

func TestDecode_NotAnArray(t *testing.T) {
	for _, in := range []string{`{"id":"e1"}`, `not json`, `42`} {
		_, err := store.Decode([]byte(in), catalog.Default())
		assert.ErrorIs(t, err, store.ErrInvalidPayload, in)
	}
}

func TestDecode_AcceptsKnownAndUnknownEntries(t *testing.T) {
	got, err := store.Decode([]byte("["+validRecord+","+unknownRecord+"]"), catalog.Default())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsKnown)
	assert.False(t, got[1].IsKnown)
	assert.Equal(t, "otros", got[1].CategoryID)
}
