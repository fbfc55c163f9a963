package display_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/display"
	"github.com/tayloree/restock/internal/grouping"
)

var sheetTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestPrintSheet_Spanish(t *testing.T) {
	var buf bytes.Buffer
	display.PrintSheet(&buf, grouping.GroupAndOrder(sampleEntries(), "", catalog.Spanish), display.SheetOptions{
		Restaurant: display.Restaurant{Name: "Casa Pepe", Address: "Calle Mayor 1", Phone: "+34 600 000 000"},
		Language:   catalog.Spanish,
		Now:        sheetTime,
	})
	output := buf.String()

	assert.Contains(t, output, "LISTA DE REPOSICIÓN")
	assert.Contains(t, output, "Casa Pepe")
	assert.Contains(t, output, "Calle Mayor 1 | +34 600 000 000")
	assert.Contains(t, output, "Fecha: 14/03/2026")
	assert.Contains(t, output, "Hora: 09:30")
	assert.Contains(t, output, "CARNES")
	assert.Contains(t, output, "[ ] Pecho de pollo")
	assert.Contains(t, output, "3 artículos")
	// Without quantities the boxes stay empty.
	assert.NotContains(t, output, "2.5")
	assert.Less(t, strings.Index(output, "CARNES"), strings.Index(output, "VERDURAS"))
}

func TestPrintSheet_QuantitiesInFrench(t *testing.T) {
	var buf bytes.Buffer
	display.PrintSheet(&buf, grouping.GroupAndOrder(sampleEntries(), "", catalog.French), display.SheetOptions{
		Language:   catalog.French,
		Quantities: true,
		Now:        sheetTime,
	})
	output := buf.String()

	assert.Contains(t, output, "LISTE DE RÉAPPROVISIONNEMENT")
	assert.Contains(t, output, "VIANDES")
	assert.Contains(t, output, "[ ] Blanc de poulet")
	assert.Contains(t, output, "Qté: [2.5   ]")
	assert.Contains(t, output, "Unité: [kg")
	// Entries without a measured unit keep blank boxes.
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "sauce secrète") {
			assert.Contains(t, line, "Qté: [      ]")
		}
	}
}
