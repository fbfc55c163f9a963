package catalog

import (
	"strings"

	"github.com/tayloree/restock/internal/textnorm"
)

// Unit is a measuring unit for an entry quantity. The zero value means no
// unit was given.
type Unit string

const (
	UnitNone  Unit = ""
	UnitKg    Unit = "kg"
	UnitGram  Unit = "g"
	UnitLiter Unit = "L"
	UnitMl    Unit = "ml"
	UnitPiece Unit = "unidad"
	UnitBox   Unit = "caja"
	UnitPack  Unit = "paquete"
	UnitJar   Unit = "bote"
	UnitCan   Unit = "lata"
	UnitDozen Unit = "docena"
)

var allUnits = []Unit{UnitKg, UnitGram, UnitLiter, UnitMl, UnitPiece, UnitBox, UnitPack, UnitJar, UnitCan, UnitDozen}

var unitNamesFR = map[Unit]string{
	UnitKg:    "kg",
	UnitGram:  "g",
	UnitLiter: "L",
	UnitMl:    "ml",
	UnitPiece: "unité",
	UnitBox:   "caisse",
	UnitPack:  "paquet",
	UnitJar:   "pot",
	UnitCan:   "boîte",
	UnitDozen: "douzaine",
}

var unitAliases = map[string]Unit{
	"kilo":       UnitKg,
	"kilos":      UnitKg,
	"kilogramo":  UnitKg,
	"kilogramos": UnitKg,
	"gr":         UnitGram,
	"gramo":      UnitGram,
	"gramos":     UnitGram,
	"l":          UnitLiter,
	"lt":         UnitLiter,
	"litro":      UnitLiter,
	"litros":     UnitLiter,
	"litre":      UnitLiter,
	"mililitro":  UnitMl,
	"mililitros": UnitMl,
	"u":          UnitPiece,
	"ud":         UnitPiece,
	"uds":        UnitPiece,
	"unidades":   UnitPiece,
	"unite":      UnitPiece,
	"pieza":      UnitPiece,
	"cajas":      UnitBox,
	"caisse":     UnitBox,
	"paquetes":   UnitPack,
	"pack":       UnitPack,
	"paquet":     UnitPack,
	"botes":      UnitJar,
	"pot":        UnitJar,
	"tarro":      UnitJar,
	"latas":      UnitCan,
	"boite":      UnitCan,
	"docenas":    UnitDozen,
	"douzaine":   UnitDozen,
}

// Units returns every known unit in display order.
func Units() []Unit {
	out := make([]Unit, len(allUnits))
	copy(out, allUnits)
	return out
}

// ParseUnit resolves user input to a Unit. Blank input yields UnitNone.
func ParseUnit(raw string) (Unit, bool) {
	key := textnorm.Normalize(raw)
	if key == "" {
		return UnitNone, true
	}
	for _, u := range allUnits {
		if strings.EqualFold(string(u), key) {
			return u, true
		}
	}
	if u, ok := unitAliases[key]; ok {
		return u, true
	}
	return UnitNone, false
}

// Valid reports whether u is UnitNone or one of the known units.
func (u Unit) Valid() bool {
	if u == UnitNone {
		return true
	}
	for _, known := range allUnits {
		if u == known {
			return true
		}
	}
	return false
}

// Measured reports whether u is set to something other than a plain count.
// Entries without a measured unit are incomplete in quantity mode.
func (u Unit) Measured() bool {
	return u != UnitNone && u != UnitPiece
}

// Label renders the unit for lang.
func (u Unit) Label(lang Language) string {
	if lang == French {
		if name, ok := unitNamesFR[u]; ok {
			return name
		}
	}
	return string(u)
}
