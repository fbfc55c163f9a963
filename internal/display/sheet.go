package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/grouping"
)

const sheetWidth = 64

// Restaurant is the header block of the printed sheet.
type Restaurant struct {
	Name    string
	Address string
	Phone   string
}

// SheetOptions controls PrintSheet.
type SheetOptions struct {
	Restaurant Restaurant
	Language   catalog.Language
	// Quantities fills in quantity and unit boxes for measured units.
	Quantities bool
	Now        time.Time
}

type sheetLabels struct {
	title, date, time, qty, unit, items string
}

var sheetText = map[catalog.Language]sheetLabels{
	catalog.Spanish: {title: "LISTA DE REPOSICIÓN", date: "Fecha", time: "Hora", qty: "Cant", unit: "Unidad", items: "artículos"},
	catalog.French:  {title: "LISTE DE RÉAPPROVISIONNEMENT", date: "Date", time: "Heure", qty: "Qté", unit: "Unité", items: "articles"},
}

// PrintSheet renders a plain-text order sheet with a checkbox per entry.
func PrintSheet(w io.Writer, groups []grouping.Group, opts SheetOptions) {
	labels, ok := sheetText[opts.Language]
	if !ok {
		labels = sheetText[catalog.Spanish]
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	rule := strings.Repeat("=", sheetWidth)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, labels.title)
	if r := opts.Restaurant; r.Name != "" {
		fmt.Fprintln(w, r.Name)
	}
	var contact []string
	if a := strings.TrimSpace(opts.Restaurant.Address); a != "" {
		contact = append(contact, a)
	}
	if p := strings.TrimSpace(opts.Restaurant.Phone); p != "" {
		contact = append(contact, p)
	}
	if len(contact) > 0 {
		fmt.Fprintln(w, wordWrap(strings.Join(contact, " | "), sheetWidth, ""))
	}
	fmt.Fprintf(w, "%s: %s   %s: %s\n", labels.date, now.Format("02/01/2006"), labels.time, now.Format("15:04"))
	fmt.Fprintln(w, rule)

	count := 0
	for _, g := range groups {
		fmt.Fprintf(w, "\n%s\n%s\n", strings.ToUpper(g.Name(opts.Language)), strings.Repeat("-", sheetWidth))
		for _, e := range g.Entries {
			count++
			qty, unit := "", ""
			if opts.Quantities && e.Unit.Measured() {
				unit = e.Unit.Label(opts.Language)
				if e.Quantity > 0 {
					qty = decimal.NewFromFloat(e.Quantity).String()
				}
			}
			fmt.Fprintln(w, sheetLine(e.Name(opts.Language), labels, qty, unit))
		}
	}

	fmt.Fprintf(w, "\n%s\n%d %s\n", rule, count, labels.items)
}

func sheetLine(name string, labels sheetLabels, qty, unit string) string {
	fields := fmt.Sprintf("%s: [%s]  %s: [%s]", labels.qty, box(qty, 6), labels.unit, box(unit, 8))
	left := "[ ] " + name
	gap := sheetWidth - lipgloss.Width(left) - lipgloss.Width(fields)
	if gap < 2 {
		gap = 2
	}
	return left + " " + strings.Repeat(".", gap-2) + " " + fields
}

func box(value string, width int) string {
	pad := width - lipgloss.Width(value)
	if pad <= 0 {
		return value
	}
	return value + strings.Repeat(" ", pad)
}
