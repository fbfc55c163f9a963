package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/filter"
	"github.com/tayloree/restock/internal/grouping"
	"github.com/tayloree/restock/internal/restock"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	orderTag     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
	qtyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))            // green
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))            // yellow
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	highlightTag = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

const shortIDLength = 8

// GroupJSON is the JSON output shape for one category group.
type GroupJSON struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	HighlightID  string          `json:"highlightId,omitempty"`
	Entries      []restock.Entry `json:"entries"`
}

// ListJSON is the JSON output shape for the grouped list.
type ListJSON struct {
	Language string      `json:"language"`
	Count    int         `json:"count"`
	Groups   []GroupJSON `json:"groups"`
}

// ShortID trims an entry ID to the prefix shown in listings.
func ShortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

// FormatQuantity renders a quantity without float noise, e.g. "2.5 kg".
func FormatQuantity(q float64, unit catalog.Unit, lang catalog.Language) string {
	s := decimal.NewFromFloat(q).String()
	if unit == catalog.UnitNone {
		return s
	}
	return s + " " + unit.Label(lang)
}

// PrintGroups renders the grouped list to the writer.
func PrintGroups(w io.Writer, groups []grouping.Group, lang catalog.Language) {
	count := 0
	for _, g := range groups {
		count += len(g.Entries)
	}

	fmt.Fprintf(w, "\n%s - %s\n\n",
		headerStyle.Render("Restocking list"),
		cyanStyle.Render(fmt.Sprintf("%d items", count)),
	)

	for _, g := range groups {
		fmt.Fprintf(w, "  %s %s\n", titleStyle.Render(g.Name(lang)), dimStyle.Render(fmt.Sprintf("(%d)", len(g.Entries))))
		for _, e := range g.Entries {
			printEntry(w, e, lang, g.HighlightID != "" && e.ID == g.HighlightID)
		}
		fmt.Fprintln(w)
	}
}

// PrintGroupsJSON renders the grouped list as JSON.
func PrintGroupsJSON(w io.Writer, groups []grouping.Group, lang catalog.Language) error {
	out := ListJSON{Language: string(lang), Groups: make([]GroupJSON, 0, len(groups))}
	for _, g := range groups {
		out.Count += len(g.Entries)
		out.Groups = append(out.Groups, GroupJSON{
			CategoryID:   g.CategoryID,
			CategoryName: g.Name(lang),
			HighlightID:  g.HighlightID,
			Entries:      g.Entries,
		})
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintEntriesJSON renders a flat entry slice as JSON, never null.
func PrintEntriesJSON(w io.Writer, entries []restock.Entry) error {
	if entries == nil {
		entries = []restock.Entry{}
	}
	return json.NewEncoder(w).Encode(entries)
}

// PrintEntries renders a flat, already ordered entry slice.
func PrintEntries(w io.Writer, entries []restock.Entry, lang catalog.Language) {
	fmt.Fprintf(w, "\n%s - %s\n\n",
		headerStyle.Render("Restocking list"),
		cyanStyle.Render(fmt.Sprintf("%d items", len(entries))),
	)
	for _, e := range entries {
		printEntry(w, e, lang, false)
	}
	fmt.Fprintln(w)
}

// PrintAddResult reports what an add did, including a merge into an
// existing entry.
func PrintAddResult(w io.Writer, res restock.AddResult, lang catalog.Language) {
	e := res.Entry
	qty := FormatQuantity(e.Quantity, e.Unit, lang)
	if res.Duplicate {
		fmt.Fprintf(w, "%s %s already on the list, quantity now %s %s\n",
			successStyle.Render("Updated:"), titleStyle.Render(e.Name(lang)), qtyStyle.Render(qty),
			dimStyle.Render("["+ShortID(e.ID)+"]"))
		return
	}

	where := e.CategoryName(lang)
	if !e.IsKnown {
		where += ", " + unknownStyle.Render("not in dictionary")
	}
	fmt.Fprintf(w, "%s %s %s (%s) %s\n",
		successStyle.Render("Added:"), titleStyle.Render(e.Name(lang)), qtyStyle.Render(qty), where,
		dimStyle.Render("["+ShortID(e.ID)+"]"))
}

// AddResultJSON is the JSON output shape of an add.
type AddResultJSON struct {
	ID        string        `json:"id"`
	Duplicate bool          `json:"duplicate"`
	Entry     restock.Entry `json:"entry"`
}

// PrintAddResultJSON renders an add as JSON.
func PrintAddResultJSON(w io.Writer, res restock.AddResult) error {
	return json.NewEncoder(w).Encode(AddResultJSON{ID: res.ID, Duplicate: res.Duplicate, Entry: res.Entry})
}

// Actions reported by PrintChange.
const (
	ActionRemove   = "remove"
	ActionQuantity = "quantity"
	ActionUnit     = "unit"
	ActionOrder    = "order"
	ActionOrderQty = "order-quantity"
	ActionClear    = "clear"
)

// ChangeJSON is the JSON output shape of a list edit. Count is the number
// of entries left on the list.
type ChangeJSON struct {
	Action  string         `json:"action"`
	Entry   *restock.Entry `json:"entry,omitempty"`
	Count   int            `json:"count"`
	Warning string         `json:"warning,omitempty"`
}

// PrintChange renders a list edit.
func PrintChange(w io.Writer, c ChangeJSON, lang catalog.Language) {
	label := "Updated:"
	switch c.Action {
	case ActionRemove:
		label = "Removed:"
	case ActionOrder:
		label = "Marked to order:"
		if c.Entry != nil && !c.Entry.IsOrderMarked {
			label = "Unmarked:"
		}
	case ActionClear:
		fmt.Fprintf(w, "%s %s\n", successStyle.Render("Cleared:"), dimStyle.Render("the list is now empty"))
		return
	}

	fmt.Fprintln(w, successStyle.Render(label))
	if c.Entry != nil {
		printEntry(w, *c.Entry, lang, false)
	}
	if c.Warning != "" {
		fmt.Fprintf(w, "  %s\n", warningStyle.Render(c.Warning))
	}
}

// PrintChangeJSON renders a list edit as JSON.
func PrintChangeJSON(w io.Writer, c ChangeJSON) error {
	return json.NewEncoder(w).Encode(c)
}

// ImportJSON is the JSON output shape of an import.
type ImportJSON struct {
	Added    int  `json:"added"`
	Merged   int  `json:"merged"`
	Replaced bool `json:"replaced"`
	Count    int  `json:"count"`
}

// PrintImport renders an import summary.
func PrintImport(w io.Writer, r ImportJSON) {
	verb := "Imported"
	if r.Replaced {
		verb = "Replaced list with"
	}
	fmt.Fprintf(w, "%s %s", successStyle.Render(verb+":"), qtyStyle.Render(fmt.Sprintf("%d new", r.Added)))
	if r.Merged > 0 {
		fmt.Fprintf(w, ", %d merged into existing entries", r.Merged)
	}
	fmt.Fprintf(w, " %s\n", dimStyle.Render(fmt.Sprintf("(%d on the list)", r.Count)))
}

// PrintImportJSON renders an import summary as JSON.
func PrintImportJSON(w io.Writer, r ImportJSON) error {
	return json.NewEncoder(w).Encode(r)
}

// ClassificationJSON is the JSON output shape of a classifier dry run.
type ClassificationJSON struct {
	Input     string        `json:"input"`
	Match     string        `json:"match"`
	Score     float64       `json:"score"`
	Entry     restock.Entry `json:"entry"`
	Secondary string        `json:"secondaryName"`
}

// PrintClassification renders a classifier dry run.
func PrintClassification(w io.Writer, c ClassificationJSON, lang catalog.Language) {
	e := c.Entry
	fmt.Fprintf(w, "\n  %s  %s\n", titleStyle.Render(c.Input), dimStyle.Render("->"))
	if e.IsKnown {
		fmt.Fprintf(w, "    %s %s (%s, %s match, score %.2f)\n",
			cyanStyle.Render(e.ProductID), titleStyle.Render(e.Name(lang)), e.CategoryName(lang), c.Match, c.Score)
	} else {
		fmt.Fprintf(w, "    %s filed under %s\n", unknownStyle.Render("not in dictionary,"), e.CategoryName(lang))
	}
	fmt.Fprintf(w, "    %s %s / %s\n\n", dimStyle.Render("names:"), e.NameES, e.NameFR)
}

// PrintCategories renders category counts in kitchen order.
func PrintCategories(w io.Writer, counts []filter.CategoryCount, lang catalog.Language) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Categories on the list:"))
	for _, c := range counts {
		name := c.NameES
		if lang == catalog.French && c.NameFR != "" {
			name = c.NameFR
		}
		fmt.Fprintf(w, "  %s: %d items %s\n", cyanStyle.Render(name), c.Count, dimStyle.Render("("+c.ID+")"))
	}
	fmt.Fprintln(w)
}

// PrintCategoriesJSON renders category counts as JSON.
func PrintCategoriesJSON(w io.Writer, counts []filter.CategoryCount) error {
	if counts == nil {
		counts = []filter.CategoryCount{}
	}
	return json.NewEncoder(w).Encode(counts)
}

// SuggestionJSON is the JSON output shape for a dictionary suggestion.
type SuggestionJSON struct {
	ProductID  string       `json:"productId"`
	NameES     string       `json:"nameEs"`
	NameFR     string       `json:"nameFr"`
	CategoryID string       `json:"categoryId"`
	Unit       catalog.Unit `json:"defaultUnit,omitempty"`
	Score      int          `json:"score"`
}

// PrintSuggestions renders dictionary search results.
func PrintSuggestions(w io.Writer, query string, suggestions []catalog.Suggestion, lang catalog.Language) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render(fmt.Sprintf("Dictionary matches for %q:", query)))
	for _, s := range suggestions {
		other := s.Product.NameFR
		if lang == catalog.French {
			other = s.Product.NameES
		}
		fmt.Fprintf(w, "  %s %s %s\n",
			titleStyle.Render(s.Product.Name(lang)), dimStyle.Render("/ "+other), cyanStyle.Render("["+s.Product.CategoryID+"]"))
	}
	fmt.Fprintln(w)
}

// PrintSuggestionsJSON renders dictionary search results as JSON.
func PrintSuggestionsJSON(w io.Writer, suggestions []catalog.Suggestion) error {
	out := make([]SuggestionJSON, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, SuggestionJSON{
			ProductID:  s.Product.ID,
			NameES:     s.Product.NameES,
			NameFR:     s.Product.NameFR,
			CategoryID: s.Product.CategoryID,
			Unit:       s.Product.DefaultUnit,
			Score:      s.Score,
		})
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintStats renders the list summary.
func PrintStats(w io.Writer, s restock.Stats) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("List summary:"))
	fmt.Fprintf(w, "  Entries:        %d\n", s.Entries)
	fmt.Fprintf(w, "  Total quantity: %s\n", qtyStyle.Render(s.TotalQuantity.String()))
	fmt.Fprintf(w, "  Marked to order: %d\n", s.Ordered)
	if s.OrderValid {
		fmt.Fprintf(w, "  Order:          %s\n", successStyle.Render("ready"))
	} else {
		fmt.Fprintf(w, "  Order:          %s\n", warningStyle.Render("missing quantities"))
	}
	fmt.Fprintf(w, "  Not in dictionary: %d\n", s.Unknown)
	if s.Incomplete > 0 {
		fmt.Fprintf(w, "  Missing units:  %s\n", warningStyle.Render(fmt.Sprintf("%d", s.Incomplete)))
	}
	fmt.Fprintln(w)
}

// PrintStatsJSON renders the list summary as JSON.
func PrintStatsJSON(w io.Writer, s restock.Stats) error {
	return json.NewEncoder(w).Encode(s)
}

// ShareJSON is the JSON output shape of a share link.
type ShareJSON struct {
	Token    string `json:"token"`
	URL      string `json:"url"`
	ShortURL string `json:"shortUrl,omitempty"`
	Entries  int    `json:"entries"`
}

// PrintShare renders a share link.
func PrintShare(w io.Writer, s ShareJSON) {
	fmt.Fprintf(w, "\n%s %s\n\n", titleStyle.Render("Share link"), dimStyle.Render(fmt.Sprintf("(%d items)", s.Entries)))
	link := s.URL
	if s.ShortURL != "" {
		link = s.ShortURL
	}
	fmt.Fprintf(w, "  %s\n", cyanStyle.Render(link))
	if s.ShortURL != "" && s.ShortURL != s.URL {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render(wordWrap(s.URL, 72, "  ")))
	}
	fmt.Fprintln(w)
}

// PrintShareJSON renders a share link as JSON.
func PrintShareJSON(w io.Writer, s ShareJSON) error {
	return json.NewEncoder(w).Encode(s)
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// PrintWarning prints a styled warning message.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

// PrintSuccess prints a styled confirmation.
func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}

func printEntry(w io.Writer, e restock.Entry, lang catalog.Language, highlighted bool) {
	var tags []string
	if highlighted {
		tags = append(tags, highlightTag.Render("*"))
	}
	if e.IsOrderMarked {
		tags = append(tags, orderTag.Render("ORDER"))
	}
	tag := ""
	if len(tags) > 0 {
		tag = strings.Join(tags, " ") + " "
	}

	other := e.NameFR
	if lang == catalog.French {
		other = e.NameES
	}
	secondary := ""
	if other != "" && other != e.Name(lang) {
		secondary = " " + dimStyle.Render("/ "+other)
	}

	fmt.Fprintf(w, "    %s %s%s%s  %s\n",
		dimStyle.Render(ShortID(e.ID)), tag, titleStyle.Render(e.Name(lang)), secondary,
		qtyStyle.Render(FormatQuantity(e.Quantity, e.Unit, lang)))

	var meta []string
	if e.IsOrderMarked {
		if e.OrderQuantity != nil {
			meta = append(meta, "order "+FormatQuantity(*e.OrderQuantity, e.Unit, lang))
		} else {
			meta = append(meta, warningStyle.Render("order quantity missing"))
		}
	}
	if !e.IsKnown {
		meta = append(meta, unknownStyle.Render("not in dictionary"))
	}
	if len(meta) > 0 {
		fmt.Fprintf(w, "             %s\n", dimStyle.Render(strings.Join(meta, " | ")))
	}
}

func wordWrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+indent)
}
