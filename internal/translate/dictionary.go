package translate

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/textnorm"
)

const wordPunct = ".,!?;:()\"'"

// Dictionary translates with local tables only. Canonical product names
// translate whole; anything else is rewritten phrase by phrase, and words
// with no entry pass through unchanged.
type Dictionary struct {
	catalog  *catalog.Catalog
	ac       ahocorasick.AhoCorasick
	patterns []string
	targets  []string
}

// NewDictionary builds the phrase automaton from cat (may be nil) and the
// common-word table.
func NewDictionary(cat *catalog.Catalog) *Dictionary {
	d := &Dictionary{catalog: cat}
	seen := make(map[string]struct{})
	add := func(source, target string) {
		key := textnorm.Normalize(source)
		if key == "" || target == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		d.patterns = append(d.patterns, key)
		d.targets = append(d.targets, strings.ToLower(target))
	}

	// Multi-word product names first, then the word table, then single-word
	// product names, so "pollo" alone reads as "poulet" and not as a
	// specific cut.
	var products []catalog.Product
	if cat != nil {
		products = cat.Products()
	}
	for _, p := range products {
		for _, name := range productSurfaces(p) {
			if strings.Contains(strings.TrimSpace(name), " ") {
				add(name, p.NameFR)
			}
		}
	}
	for source, target := range commonWords {
		add(source, target)
	}
	for _, p := range products {
		for _, name := range productSurfaces(p) {
			add(name, p.NameFR)
		}
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	d.ac = builder.Build(d.patterns)
	return d
}

func productSurfaces(p catalog.Product) []string {
	return append([]string{p.NameES}, p.Aliases...)
}

// Translate implements Translator. It never fails.
func (d *Dictionary) Translate(_ context.Context, text string) (string, error) {
	return d.TranslateText(text), nil
}

// TranslateText is the synchronous form of Translate.
func (d *Dictionary) TranslateText(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if d.catalog != nil {
		if fr, ok := d.catalog.TranslateExact(trimmed, catalog.Spanish); ok {
			return fr
		}
	}

	words := strings.Fields(trimmed)
	keys := make([]string, len(words))
	startOf := make(map[int]int, len(words))
	endOf := make(map[int]int, len(words))

	var hay strings.Builder
	for i, w := range words {
		if i > 0 {
			hay.WriteByte(' ')
		}
		key := textnorm.Normalize(strings.Trim(w, wordPunct))
		if key == "" {
			key = strings.ToLower(w)
		}
		keys[i] = key
		startOf[hay.Len()] = i
		hay.WriteString(key)
		endOf[hay.Len()] = i
	}

	out := make([]string, 0, len(words))
	next := 0
	for _, m := range d.ac.FindAll(hay.String()) {
		first, okStart := startOf[m.Start()]
		last, okEnd := endOf[m.End()]
		if !okStart || !okEnd || first < next {
			continue
		}
		out = append(out, words[next:first]...)
		out = append(out, d.targets[m.Pattern()])
		next = last + 1
	}
	out = append(out, words[next:]...)

	return matchLeadingCase(trimmed, strings.Join(out, " "))
}

func matchLeadingCase(source, result string) string {
	first, _ := utf8.DecodeRuneInString(source)
	if !unicode.IsUpper(first) {
		return result
	}
	r, size := utf8.DecodeRuneInString(result)
	if r == utf8.RuneError {
		return result
	}
	return string(unicode.ToUpper(r)) + result[size:]
}
