// Package textnorm folds free-text product names into comparison-safe keys
// and scores how close two keys are.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text, strips diacritical marks, trims it and collapses
// whitespace runs to a single space. It never fails; input that cannot be
// transformed is only lowercased and trimmed.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Case mapping can introduce combining marks (İ -> i + U+0307), so it
	// runs before the marks are stripped.
	lowered := strings.ToLower(text)

	// transform.Chain keeps state, build a fresh one per call.
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, lowered)
	if err != nil {
		folded = lowered
	}

	return strings.Join(strings.Fields(folded), " ")
}

// Equal reports whether a and b normalize to the same key.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
