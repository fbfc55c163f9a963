package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/tayloree/restock/internal/textnorm"
)

const (
	// SimilarityThreshold is the score a fuzzy candidate must exceed.
	SimilarityThreshold = 0.85
	// MinSimilarityInput is the shortest normalized input (in runes) that
	// may resolve through fuzzy similarity.
	MinSimilarityInput = 3

	similarityFloor = 0.7
)

// MatchKind reports which lookup pass resolved a name.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchPrefix
	MatchSimilar
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	case MatchSimilar:
		return "similar"
	default:
		return "none"
	}
}

// Match is the outcome of Lookup.
type Match struct {
	Product Product
	Kind    MatchKind
	Score   float64
}

// Lookup resolves free text to a product. Passes run in strict order and
// the first hit wins:
//
//  1. exact: the normalized input is an index key (ES/FR name or alias).
//  2. prefix: the normalized ES name starts with the input. Every candidate
//     matches with the same prefix length, so the smallest product ID wins.
//  3. similar: best Similarity against the normalized ES name, accepted
//     only above SimilarityThreshold for inputs of MinSimilarityInput runes
//     or more. Ties keep the smaller product ID.
func (c *Catalog) Lookup(name string) (Match, bool) {
	key := textnorm.Normalize(name)
	if key == "" {
		return Match{}, false
	}

	if idx, ok := c.index[key]; ok {
		return Match{Product: c.products[idx], Kind: MatchExact, Score: 1}, true
	}

	if idx := c.prefixMatch(key); idx >= 0 {
		return Match{Product: c.products[idx], Kind: MatchPrefix, Score: textnorm.Similarity(key, c.keys[idx])}, true
	}

	if idx, score := c.similarMatch(key); idx >= 0 {
		return Match{Product: c.products[idx], Kind: MatchSimilar, Score: score}, true
	}

	return Match{}, false
}

func (c *Catalog) prefixMatch(key string) int {
	best := -1
	bestLen := 0
	for i, candidate := range c.keys {
		if !strings.HasPrefix(candidate, key) {
			continue
		}
		// Products are sorted by ID, so a strict comparison keeps the
		// smallest ID among equal prefix lengths.
		if len(key) > bestLen {
			best = i
			bestLen = len(key)
		}
	}
	return best
}

func (c *Catalog) similarMatch(key string) (int, float64) {
	if utf8.RuneCountInString(key) < MinSimilarityInput {
		return -1, 0
	}

	best := -1
	bestScore := similarityFloor
	for i, candidate := range c.keys {
		score := textnorm.Similarity(key, candidate)
		if score > SimilarityThreshold && score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		return -1, 0
	}
	return best, bestScore
}
