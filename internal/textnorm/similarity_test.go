package textnorm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tayloree/restock/internal/textnorm"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"tomate", "tomates", 1},
		{"cebolla", "cebola", 1},
		{"piña", "pina", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, textnorm.Distance(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, textnorm.Similarity("", ""))
	assert.Equal(t, 0.0, textnorm.Similarity("abc", ""))
	assert.InDelta(t, 6.0/7.0, textnorm.Similarity("tomate", "tomates"), 1e-9)
	assert.InDelta(t, 0.5, textnorm.Similarity("ab", "ac"), 1e-9)
}

func TestSimilarity_Properties(t *testing.T) {
	words := []string{"", "sal", "salmon", "salmón", "tomate", "tomates", "aceite de oliva", "ajo", "œuf"}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		a := words[rng.Intn(len(words))]
		b := words[rng.Intn(len(words))]

		score := textnorm.Similarity(a, b)
		assert.Equal(t, 1.0, textnorm.Similarity(a, a))
		assert.Equal(t, score, textnorm.Similarity(b, a))
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
