// Package embed provides the default sentence embedder: an FNV
// feature-hashing bag of words. It needs no model files, preserves input
// order, and is fully deterministic, so identical sentences always map to
// identical vectors (cosine similarity 1.0). A learned encoder can replace
// it through the embedder port.
package embed

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"textrank/internal/core/errors"
)

// DefaultDimension is the hashed vector width. Wide enough that unrelated
// short sentences rarely collide into the same buckets.
const DefaultDimension = 256

type Embedder struct {
	Dimension int
}

func New(dimension int) *Embedder {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Embedder{Dimension: dimension}
}

// Embed maps each sentence to an L2-normalized hashed term-count vector.
// Output order matches input order exactly; every vector has the same
// dimension. A sentence with no word content embeds to the zero vector.
func (e *Embedder) Embed(sentences []string) ([][]float64, error) {
	if len(sentences) == 0 {
		return nil, errors.New(errors.CodeEmptyInput, "no sentences supplied")
	}

	vectors := make([][]float64, len(sentences))
	for i, s := range sentences {
		vectors[i] = e.embedOne(s)
	}
	return vectors, nil
}

func (e *Embedder) embedOne(sentence string) []float64 {
	vec := make([]float64, e.Dimension)
	for _, term := range fields(sentence) {
		h := fnv.New32a()
		h.Write([]byte(term))
		vec[int(h.Sum32())%e.Dimension]++
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func fields(sentence string) []string {
	lower := strings.ToLower(sentence)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
