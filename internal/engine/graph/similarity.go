package graph

import (
	"math"

	"textrank/internal/core/errors"
)

// SimilarityBuilder turns per-sentence embedding vectors into a graph whose
// nodes are zero-based sentence indices and whose edges carry pairwise
// cosine similarity. Every distinct pair gets an edge; there is no
// magnitude threshold.
//
// ClampNegatives controls what happens to negative cosine values: when set
// they are clamped to 0 before being stored, otherwise the raw value passes
// through unchanged (the reference behavior).
type SimilarityBuilder struct {
	ClampNegatives bool
}

// Build validates that all embeddings share one dimension, then adds an
// edge for every pair i < j. A single sentence yields one node, no edges.
func (b SimilarityBuilder) Build(embeddings [][]float64) (*Graph[int], error) {
	if len(embeddings) == 0 {
		return nil, errors.New(errors.CodeEmptyInput, "no sentence embeddings supplied")
	}

	dim := len(embeddings[0])
	for i, vec := range embeddings {
		if len(vec) != dim {
			return nil, errors.Newf(errors.CodeValidationError,
				"embedding %d has dimension %d, expected %d", i, len(vec), dim)
		}
	}

	g := New[int]()
	for i := range embeddings {
		g.AddNode(i)
	}
	for i := 0; i < len(embeddings); i++ {
		for j := i + 1; j < len(embeddings); j++ {
			sim := Cosine(embeddings[i], embeddings[j])
			if b.ClampNegatives && sim < 0 {
				sim = 0
			}
			if err := g.AddEdge(i, j, sim); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Cosine returns the cosine similarity of two equal-length vectors.
// A zero vector has similarity 0 with everything.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
