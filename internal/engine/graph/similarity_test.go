package graph

import (
	"math"
	"testing"

	"textrank/internal/core/errors"
)

func TestSimilarityBuilder_EmptyInput(t *testing.T) {
	_, err := SimilarityBuilder{}.Build(nil)
	if !errors.IsCode(err, errors.CodeEmptyInput) {
		t.Errorf("Expected EMPTY_INPUT, got %v", err)
	}
}

func TestSimilarityBuilder_DimensionMismatch(t *testing.T) {
	_, err := SimilarityBuilder{}.Build([][]float64{{1, 0}, {1}})
	if !errors.IsCode(err, errors.CodeValidationError) {
		t.Errorf("Expected VALIDATION_ERROR, got %v", err)
	}
}

func TestSimilarityBuilder_SingleSentence(t *testing.T) {
	g, err := SimilarityBuilder{}.Build([][]float64{{1, 0}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.NodeCount() != 1 || g.EdgeCount() != 0 {
		t.Errorf("Expected 1 node and 0 edges, got %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestSimilarityBuilder_PairwiseCosine(t *testing.T) {
	// Two identical embeddings and one orthogonal outlier.
	g, err := SimilarityBuilder{}.Build([][]float64{{1, 0}, {1, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.EdgeCount() != 3 {
		t.Fatalf("Expected an edge per pair, got %d", g.EdgeCount())
	}
	if w := g.Weight(0, 1); math.Abs(w-1.0) > 1e-12 {
		t.Errorf("Expected identical vectors to score 1.0, got %v", w)
	}
	if w := g.Weight(0, 2); w != 0 {
		t.Errorf("Expected orthogonal vectors to score 0, got %v", w)
	}
	if w := g.Weight(1, 2); w != 0 {
		t.Errorf("Expected orthogonal vectors to score 0, got %v", w)
	}
}

func TestSimilarityBuilder_NegativePolicy(t *testing.T) {
	vecs := [][]float64{{1, 0}, {-1, 0}}

	passthrough, err := SimilarityBuilder{}.Build(vecs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if w := passthrough.Weight(0, 1); w != -1.0 {
		t.Errorf("Expected raw cosine -1.0 to pass through, got %v", w)
	}

	clamped, err := SimilarityBuilder{ClampNegatives: true}.Build(vecs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if w := clamped.Weight(0, 1); w != 0 {
		t.Errorf("Expected negative cosine clamped to 0, got %v", w)
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{3, 4}, []float64{3, 4}, 1.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"opposite", []float64{1, 0}, []float64{-2, 0}, -1.0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0.0},
		{"scale invariant", []float64{1, 2}, []float64{2, 4}, 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Cosine(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
