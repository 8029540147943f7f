package embed

import (
	"math"
	"testing"

	"textrank/internal/core/errors"
	"textrank/internal/engine/graph"
)

func TestEmbed_EmptyInput(t *testing.T) {
	_, err := New(0).Embed(nil)
	if !errors.IsCode(err, errors.CodeEmptyInput) {
		t.Errorf("Expected EMPTY_INPUT, got %v", err)
	}
}

func TestEmbed_OrderAndDimension(t *testing.T) {
	e := New(64)
	vecs, err := e.Embed([]string{"dogs run", "cats sleep", "dogs run"})
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if len(vecs) != 3 {
		t.Fatalf("Expected 3 vectors, got %d", len(vecs))
	}
	for i, v := range vecs {
		if len(v) != 64 {
			t.Errorf("Vector %d: expected dimension 64, got %d", i, len(v))
		}
	}
}

func TestEmbed_IdenticalSentencesIdenticalVectors(t *testing.T) {
	vecs, err := New(0).Embed([]string{"the quick brown fox", "The quick brown FOX"})
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if sim := graph.Cosine(vecs[0], vecs[1]); math.Abs(sim-1.0) > 1e-12 {
		t.Errorf("Expected case-insensitive identical sentences to have cosine 1.0, got %v", sim)
	}
}

func TestEmbed_UnitNorm(t *testing.T) {
	vecs, err := New(0).Embed([]string{"graphs rank words by importance"})
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	var norm float64
	for _, v := range vecs[0] {
		norm += v * v
	}
	if math.Abs(norm-1.0) > 1e-9 {
		t.Errorf("Expected unit norm, got %v", math.Sqrt(norm))
	}
}

func TestEmbed_BlankSentenceZeroVector(t *testing.T) {
	vecs, err := New(0).Embed([]string{"..."})
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	for i, v := range vecs[0] {
		if v != 0 {
			t.Fatalf("Expected zero vector for blank sentence, found %v at %d", v, i)
		}
	}
}

func TestEmbed_DisjointSentencesLowSimilarity(t *testing.T) {
	vecs, err := New(0).Embed([]string{"alpha beta gamma", "delta epsilon zeta"})
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if sim := graph.Cosine(vecs[0], vecs[1]); sim > 0.5 {
		t.Errorf("Expected disjoint vocabularies to stay dissimilar, got %v", sim)
	}
}
