package graph

import (
	"testing"

	"textrank/internal/core/errors"
)

func TestGraph_AddNodeIdempotent(t *testing.T) {
	g := New[string]()
	g.AddNode("dog")
	g.AddNode("dog")
	g.AddNode("fast")

	if g.NodeCount() != 2 {
		t.Errorf("Expected 2 nodes, got %d", g.NodeCount())
	}
	nodes := g.Nodes()
	if nodes[0] != "dog" || nodes[1] != "fast" {
		t.Errorf("Expected insertion order [dog fast], got %v", nodes)
	}
}

func TestGraph_AddEdge(t *testing.T) {
	g := New[string]()
	g.AddNode("a")
	g.AddNode("b")

	if err := g.AddEdge("a", "b", 1.5); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("Expected 1 edge, got %d", g.EdgeCount())
	}
	if w := g.Weight("a", "b"); w != 1.5 {
		t.Errorf("Expected weight 1.5, got %v", w)
	}
	if w := g.Weight("b", "a"); w != 1.5 {
		t.Errorf("Expected symmetric weight 1.5, got %v", w)
	}

	// Overwrite, not accumulate.
	if err := g.AddEdge("b", "a", 0.25); err != nil {
		t.Fatalf("AddEdge overwrite failed: %v", err)
	}
	if w := g.Weight("a", "b"); w != 0.25 {
		t.Errorf("Expected overwritten weight 0.25, got %v", w)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("Expected edge count to stay at 1, got %d", g.EdgeCount())
	}
}

func TestGraph_AccumulateEdge(t *testing.T) {
	g := New[string]()
	g.AddNode("a")
	g.AddNode("b")

	if err := g.AccumulateEdge("a", "b", 1.0); err != nil {
		t.Fatalf("AccumulateEdge failed: %v", err)
	}
	if err := g.AccumulateEdge("b", "a", 0.5); err != nil {
		t.Fatalf("AccumulateEdge failed: %v", err)
	}
	if w := g.Weight("a", "b"); w != 1.5 {
		t.Errorf("Expected accumulated weight 1.5, got %v", w)
	}
}

func TestGraph_InvalidEdges(t *testing.T) {
	g := New[string]()
	g.AddNode("a")
	g.AddNode("b")

	tests := []struct {
		name string
		a, b string
		w    float64
	}{
		{"unregistered from", "ghost", "b", 1},
		{"unregistered to", "a", "ghost", 1},
		{"self loop", "a", "a", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.a, tc.b, tc.w)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.IsCode(err, errors.CodeInvalidEdge) {
				t.Errorf("Expected INVALID_EDGE, got %v", err)
			}
		})
	}
}

func TestGraph_AbsentPairHasZeroWeight(t *testing.T) {
	g := New[int]()
	g.AddNode(0)
	g.AddNode(1)
	if w := g.Weight(0, 1); w != 0 {
		t.Errorf("Expected implicit 0 weight, got %v", w)
	}
}
