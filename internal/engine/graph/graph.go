package graph

import (
	"cmp"
	"math"

	"textrank/internal/core/errors"
)

// Graph is a weighted undirected graph over ordered, comparable node IDs.
// Nodes keep their insertion order so every traversal is deterministic.
// A pair absent from the adjacency has implicit weight 0 and is not adjacent.
//
// Graphs are built once per document and never mutated afterwards, so no
// locking is needed; a finished graph is safe for concurrent reads.
type Graph[N cmp.Ordered] struct {
	nodes []N
	index map[N]int
	adj   []map[int]float64 // adj[i][j] == adj[j][i]
	edges int
}

func New[N cmp.Ordered]() *Graph[N] {
	return &Graph[N]{index: make(map[N]int)}
}

// AddNode registers a node. Re-adding an existing node is a no-op.
func (g *Graph[N]) AddNode(n N) {
	if _, ok := g.index[n]; ok {
		return
	}
	g.index[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, nil)
}

func (g *Graph[N]) HasNode(n N) bool {
	_, ok := g.index[n]
	return ok
}

func (g *Graph[N]) NodeCount() int { return len(g.nodes) }

func (g *Graph[N]) EdgeCount() int { return g.edges }

// Nodes returns the nodes in insertion order. The slice is a copy.
func (g *Graph[N]) Nodes() []N {
	out := make([]N, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Weight returns the stored weight for {a,b}, or 0 when the pair is not adjacent.
func (g *Graph[N]) Weight(a, b N) float64 {
	ia, ok := g.index[a]
	if !ok {
		return 0
	}
	ib, ok := g.index[b]
	if !ok {
		return 0
	}
	return g.adj[ia][ib]
}

// AddEdge stores weight w for the unordered pair {a,b}, overwriting any
// previous weight. Fails when either endpoint is unregistered, when a == b,
// or when w is not a finite number.
func (g *Graph[N]) AddEdge(a, b N, w float64) error {
	ia, ib, err := g.endpoints(a, b, w)
	if err != nil {
		return err
	}
	g.setEdge(ia, ib, w)
	return nil
}

// AccumulateEdge adds w onto the existing weight for {a,b} (0 when absent).
// Same failure modes as AddEdge.
func (g *Graph[N]) AccumulateEdge(a, b N, w float64) error {
	ia, ib, err := g.endpoints(a, b, w)
	if err != nil {
		return err
	}
	g.setEdge(ia, ib, g.adj[ia][ib]+w)
	return nil
}

func (g *Graph[N]) endpoints(a, b N, w float64) (int, int, error) {
	ia, ok := g.index[a]
	if !ok {
		return 0, 0, errors.Newf(errors.CodeInvalidEdge, "node %v is not registered", a)
	}
	ib, ok := g.index[b]
	if !ok {
		return 0, 0, errors.Newf(errors.CodeInvalidEdge, "node %v is not registered", b)
	}
	if ia == ib {
		return 0, 0, errors.Newf(errors.CodeInvalidEdge, "self-loop on node %v", a)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, 0, errors.Newf(errors.CodeInvalidEdge, "edge weight %v is not finite", w)
	}
	return ia, ib, nil
}

func (g *Graph[N]) setEdge(ia, ib int, w float64) {
	if g.adj[ia] == nil {
		g.adj[ia] = make(map[int]float64)
	}
	if g.adj[ib] == nil {
		g.adj[ib] = make(map[int]float64)
	}
	if _, exists := g.adj[ia][ib]; !exists {
		g.edges++
	}
	g.adj[ia][ib] = w
	g.adj[ib][ia] = w
}

// neighbors exposes the raw adjacency row for a node index. Solver-internal.
func (g *Graph[N]) neighbors(i int) map[int]float64 { return g.adj[i] }
