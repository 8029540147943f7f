package graph

import (
	"cmp"
	"math"
	"slices"
)

// Config controls the damped power iteration.
type Config struct {
	Damping       float64
	MaxIterations int
	Tolerance     float64
}

func DefaultConfig() Config {
	return Config{
		Damping:       0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// Result is the solver outcome. Scores always sum to 1 (within floating
// tolerance); Converged is false when the iteration cap was hit first,
// which is a diagnostic signal, not an error.
type Result[N cmp.Ordered] struct {
	Scores     map[N]float64
	Iterations int
	Converged  bool
}

// edge is a neighbor index + weight pair used for deterministic iteration.
type edge struct {
	to     int
	weight float64
}

// Solve runs weighted PageRank over g. Mass from dangling nodes (total
// incident weight <= 0) is redistributed uniformly so disconnected
// components stay coupled and total probability is preserved.
func Solve[N cmp.Ordered](g *Graph[N], cfg Config) Result[N] {
	n := g.NodeCount()
	if n == 0 {
		return Result[N]{Scores: map[N]float64{}, Converged: true}
	}

	// Snapshot adjacency into index-sorted slices. Map iteration order is
	// randomized and float addition is not associative, so summing in a
	// fixed order is what makes repeated runs byte-identical.
	adj := make([][]edge, n)
	weightSum := make([]float64, n)
	for i := 0; i < n; i++ {
		row := g.neighbors(i)
		adj[i] = make([]edge, 0, len(row))
		for j, w := range row {
			adj[i] = append(adj[i], edge{to: j, weight: w})
			weightSum[i] += w
		}
		slices.SortFunc(adj[i], func(a, b edge) int { return a.to - b.to })
	}

	nf := float64(n)
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / nf
	}

	iterations := 0
	converged := false
	next := make([]float64, n)

	for iterations < cfg.MaxIterations {
		iterations++

		dangling := 0.0
		for i := 0; i < n; i++ {
			if weightSum[i] <= 0 {
				dangling += scores[i]
			}
		}

		delta := 0.0
		for i := 0; i < n; i++ {
			sum := dangling / nf
			for _, e := range adj[i] {
				if weightSum[e.to] > 0 {
					sum += scores[e.to] * e.weight / weightSum[e.to]
				}
			}
			next[i] = (1-cfg.Damping)/nf + cfg.Damping*sum
			delta += math.Abs(next[i] - scores[i])
		}

		scores, next = next, scores
		if delta < cfg.Tolerance {
			converged = true
			break
		}
	}

	out := make(map[N]float64, n)
	for i, node := range g.Nodes() {
		out[node] = scores[i]
	}
	return Result[N]{Scores: out, Iterations: iterations, Converged: converged}
}
