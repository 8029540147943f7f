package graph

import (
	"math"

	"textrank/internal/core/errors"
	"textrank/internal/engine/annotate"
)

const (
	// DefaultWindow is the co-occurrence window radius in tokens.
	DefaultWindow = 6
)

// DefaultQualifyingTags matches the classic keyword setup: adjectives,
// common nouns and proper nouns.
func DefaultQualifyingTags() map[annotate.Tag]bool {
	return map[annotate.Tag]bool{
		annotate.TagAdjective:  true,
		annotate.TagNoun:       true,
		annotate.TagProperNoun: true,
	}
}

// CooccurrenceBuilder turns an annotated token stream into a lemma graph.
// Nodes are the distinct qualifying lemmas; edge weights encode windowed
// co-occurrence strength.
type CooccurrenceBuilder struct {
	Window     int
	Qualifying map[annotate.Tag]bool
}

func NewCooccurrenceBuilder() CooccurrenceBuilder {
	return CooccurrenceBuilder{
		Window:     DefaultWindow,
		Qualifying: DefaultQualifyingTags(),
	}
}

// Build scans every token position with a symmetric window of radius
// Window, clipped at document bounds, and accumulates 1/|d| per directed
// co-occurrence at offset d. Directed accumulators collapse into an
// undirected edge by taking the stronger direction (max, not sum), which
// is the tie-break the ranking order depends on.
func (b CooccurrenceBuilder) Build(tokens []annotate.Token) (*Graph[string], error) {
	if len(tokens) == 0 {
		return nil, errors.New(errors.CodeEmptyInput, "no tokens supplied")
	}

	window := b.Window
	if window <= 0 {
		window = DefaultWindow
	}
	qualifying := b.Qualifying
	if qualifying == nil {
		qualifying = DefaultQualifyingTags()
	}

	g := New[string]()
	nodeAt := make([]int, len(tokens)) // token position -> node index, -1 if not a candidate
	for i, tok := range tokens {
		nodeAt[i] = -1
		if tok.Stopword || !qualifying[tok.Tag] || tok.Lemma == "" {
			continue
		}
		g.AddNode(tok.Lemma)
		nodeAt[i] = g.index[tok.Lemma]
	}

	// Directed accumulator keyed by (from, to) node index.
	type pair struct{ from, to int }
	accum := make(map[pair]float64)
	for i := range tokens {
		from := nodeAt[i]
		if from < 0 {
			continue
		}
		lo := max(0, i-window)
		hi := min(len(tokens)-1, i+window)
		for j := lo; j <= hi; j++ {
			to := nodeAt[j]
			if j == i || to < 0 || to == from {
				continue
			}
			accum[pair{from, to}] += 1.0 / math.Abs(float64(j-i))
		}
	}

	nodes := g.Nodes()
	for p, w := range accum {
		if p.from > p.to {
			continue // handle each unordered pair once, from its (lo,hi) key
		}
		if rev := accum[pair{p.to, p.from}]; rev > w {
			w = rev
		}
		if w == 0 {
			continue
		}
		if err := g.AddEdge(nodes[p.from], nodes[p.to], w); err != nil {
			return nil, err
		}
	}
	return g, nil
}
