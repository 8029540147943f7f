package graph

import (
	"cmp"
	"slices"

	"textrank/internal/core/errors"
)

// Mode selects the ordering policy for top-K output.
type Mode int

const (
	// ModeRanked orders output by descending score (keyword mode).
	ModeRanked Mode = iota
	// ModePositional picks by score but re-orders the selection by
	// ascending node identifier, preserving document order (summary mode).
	ModePositional
)

func (m Mode) String() string {
	if m == ModePositional {
		return "positional"
	}
	return "ranked"
}

// SelectTopK returns the k best-scoring nodes. Score ties break on
// ascending node identifier so output is reproducible. k == 0 is an
// error; k beyond the node count clamps silently.
func SelectTopK[N cmp.Ordered](scores map[N]float64, k int, mode Mode) ([]N, error) {
	if k <= 0 {
		return nil, errors.Newf(errors.CodeInvalidK, "k must be positive, got %d", k)
	}

	ordered := make([]N, 0, len(scores))
	for node := range scores {
		ordered = append(ordered, node)
	}
	slices.SortFunc(ordered, func(a, b N) int {
		if c := cmp.Compare(scores[b], scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	if k > len(ordered) {
		k = len(ordered)
	}
	selected := ordered[:k]

	if mode == ModePositional {
		slices.Sort(selected)
	}
	return selected, nil
}
