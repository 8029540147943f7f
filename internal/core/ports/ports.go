package ports

import (
	"context"
	"time"

	"textrank/internal/data/history"
	"textrank/internal/engine/annotate"
)

// Annotator abstracts linguistic annotation. Implementations must preserve
// token order and produce lemma identifiers that are stable within one
// document.
type Annotator interface {
	Annotate(text string) ([]annotate.Token, []annotate.Span)
	Sentences(text string) []string
}

// Embedder abstracts sentence embedding. Output order must match input
// order exactly and all vectors must share one dimension.
type Embedder interface {
	Embed(sentences []string) ([][]float64, error)
}

// HistoryStore abstracts run-snapshot persistence.
type HistoryStore interface {
	SaveRun(run history.Run) error
	LoadRuns(since time.Time) ([]history.Run, error)
}

// KeywordRequest asks for the top-K keywords of one document. When Tokens
// is non-nil it is used as-is and Text is ignored, so callers with their
// own tagger can bypass the built-in annotator.
type KeywordRequest struct {
	Text          string
	Tokens        []annotate.Token
	DocPath       string
	K             int              // 0 means configured default
	Window        int              // 0 means configured default
	QualifyingPOS []annotate.Tag   // nil means configured default
}

// KeywordResult carries the ranked lemmas plus solver diagnostics.
type KeywordResult struct {
	RunID      string
	Keywords   []string
	Scores     map[string]float64
	Iterations int
	Converged  bool
}

// SummaryRequest asks for a K-sentence extractive summary. When both
// Sentences and Embeddings are provided they are used directly; otherwise
// Text is segmented and embedded through the configured collaborators.
type SummaryRequest struct {
	Text       string
	Sentences  []string
	Embeddings [][]float64
	DocPath    string
	K          int // 0 means configured default
}

// SummaryResult lists the selected sentence indices in document order.
type SummaryResult struct {
	RunID      string
	Indices    []int
	Sentences  []string
	Scores     map[int]float64
	Iterations int
	Converged  bool
}

// Ranker is the driving port over the ranking pipeline.
type Ranker interface {
	ExtractKeywords(ctx context.Context, req KeywordRequest) (KeywordResult, error)
	ExtractSummary(ctx context.Context, req SummaryRequest) (SummaryResult, error)
}
