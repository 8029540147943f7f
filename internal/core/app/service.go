package app

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"textrank/internal/core/errors"
	"textrank/internal/core/ports"
	"textrank/internal/data/history"
	"textrank/internal/engine/annotate"
	"textrank/internal/engine/graph"
	"textrank/internal/shared/observability"
	"textrank/internal/shared/util"
)

type rankerService struct {
	app *App
}

var _ ports.Ranker = (*rankerService)(nil)

func NewRankerService(app *App) ports.Ranker {
	return &rankerService{app: app}
}

func (a *App) Ranker() ports.Ranker {
	return NewRankerService(a)
}

func (s *rankerService) ExtractKeywords(ctx context.Context, req ports.KeywordRequest) (ports.KeywordResult, error) {
	ctx, span := observability.Tracer.Start(ctx, "rankerService.ExtractKeywords")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return ports.KeywordResult{}, err
	}

	start := time.Now()
	mode := graph.ModeRanked.String()

	tokens := req.Tokens
	if tokens == nil {
		tokens, _ = s.app.annotator.Annotate(req.Text)
	}
	if len(tokens) == 0 {
		observability.RankRunsTotal.WithLabelValues(mode, "error").Inc()
		return ports.KeywordResult{}, errors.New(errors.CodeEmptyInput, "document has no tokens")
	}

	k := req.K
	if k == 0 {
		k = s.app.Config.Keywords.TopK
	}
	builder := graph.CooccurrenceBuilder{
		Window:     req.Window,
		Qualifying: s.app.qualifyingTags(),
	}
	if builder.Window == 0 {
		builder.Window = s.app.Config.Keywords.Window
	}
	if req.QualifyingPOS != nil {
		builder.Qualifying = make(map[annotate.Tag]bool, len(req.QualifyingPOS))
		for _, tag := range req.QualifyingPOS {
			builder.Qualifying[tag] = true
		}
	}

	g, err := builder.Build(tokens)
	if err != nil {
		observability.RankRunsTotal.WithLabelValues(mode, "error").Inc()
		return ports.KeywordResult{}, errors.AddContext(err, errors.CtxOperation, "build_cooccurrence_graph")
	}

	res := graph.Solve(g, s.app.solverCfg)
	keywords, err := graph.SelectTopK(res.Scores, k, graph.ModeRanked)
	if err != nil {
		observability.RankRunsTotal.WithLabelValues(mode, "error").Inc()
		return ports.KeywordResult{}, err
	}

	out := ports.KeywordResult{
		RunID:      uuid.NewString(),
		Keywords:   keywords,
		Scores:     res.Scores,
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}
	s.finishRun(runInfo{
		runID:      out.RunID,
		mode:       mode,
		docPath:    req.DocPath,
		docText:    req.Text,
		topK:       k,
		nodes:      g.NodeCount(),
		edges:      g.EdgeCount(),
		iterations: res.Iterations,
		converged:  res.Converged,
		results:    strings.Join(keywords, "\n"),
		started:    start,
	})
	span.SetAttributes(
		attribute.Int("graph.nodes", g.NodeCount()),
		attribute.Int("pagerank.iterations", res.Iterations),
		attribute.Bool("pagerank.converged", res.Converged),
	)
	return out, nil
}

func (s *rankerService) ExtractSummary(ctx context.Context, req ports.SummaryRequest) (ports.SummaryResult, error) {
	ctx, span := observability.Tracer.Start(ctx, "rankerService.ExtractSummary")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return ports.SummaryResult{}, err
	}

	start := time.Now()
	mode := graph.ModePositional.String()

	sentences := req.Sentences
	if sentences == nil {
		sentences = s.app.annotator.Sentences(req.Text)
	}
	if len(sentences) == 0 {
		observability.RankRunsTotal.WithLabelValues(mode, "error").Inc()
		return ports.SummaryResult{}, errors.New(errors.CodeEmptyInput, "document has no sentences")
	}

	embeddings := req.Embeddings
	if embeddings == nil {
		var err error
		embeddings, err = s.app.embedder.Embed(sentences)
		if err != nil {
			observability.RankRunsTotal.WithLabelValues(mode, "error").Inc()
			return ports.SummaryResult{}, errors.AddContext(err, errors.CtxOperation, "embed_sentences")
		}
	}
	if len(embeddings) != len(sentences) {
		observability.RankRunsTotal.WithLabelValues(mode, "error").Inc()
		return ports.SummaryResult{}, errors.Newf(errors.CodeValidationError,
			"embedder returned %d vectors for %d sentences", len(embeddings), len(sentences))
	}

	k := req.K
	if k == 0 {
		k = s.app.Config.Summary.TopK
	}

	builder := graph.SimilarityBuilder{ClampNegatives: s.app.Config.Summary.ClampNegatives}
	g, err := builder.Build(embeddings)
	if err != nil {
		observability.RankRunsTotal.WithLabelValues(mode, "error").Inc()
		return ports.SummaryResult{}, errors.AddContext(err, errors.CtxOperation, "build_similarity_graph")
	}

	res := graph.Solve(g, s.app.solverCfg)
	indices, err := graph.SelectTopK(res.Scores, k, graph.ModePositional)
	if err != nil {
		observability.RankRunsTotal.WithLabelValues(mode, "error").Inc()
		return ports.SummaryResult{}, err
	}

	selected := make([]string, len(indices))
	for i, idx := range indices {
		selected[i] = sentences[idx]
	}

	out := ports.SummaryResult{
		RunID:      uuid.NewString(),
		Indices:    indices,
		Sentences:  selected,
		Scores:     res.Scores,
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}
	results := make([]string, len(indices))
	for i, idx := range indices {
		results[i] = strconv.Itoa(idx)
	}
	s.finishRun(runInfo{
		runID:      out.RunID,
		mode:       mode,
		docPath:    req.DocPath,
		docText:    req.Text,
		topK:       k,
		nodes:      g.NodeCount(),
		edges:      g.EdgeCount(),
		iterations: res.Iterations,
		converged:  res.Converged,
		results:    strings.Join(results, "\n"),
		started:    start,
	})
	span.SetAttributes(
		attribute.Int("graph.nodes", g.NodeCount()),
		attribute.Int("pagerank.iterations", res.Iterations),
		attribute.Bool("pagerank.converged", res.Converged),
	)
	return out, nil
}

type runInfo struct {
	runID      string
	mode       string
	docPath    string
	docText    string
	topK       int
	nodes      int
	edges      int
	iterations int
	converged  bool
	results    string
	started    time.Time
}

// maxSnapshotResults caps the serialized result column so a pathological
// document cannot bloat history rows.
const maxSnapshotResults = 4096

// finishRun records metrics and, when a store is configured, the snapshot.
// History failures are logged, never surfaced: persistence is diagnostics,
// not part of the ranking contract.
func (s *rankerService) finishRun(info runInfo) {
	elapsed := time.Since(info.started)

	observability.GraphNodes.WithLabelValues(info.mode).Set(float64(info.nodes))
	observability.GraphEdges.WithLabelValues(info.mode).Set(float64(info.edges))
	observability.RankDuration.WithLabelValues(info.mode).Observe(elapsed.Seconds())
	observability.PageRankIterations.Observe(float64(info.iterations))
	observability.RankRunsTotal.WithLabelValues(info.mode, "ok").Inc()
	if !info.converged {
		observability.PageRankNotConvergedTotal.Inc()
		slog.Warn("pagerank hit iteration cap",
			"mode", info.mode, "iterations", info.iterations)
	}

	if s.app.store == nil {
		return
	}
	err := s.app.store.SaveRun(history.Run{
		RunID:      info.runID,
		Timestamp:  time.Now().UTC(),
		DocPath:    info.docPath,
		DocHash:    util.DocumentHash([]byte(info.docText)),
		Mode:       info.mode,
		TopK:       info.topK,
		NodeCount:  info.nodes,
		EdgeCount:  info.edges,
		Iterations: info.iterations,
		Converged:  info.converged,
		Duration:   elapsed,
		Results:    util.Truncate(info.results, maxSnapshotResults),
	})
	if err != nil {
		slog.Error("failed to save run snapshot", "run_id", info.runID, "error", err)
		return
	}
	observability.HistoryWritesTotal.Inc()
}
