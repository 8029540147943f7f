package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	GraphNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "textrank_graph_nodes",
		Help: "Number of nodes in the most recently built ranking graph.",
	}, []string{"mode"})

	GraphEdges = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "textrank_graph_edges",
		Help: "Number of edges in the most recently built ranking graph.",
	}, []string{"mode"})

	RankDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "textrank_rank_seconds",
		Help:    "Time spent on a full graph-build-and-rank pass.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	PageRankIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "textrank_pagerank_iterations",
		Help:    "Power iterations needed per solve.",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})

	PageRankNotConvergedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "textrank_pagerank_not_converged_total",
		Help: "Total solves that hit the iteration cap before converging.",
	})

	RankRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textrank_rank_runs_total",
		Help: "Total extraction runs, by mode and outcome.",
	}, []string{"mode", "outcome"})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "textrank_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	HistoryWritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "textrank_history_writes_total",
		Help: "Total run snapshots persisted to the history store.",
	})
)
