package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"textrank/internal/core/config"
	"textrank/internal/core/ports"
	"textrank/internal/data/history"
	"textrank/internal/engine/annotate"
	"textrank/internal/engine/embed"
	"textrank/internal/engine/graph"
)

// App owns the wired pipeline: collaborators, solver configuration and the
// optional history store. One App serves many extraction requests; each
// request builds its own graph and score map, so requests are independent.
type App struct {
	Config *config.Config

	annotator ports.Annotator
	embedder  ports.Embedder
	store     ports.HistoryStore
	solverCfg graph.Config
}

// Option overrides a default collaborator, mainly for tests and for
// callers that bring a real tagger or a learned encoder.
type Option func(*App)

func WithAnnotator(a ports.Annotator) Option {
	return func(app *App) { app.annotator = a }
}

func WithEmbedder(e ports.Embedder) Option {
	return func(app *App) { app.embedder = e }
}

func WithHistoryStore(s ports.HistoryStore) Option {
	return func(app *App) { app.store = s }
}

func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &App{
		Config:    cfg,
		annotator: annotate.New(),
		embedder:  embed.New(cfg.Embedder.Dimension),
		solverCfg: graph.Config{
			Damping:       cfg.PageRank.Damping,
			MaxIterations: cfg.PageRank.MaxIterations,
			Tolerance:     cfg.PageRank.Tolerance,
		},
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.store == nil && cfg.DB.Enabled {
		store, err := history.Open(cfg.DB.Path, cfg.DB.BusyTimeout)
		if err != nil {
			return nil, fmt.Errorf("open history store: %w", err)
		}
		app.store = store
		slog.Info("history store opened", "path", cfg.DB.Path)
	}

	return app, nil
}

func (a *App) Close(ctx context.Context) error {
	if closer, ok := a.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// qualifyingTags resolves the configured POS tag names once per request.
// Validation accepts tag names in any case, so normalization happens here
// as well.
func (a *App) qualifyingTags() map[annotate.Tag]bool {
	tags := make(map[annotate.Tag]bool, len(a.Config.Keywords.QualifyingPOS))
	for _, name := range a.Config.Keywords.QualifyingPOS {
		switch strings.ToUpper(name) {
		case "ADJ":
			tags[annotate.TagAdjective] = true
		case "NOUN":
			tags[annotate.TagNoun] = true
		case "PROPN":
			tags[annotate.TagProperNoun] = true
		case "VERB":
			tags[annotate.TagVerb] = true
		case "ADV":
			tags[annotate.TagAdverb] = true
		}
	}
	return tags
}
