package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"textrank/internal/core/app"
	"textrank/internal/core/config"
	"textrank/internal/core/ports"
	"textrank/internal/core/watcher"
	"textrank/internal/shared/observability"
	"textrank/internal/shared/util"
)

var (
	configPath = flag.String("config", "./textrank.toml", "Path to config file")
	keywords   = flag.Int("keywords", 0, "Extract the top N keywords")
	summary    = flag.Int("summary", 0, "Extract an N-sentence summary")
	watch      = flag.Bool("watch", false, "Re-rank documents when they change")
	scores     = flag.Bool("scores", false, "Print scores next to results")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("textrank v%s\n", VERSION)
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Load config; fall back to built-in defaults when the default file
	// is simply absent.
	cfg, err := config.Load(*configPath)
	if err != nil {
		if os.IsNotExist(err) && *configPath == "./textrank.toml" {
			cfg = config.Default()
		} else {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}

	if *keywords > 0 && *summary > 0 {
		fmt.Fprintln(os.Stderr, "-keywords and -summary cannot be used together")
		os.Exit(1)
	}
	if *keywords == 0 && *summary == 0 {
		fmt.Fprintln(os.Stderr, "one of -keywords N or -summary N is required")
		os.Exit(1)
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one document path is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Observability.EnableTracing {
		shutdown, err := observability.SetupTracing(ctx, cfg.Observability.OTLPEndpoint, VERSION)
		if err != nil {
			slog.Error("failed to set up tracing", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Warn("trace shutdown failed", "error", err)
			}
		}()
	}

	application, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer application.Close(ctx)

	if cfg.Observability.Enabled {
		health := app.NewHealthService(application)
		srv := observability.NewServer(
			fmt.Sprintf("127.0.0.1:%d", cfg.Observability.Port),
			cfg.Observability.EnableMetrics,
			health.Check,
		)
		if err := srv.Start(ctx); err != nil {
			slog.Error("failed to start observability server", "error", err)
			os.Exit(1)
		}
		defer srv.Stop(ctx)
	}

	ranker := application.Ranker()
	runAll := func(paths []string) {
		for _, path := range paths {
			if err := runDocument(ctx, ranker, path); err != nil {
				slog.Error("extraction failed", "path", path, "error", err)
			}
		}
	}

	runAll(flag.Args())

	if !*watch {
		return
	}

	limiter := util.NewLimiter(cfg.Watch.RatePerSecond, cfg.Watch.Burst)
	w, err := watcher.New(cfg.Watch.Debounce, cfg.Watch.Extensions,
		cfg.Watch.ExcludeDirs, cfg.Watch.ExcludeFiles, func(paths []string) {
			if err := limiter.Wait(ctx, 1); err != nil {
				return
			}
			runAll(paths)
		})
	if err != nil {
		slog.Error("failed to create watcher", "error", err)
		os.Exit(1)
	}
	defer w.Close()

	watchPaths := cfg.Watch.Paths
	if len(watchPaths) == 0 {
		watchPaths = flag.Args()
	}
	if err := w.Watch(watchPaths); err != nil {
		slog.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}
	slog.Info("watching for changes", "paths", watchPaths)

	<-ctx.Done()
}

func runDocument(ctx context.Context, ranker ports.Ranker, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text := string(content)
	name := filepath.Base(path)

	if *keywords > 0 {
		res, err := ranker.ExtractKeywords(ctx, ports.KeywordRequest{
			Text:    text,
			DocPath: path,
			K:       *keywords,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s: keywords\n", name)
		for _, kw := range res.Keywords {
			if *scores {
				fmt.Printf("  %-24s %.6f\n", kw, res.Scores[kw])
			} else {
				fmt.Printf("  %s\n", kw)
			}
		}
		logConvergence(res.Iterations, res.Converged)
		return nil
	}

	res, err := ranker.ExtractSummary(ctx, ports.SummaryRequest{
		Text:    text,
		DocPath: path,
		K:       *summary,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s: summary\n", name)
	for i, sentence := range res.Sentences {
		if *scores {
			fmt.Printf("  [%d] (%.6f) %s\n", res.Indices[i], res.Scores[res.Indices[i]], sentence)
		} else {
			fmt.Printf("  %s\n", sentence)
		}
	}
	logConvergence(res.Iterations, res.Converged)
	return nil
}

func logConvergence(iterations int, converged bool) {
	if converged {
		slog.Debug("pagerank converged", "iterations", iterations)
	} else {
		slog.Warn("pagerank did not converge", "iterations", iterations)
	}
}
