package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textrank.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `version = 1`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.PageRank.Damping != 0.85 {
		t.Errorf("Expected default damping 0.85, got %v", cfg.PageRank.Damping)
	}
	if cfg.PageRank.MaxIterations != 100 {
		t.Errorf("Expected default max_iterations 100, got %d", cfg.PageRank.MaxIterations)
	}
	if cfg.PageRank.Tolerance != 1e-6 {
		t.Errorf("Expected default tolerance 1e-6, got %v", cfg.PageRank.Tolerance)
	}
	if cfg.Keywords.Window != 6 {
		t.Errorf("Expected default window 6, got %d", cfg.Keywords.Window)
	}
	if cfg.Embedder.Dimension != 256 {
		t.Errorf("Expected default dimension 256, got %d", cfg.Embedder.Dimension)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("Expected default debounce 500ms, got %v", cfg.Watch.Debounce)
	}
	if cfg.Summary.ClampNegatives {
		t.Error("Expected negative similarities to pass through by default")
	}
}

func TestLoad_ExplicitValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
version = 1

[pagerank]
damping = 0.9
max_iterations = 50
tolerance = 1e-8

[keywords]
window = 4
top_k = 5
qualifying_pos = ["NOUN", "PROPN"]

[summary]
top_k = 2
clamp_negatives = true

[db]
enabled = true
path = "runs.db"
`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PageRank.Damping != 0.9 || cfg.PageRank.MaxIterations != 50 {
		t.Errorf("Unexpected pagerank config: %+v", cfg.PageRank)
	}
	if cfg.Keywords.Window != 4 || len(cfg.Keywords.QualifyingPOS) != 2 {
		t.Errorf("Unexpected keywords config: %+v", cfg.Keywords)
	}
	if !cfg.Summary.ClampNegatives || cfg.Summary.TopK != 2 {
		t.Errorf("Unexpected summary config: %+v", cfg.Summary)
	}
	if !cfg.DB.Enabled || cfg.DB.Path != "runs.db" {
		t.Errorf("Unexpected db config: %+v", cfg.DB)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad damping", "version = 1\n[pagerank]\ndamping = 1.5"},
		{"bad window", "version = 1\n[keywords]\nwindow = -1"},
		{"unknown pos tag", `version = 1` + "\n[keywords]\nqualifying_pos = [\"DETERMINER\"]"},
		{"tracing without endpoint", "version = 1\n[observability]\nenable_tracing = true"},
		{"bad version", "version = 9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TEXTRANK_KEYWORDS_WINDOW", "3")
	t.Setenv("TEXTRANK_DB_ENABLED", "true")

	cfg, err := Load(writeConfig(t, `version = 1`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Keywords.Window != 3 {
		t.Errorf("Expected env override window 3, got %d", cfg.Keywords.Window)
	}
	if !cfg.DB.Enabled {
		t.Error("Expected env override to enable db")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.PageRank.Damping != 0.85 || cfg.Keywords.TopK != 10 || cfg.Summary.TopK != 3 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}
