package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Version       int           `toml:"version"`
	PageRank      PageRank      `toml:"pagerank"`
	Keywords      Keywords      `toml:"keywords"`
	Summary       Summary       `toml:"summary"`
	Embedder      Embedder      `toml:"embedder"`
	DB            Database      `toml:"db"`
	Watch         Watch         `toml:"watch"`
	Observability Observability `toml:"observability"`
}

type PageRank struct {
	Damping       float64 `toml:"damping"`
	MaxIterations int     `toml:"max_iterations"`
	Tolerance     float64 `toml:"tolerance"`
}

type Keywords struct {
	Window        int      `toml:"window"`
	TopK          int      `toml:"top_k"`
	QualifyingPOS []string `toml:"qualifying_pos"`
}

type Summary struct {
	TopK           int  `toml:"top_k"`
	ClampNegatives bool `toml:"clamp_negatives"`
}

type Embedder struct {
	Dimension int `toml:"dimension"`
}

type Database struct {
	Enabled     bool          `toml:"enabled"`
	Path        string        `toml:"path"`
	BusyTimeout time.Duration `toml:"busy_timeout"`
}

type Watch struct {
	Paths         []string      `toml:"paths"`
	Debounce      time.Duration `toml:"debounce"`
	ExcludeDirs   []string      `toml:"exclude_dirs"`
	ExcludeFiles  []string      `toml:"exclude_files"`
	Extensions    []string      `toml:"extensions"`
	RatePerSecond float64       `toml:"rate_per_second"`
	Burst         int           `toml:"burst"`
}

type Observability struct {
	Enabled       bool   `toml:"enabled"`
	Port          int    `toml:"port"`
	EnableMetrics bool   `toml:"enable_metrics"`
	EnableTracing bool   `toml:"enable_tracing"`
	OTLPEndpoint  string `toml:"otlp_endpoint"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	ApplyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	if cfg.PageRank.Damping == 0 {
		cfg.PageRank.Damping = 0.85
	}
	if cfg.PageRank.MaxIterations == 0 {
		cfg.PageRank.MaxIterations = 100
	}
	if cfg.PageRank.Tolerance == 0 {
		cfg.PageRank.Tolerance = 1e-6
	}

	if cfg.Keywords.Window == 0 {
		cfg.Keywords.Window = 6
	}
	if cfg.Keywords.TopK == 0 {
		cfg.Keywords.TopK = 10
	}
	if len(cfg.Keywords.QualifyingPOS) == 0 {
		cfg.Keywords.QualifyingPOS = []string{"ADJ", "NOUN", "PROPN"}
	}

	if cfg.Summary.TopK == 0 {
		cfg.Summary.TopK = 3
	}

	if cfg.Embedder.Dimension == 0 {
		cfg.Embedder.Dimension = 256
	}

	if strings.TrimSpace(cfg.DB.Path) == "" {
		cfg.DB.Path = "textrank.db"
	}
	if cfg.DB.BusyTimeout <= 0 {
		cfg.DB.BusyTimeout = 5 * time.Second
	}

	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = []string{".txt", ".md"}
	}
	if cfg.Watch.RatePerSecond <= 0 {
		cfg.Watch.RatePerSecond = 2
	}
	if cfg.Watch.Burst <= 0 {
		cfg.Watch.Burst = 1
	}

	if cfg.Observability.Port == 0 {
		cfg.Observability.Port = 9188
	}
}

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d", cfg.Version)
	}
	if cfg.PageRank.Damping <= 0 || cfg.PageRank.Damping >= 1 {
		return fmt.Errorf("pagerank.damping must be in (0, 1), got %v", cfg.PageRank.Damping)
	}
	if cfg.PageRank.MaxIterations < 1 {
		return fmt.Errorf("pagerank.max_iterations must be >= 1, got %d", cfg.PageRank.MaxIterations)
	}
	if cfg.PageRank.Tolerance <= 0 {
		return fmt.Errorf("pagerank.tolerance must be positive, got %v", cfg.PageRank.Tolerance)
	}
	if cfg.Keywords.Window < 1 {
		return fmt.Errorf("keywords.window must be >= 1, got %d", cfg.Keywords.Window)
	}
	for _, tag := range cfg.Keywords.QualifyingPOS {
		switch strings.ToUpper(tag) {
		case "ADJ", "NOUN", "PROPN", "VERB", "ADV":
		default:
			return fmt.Errorf("keywords.qualifying_pos contains unknown tag %q", tag)
		}
	}
	if cfg.Embedder.Dimension < 8 {
		return fmt.Errorf("embedder.dimension must be >= 8, got %d", cfg.Embedder.Dimension)
	}
	if cfg.Observability.Port < 1 || cfg.Observability.Port > 65535 {
		return fmt.Errorf("observability.port %d out of range", cfg.Observability.Port)
	}
	if cfg.Observability.EnableTracing && strings.TrimSpace(cfg.Observability.OTLPEndpoint) == "" {
		return fmt.Errorf("observability.otlp_endpoint is required when tracing is enabled")
	}
	return nil
}
