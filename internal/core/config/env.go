package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// ApplyEnvOverrides applies environment variable overrides to the
// configuration. Pattern: TEXTRANK_[SECTION]_[KEY]
// (e.g., TEXTRANK_PAGERANK_DAMPING).
func ApplyEnvOverrides(cfg *Config) {
	// PageRank
	setEnvFloat64(&cfg.PageRank.Damping, "TEXTRANK_PAGERANK_DAMPING")
	setEnvInt(&cfg.PageRank.MaxIterations, "TEXTRANK_PAGERANK_MAX_ITERATIONS")
	setEnvFloat64(&cfg.PageRank.Tolerance, "TEXTRANK_PAGERANK_TOLERANCE")

	// Keywords / summary
	setEnvInt(&cfg.Keywords.Window, "TEXTRANK_KEYWORDS_WINDOW")
	setEnvInt(&cfg.Keywords.TopK, "TEXTRANK_KEYWORDS_TOP_K")
	setEnvInt(&cfg.Summary.TopK, "TEXTRANK_SUMMARY_TOP_K")
	setEnvBool(&cfg.Summary.ClampNegatives, "TEXTRANK_SUMMARY_CLAMP_NEGATIVES")

	// Embedder
	setEnvInt(&cfg.Embedder.Dimension, "TEXTRANK_EMBEDDER_DIMENSION")

	// Database
	setEnvBool(&cfg.DB.Enabled, "TEXTRANK_DB_ENABLED")
	setEnvString(&cfg.DB.Path, "TEXTRANK_DB_PATH")
	setEnvDuration(&cfg.DB.BusyTimeout, "TEXTRANK_DB_BUSY_TIMEOUT")

	// Watch
	setEnvDuration(&cfg.Watch.Debounce, "TEXTRANK_WATCH_DEBOUNCE")

	// Observability
	setEnvBool(&cfg.Observability.Enabled, "TEXTRANK_OBSERVABILITY_ENABLED")
	setEnvInt(&cfg.Observability.Port, "TEXTRANK_OBSERVABILITY_PORT")
	setEnvBool(&cfg.Observability.EnableMetrics, "TEXTRANK_OBSERVABILITY_ENABLE_METRICS")
	setEnvBool(&cfg.Observability.EnableTracing, "TEXTRANK_OBSERVABILITY_ENABLE_TRACING")
	setEnvString(&cfg.Observability.OTLPEndpoint, "TEXTRANK_OBSERVABILITY_OTLP_ENDPOINT")
}

func setEnvString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		*target = val
	}
}

func setEnvBool(target *bool, key string) {
	if val, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(val)
		if err != nil {
			slog.Warn("invalid bool env override, ignoring", "key", key, "value", val)
			return
		}
		*target = parsed
	}
}

func setEnvInt(target *int, key string) {
	if val, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			slog.Warn("invalid int env override, ignoring", "key", key, "value", val)
			return
		}
		*target = parsed
	}
}

func setEnvFloat64(target *float64, key string) {
	if val, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			slog.Warn("invalid float env override, ignoring", "key", key, "value", val)
			return
		}
		*target = parsed
	}
}

func setEnvDuration(target *time.Duration, key string) {
	if val, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(val)
		if err != nil {
			slog.Warn("invalid duration env override, ignoring", "key", key, "value", val)
			return
		}
		*target = parsed
	}
}
