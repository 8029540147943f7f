package observability

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthStatus is the /health payload.
type HealthStatus struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components map[string]string `json:"components"`
}

// Server exposes /health, and optionally /metrics, on a local address.
type Server struct {
	addr          string
	enableMetrics bool
	health        func(context.Context) HealthStatus
	server        *http.Server
}

func NewServer(addr string, enableMetrics bool, health func(context.Context) HealthStatus) *Server {
	return &Server{addr: addr, enableMetrics: enableMetrics, health: health}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Prometheus metrics, only when asked for
	if s.enableMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status := s.health(r.Context())
		w.Header().Set("Content-Type", "application/json")
		if status.Status != "up" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(status)
	})

	return mux
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.routes(),
	}

	slog.Info("observability server starting", "addr", s.addr)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("observability server failed", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
