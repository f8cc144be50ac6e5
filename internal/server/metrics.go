package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/giantswarm/mcp-terraform-cloud/internal/instrumentation"
)

// DefaultMetricsAddr is the default listen address for the metrics server.
const DefaultMetricsAddr = ":9090"

// MetricsServerConfig holds the configuration for the metrics server.
type MetricsServerConfig struct {
	// Addr is the listen address (default: ":9090")
	Addr string

	// InstrumentationProvider supplies the Prometheus registry to expose.
	InstrumentationProvider *instrumentation.Provider
}

// MetricsServer serves the Prometheus scrape endpoint on a dedicated
// listener, separate from the MCP transport. It also exposes a minimal
// /healthz so the metrics port can be probed independently.
type MetricsServer struct {
	addr     string
	provider *instrumentation.Provider

	mu     sync.Mutex
	server *http.Server
}

// NewMetricsServer creates a metrics server from the given configuration.
func NewMetricsServer(config MetricsServerConfig) (*MetricsServer, error) {
	if config.InstrumentationProvider == nil {
		return nil, errors.New("instrumentation provider is required")
	}

	addr := config.Addr
	if addr == "" {
		addr = DefaultMetricsAddr
	}

	return &MetricsServer{
		addr:     addr,
		provider: config.InstrumentationProvider,
	}, nil
}

// Addr returns the configured listen address.
func (ms *MetricsServer) Addr() string {
	return ms.addr
}

// Start runs the metrics server. It blocks until the server stops and
// returns http.ErrServerClosed on graceful shutdown.
func (ms *MetricsServer) Start() error {
	mux := http.NewServeMux()

	if registry := ms.provider.Registry(); registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	} else {
		// Non-prometheus exporters push metrics elsewhere; keep the endpoint
		// responsive so scrapes don't 404.
		mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:              ms.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ms.mu.Lock()
	ms.server = server
	ms.mu.Unlock()

	return server.ListenAndServe()
}

// Shutdown gracefully stops the metrics server. Safe to call before Start.
func (ms *MetricsServer) Shutdown(ctx context.Context) error {
	ms.mu.Lock()
	server := ms.server
	ms.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
