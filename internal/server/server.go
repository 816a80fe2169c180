package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"sigs.k8s.io/controller-runtime/pkg/healthz"

	"github.com/imamik/tfscaffold/internal/config"
	"github.com/imamik/tfscaffold/internal/terraform"
)

// Generator renders the Terraform project of an environment.
type Generator interface {
	Generate(ctx context.Context, spec *config.EnvironmentSpec) (*terraform.ArtifactSet, error)
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(log logr.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// WithReadinessCheck adds a named check to /readyz.
func WithReadinessCheck(name string, check healthz.Checker) Option {
	return func(s *Server) {
		s.readyChecks[name] = check
	}
}

// WithRegistry sets the registry metrics are registered with and served from.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// Server serves the generation API.
type Server struct {
	cfg         Config
	generator   Generator
	log         logr.Logger
	registry    *prometheus.Registry
	readyChecks map[string]healthz.Checker
	metrics     *metrics
	handler     http.Handler
}

// New creates a Server that generates projects with generator.
func New(cfg Config, generator Generator, opts ...Option) *Server {
	s := &Server{
		cfg:         cfg,
		generator:   generator,
		log:         logr.Discard(),
		readyChecks: map[string]healthz.Checker{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.registry)
	s.handler = s.routes()
	return s
}

// Handler returns the HTTP handler of all routes.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/environments", s.handleEnvironments)
	mux.HandleFunc("POST /api/v1/download", s.handleDownload)

	live := &healthz.Handler{Checks: map[string]healthz.Checker{"ping": healthz.Ping}}
	ready := &healthz.Handler{Checks: s.readyChecks}
	mountHealth(mux, "/healthz", live)
	mountHealth(mux, "/readyz", ready)

	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// mountHealth serves the aggregated check at path and single checks below it.
func mountHealth(mux *http.ServeMux, path string, h http.Handler) {
	mux.Handle("GET "+path, http.StripPrefix(path, h))
	mux.Handle("GET "+path+"/", http.StripPrefix(path, h))
}

// Run listens on the configured address and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info("HTTP server started", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP server", "timeout", s.cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("HTTP server stopped")
	return nil
}
