package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/imamik/tfscaffold/internal/server"
	"github.com/imamik/tfscaffold/internal/terraform"
)

// ServeOptions holds the serve flags. The *Set fields record whether a flag
// was given explicitly and should override the environment.
type ServeOptions struct {
	Addr          string
	AddrSet       bool
	Sequential    bool
	SequentialSet bool
}

// Factory function variables for serve - can be replaced in tests.
var (
	// loadServerConfig reads the server configuration from the environment.
	loadServerConfig = server.LoadConfig

	// setupSignalHandler returns a context canceled on SIGINT or SIGTERM.
	setupSignalHandler = signals.SetupSignalHandler

	// newMetricsRegistry creates the registry served on /metrics.
	newMetricsRegistry = prometheus.NewRegistry

	// runServer serves until ctx is canceled.
	runServer = func(ctx context.Context, srv *server.Server) error {
		return srv.Run(ctx)
	}
)

// Serve runs the HTTP API until the process receives SIGINT or SIGTERM.
func Serve(ctx context.Context, opts ServeOptions, zapOpts *zap.Options) error {
	log := zap.New(zap.UseFlagOptions(zapOpts))
	logf.SetLogger(log)

	cfg, err := loadServerConfig()
	if err != nil {
		return err
	}
	if opts.AddrSet {
		cfg.Addr = opts.Addr
	}
	if opts.SequentialSet {
		cfg.SequentialRendering = opts.Sequential
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderer, err := newRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	genOpts := []terraform.Option{terraform.WithLogger(log.WithName("generator"))}
	if cfg.SequentialRendering {
		genOpts = append(genOpts, terraform.WithSequentialRendering())
	}

	srv := server.New(cfg, terraform.NewGenerator(renderer, genOpts...),
		server.WithLogger(log.WithName("server")),
		server.WithRegistry(newMetricsRegistry()),
		server.WithReadinessCheck("templates", func(_ *http.Request) error {
			return renderer.Check()
		}),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(setupSignalHandler(), cancel)
	defer stop()

	log.Info("Starting tfscaffold", "addr", cfg.Addr, "sequentialRendering", cfg.SequentialRendering)
	return runServer(ctx, srv)
}
