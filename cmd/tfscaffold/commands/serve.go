package commands

import (
	"flag"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/imamik/tfscaffold/cmd/tfscaffold/handlers"
)

// Serve returns the command that runs the HTTP API.
//
// Server settings are read from TFSCAFFOLD_* environment variables; the
// flags below override them. Logging is configured with the --zap-* flags.
//
// Flags:
//
//	--addr: Listen address (overrides TFSCAFFOLD_ADDR)
//	--sequential: Render artifacts one at a time
func Serve() *cobra.Command {
	var opts handlers.ServeOptions

	zapOpts := &zap.Options{
		TimeEncoder: zapcore.ISO8601TimeEncoder,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Terraform generation HTTP API",
		Long: `Run the HTTP API.

Endpoints:
  POST /api/v1/environments  Generate the project and return it as JSON
  POST /api/v1/download      Generate the project and return it as a zip archive
  GET  /healthz, /readyz     Health checks
  GET  /metrics              Prometheus metrics

Environment:
  TFSCAFFOLD_ADDR, TFSCAFFOLD_READ_TIMEOUT, TFSCAFFOLD_WRITE_TIMEOUT,
  TFSCAFFOLD_SHUTDOWN_TIMEOUT, TFSCAFFOLD_MAX_BODY_BYTES,
  TFSCAFFOLD_SEQUENTIAL_RENDERING`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.AddrSet = cmd.Flags().Changed("addr")
			opts.SequentialSet = cmd.Flags().Changed("sequential")
			return handlers.Serve(cmd.Context(), opts, zapOpts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "Listen address")
	cmd.Flags().BoolVar(&opts.Sequential, "sequential", false, "Render artifacts one at a time")

	zapFlags := flag.NewFlagSet("zap", flag.ContinueOnError)
	zapOpts.BindFlags(zapFlags)
	cmd.Flags().AddGoFlagSet(zapFlags)

	return cmd
}
