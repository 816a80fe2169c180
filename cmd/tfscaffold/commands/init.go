package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tfscaffold/cmd/tfscaffold/handlers"
)

// Init returns the command for interactively creating an environment file.
//
// Flags:
//
//	--output, -o: Path to output file (default "environment.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create an environment file",
		Long: `Interactively create an environment file.

The wizard asks about:

  - Environment identity (name and region)
  - VPC network range
  - Managed services (S3 bucket, RDS database, ECS cluster)
  - Database settings (when RDS is enabled)
  - Resource tags (optional)`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "environment.yaml", "Output file path")

	return cmd
}
