package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tfscaffold/cmd/tfscaffold/handlers"
)

// Inspect returns the command that prints the template model.
func Inspect() *cobra.Command {
	var specPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the template model derived from an environment file",
		Long: `Print the template model derived from an environment file.

Shows the subnet plan, service flags, resource names and tags the
templates are rendered with. The database password is masked.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Inspect(specPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&specPath, "file", "f", "", "Path to environment file (default: environment.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
