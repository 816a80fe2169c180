package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tfscaffold/cmd/tfscaffold/handlers"
)

// Validate returns the command that checks an environment file.
func Validate() *cobra.Command {
	var specPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an environment file and report every violation",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(specPath)
		},
	}

	cmd.Flags().StringVarP(&specPath, "file", "f", "", "Path to environment file (default: environment.yaml)")

	return cmd
}
