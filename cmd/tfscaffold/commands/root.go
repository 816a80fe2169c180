// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the tfscaffold CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tfscaffold",
		Short:         "Generate Terraform projects for AWS environments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Core commands
	cmd.AddCommand(Serve())
	cmd.AddCommand(Generate())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Inspect())
	cmd.AddCommand(Init())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
