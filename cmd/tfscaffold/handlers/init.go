package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/tfscaffold/internal/config"
	"github.com/imamik/tfscaffold/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	wizardFileExists       = wizard.FileExists
	wizardConfirmOverwrite = wizard.ConfirmOverwrite
	wizardRunWizard        = wizard.RunWizard
	wizardBuildSpec        = wizard.BuildSpec
	wizardWriteSpec        = wizard.WriteSpec
)

// Init runs the interactive wizard and writes the resulting environment file.
func Init(ctx context.Context, outputPath string) error {
	if wizardFileExists(outputPath) {
		overwrite, err := wizardConfirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !overwrite {
			fmt.Println("Aborted.")
			return nil
		}
	}

	printWelcome()

	result, err := wizardRunWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	spec := wizardBuildSpec(result)
	if err := config.Validate(spec); err != nil {
		return fmt.Errorf("wizard produced an invalid environment: %w", err)
	}

	if err := wizardWriteSpec(spec, outputPath); err != nil {
		return fmt.Errorf("failed to write environment file: %w", err)
	}

	printInitSuccess(outputPath, spec)
	return nil
}

func printWelcome() {
	fmt.Println()
	fmt.Println(style(titleStyle, "tfscaffold - Terraform projects for AWS environments"))
	fmt.Println(style(dimStyle, "===================================================="))
	fmt.Println()
	fmt.Println("This wizard creates an environment file for tfscaffold generate.")
	fmt.Println()
}

func printInitSuccess(outputPath string, spec *config.EnvironmentSpec) {
	fmt.Println()
	fmt.Println(style(okStyle, "Environment saved!"))
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	printEnvironmentSummary(spec)

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Review %s\n", outputPath)
	fmt.Printf("  2. Run: tfscaffold generate -f %s\n", outputPath)
	if spec.Services.RelationalDatabaseEnabled() {
		fmt.Println()
		fmt.Println(style(dimStyle, "The file contains the database password. Keep it out of version control."))
	}
}
