package handlers

import (
	"fmt"

	"github.com/imamik/tfscaffold/internal/config"
)

// Validate checks an environment file and prints every violation.
func Validate(specPath string) error {
	path, spec, err := loadEnvironment(specPath)
	if err != nil {
		return err
	}

	if err := config.Validate(spec); err != nil {
		return reportValidation(path, err)
	}

	fmt.Println(style(okStyle, fmt.Sprintf("✓ %s is valid", path)))
	fmt.Println()
	printEnvironmentSummary(spec)
	return nil
}
