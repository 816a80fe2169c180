package handlers

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/imamik/tfscaffold/internal/config"
	"github.com/imamik/tfscaffold/internal/terraform"
)

// Inspect prints the template model derived from an environment file.
// The database password is masked.
func Inspect(specPath string, jsonOutput bool) error {
	path, spec, err := loadEnvironment(specPath)
	if err != nil {
		return err
	}

	if err := config.Validate(spec); err != nil {
		return reportValidation(path, err)
	}

	model, err := terraform.BuildModel(spec)
	if err != nil {
		return fmt.Errorf("failed to build template model: %w", err)
	}

	out, err := marshalModel(model.Redacted(), jsonOutput)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func marshalModel(model *terraform.Model, jsonOutput bool) ([]byte, error) {
	if jsonOutput {
		out, err := json.MarshalIndent(model, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal model: %w", err)
		}
		return append(out, '\n'), nil
	}

	out, err := yaml.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model: %w", err)
	}
	return out, nil
}
