package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/tfscaffold/internal/config"
	"github.com/imamik/tfscaffold/internal/terraform"
	"github.com/imamik/tfscaffold/internal/terraform/render"
)

// Factory function variables shared by the handlers - can be replaced in tests.
var (
	// loadSpec reads an environment file.
	loadSpec = config.LoadSpec

	// newRenderer creates the template renderer.
	newRenderer = render.New
)

// errInvalidSpec is returned after the violations of an environment file
// have been printed.
var errInvalidSpec = errors.New("environment file is invalid")

// loadEnvironment resolves and reads the environment file.
func loadEnvironment(specPath string) (string, *config.EnvironmentSpec, error) {
	path := config.ResolveSpecPath(specPath)
	spec, err := loadSpec(path)
	if err != nil {
		return path, nil, err
	}
	return path, spec, nil
}

// reportValidation prints the violations carried by err, if any, and
// returns the error the command should fail with.
func reportValidation(path string, err error) error {
	var verr *config.ValidationError
	if errors.As(err, &verr) {
		printViolations(path, verr.Errors)
		return fmt.Errorf("%s: %w", path, errInvalidSpec)
	}
	return err
}

// renderProject generates the artifact set for spec.
func renderProject(ctx context.Context, spec *config.EnvironmentSpec, sequential bool, log logr.Logger) (*terraform.ArtifactSet, error) {
	renderer, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	opts := []terraform.Option{terraform.WithLogger(log)}
	if sequential {
		opts = append(opts, terraform.WithSequentialRendering())
	}
	return terraform.NewGenerator(renderer, opts...).Generate(ctx, spec)
}
