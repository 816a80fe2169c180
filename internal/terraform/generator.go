package terraform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/tfscaffold/internal/config"
	"github.com/imamik/tfscaffold/internal/util/async"
)

// Renderer produces the content of one artifact from the template model.
// Implementations must not modify the model; the Generator calls Render
// concurrently for different kinds.
type Renderer interface {
	Render(kind ArtifactKind, model *Model) (string, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for generation progress.
func WithLogger(log logr.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithSequentialRendering renders artifacts one at a time in packaging order.
func WithSequentialRendering() Option {
	return func(g *Generator) {
		g.sequential = true
	}
}

// Generator validates environment specifications and renders their
// Terraform projects.
type Generator struct {
	renderer   Renderer
	log        logr.Logger
	sequential bool
}

// NewGenerator creates a Generator that renders with renderer.
func NewGenerator(renderer Renderer, opts ...Option) *Generator {
	g := &Generator{
		renderer: renderer,
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates spec and renders every artifact of its project.
//
// A *config.ValidationError is returned unchanged when spec is invalid. If
// the renderer fails, Generate returns a *RenderError for the earliest
// failing kind in packaging order and no artifacts.
func (g *Generator) Generate(ctx context.Context, spec *config.EnvironmentSpec) (*ArtifactSet, error) {
	if err := config.Validate(spec); err != nil {
		return nil, err
	}

	log := g.log.WithValues("environment", spec.Name)
	start := time.Now()
	log.Info("Generating Terraform project", "region", spec.Region)

	model, err := BuildModel(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to build template model: %w", err)
	}

	enabled := map[ArtifactKind]bool{
		KindObjectStorage:      model.S3Enabled,
		KindRelationalDatabase: model.RDSEnabled,
		KindContainerCluster:   model.ECSEnabled,
	}

	all := AllKinds()
	contents := make([]string, len(all))
	tasks := make([]async.Task, 0, len(all))
	for i, kind := range all {
		if on, conditional := enabled[kind]; conditional && !on {
			log.V(1).Info("Skipping disabled artifact", "kind", kind)
			continue
		}
		tasks = append(tasks, async.Task{
			Name: kind.String(),
			Func: func(_ context.Context) error {
				content, err := g.renderer.Render(kind, model)
				if err != nil {
					return &RenderError{Kind: kind, Cause: err}
				}
				contents[i] = content
				log.V(1).Info("Rendered artifact", "kind", kind, "bytes", len(content))
				return nil
			},
		})
	}

	run := async.RunParallel
	if g.sequential {
		run = async.RunSequential
	}
	if err := run(ctx, tasks); err != nil {
		var renderErr *RenderError
		if errors.As(err, &renderErr) {
			return nil, renderErr
		}
		return nil, err
	}

	byKind := make(map[ArtifactKind]string, len(all))
	for i, kind := range all {
		byKind[kind] = contents[i]
	}
	set, err := NewArtifactSet(spec.Name, byKind)
	if err != nil {
		return nil, err
	}

	log.Info("Generated Terraform project", "files", len(set.Files()), "duration", time.Since(start).String())
	return set, nil
}
