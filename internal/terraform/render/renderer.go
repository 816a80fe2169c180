package render

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/imamik/tfscaffold/internal/terraform"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders artifacts from parsed templates.
type Renderer struct {
	templates *template.Template
}

var _ terraform.Renderer = (*Renderer)(nil)

// New parses the embedded templates.
func New() (*Renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	return NewFromFS(sub)
}

// NewFromFS parses every *.tmpl file at the root of fsys.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	t, err := template.New("").
		Option("missingkey=error").
		Funcs(funcMap()).
		ParseFS(fsys, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := &Renderer{templates: t}
	if err := r.Check(); err != nil {
		return nil, err
	}
	return r, nil
}

// Check verifies that a template exists for every artifact kind.
func (r *Renderer) Check() error {
	var missing []string
	for _, kind := range terraform.AllKinds() {
		if r.templates.Lookup(kind.TemplateName()) == nil {
			missing = append(missing, kind.TemplateName())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing templates: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Render executes the template of kind against model.
func (r *Renderer) Render(kind terraform.ArtifactKind, model *terraform.Model) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown artifact kind %q", kind)
	}
	if model == nil {
		return "", fmt.Errorf("nil model for %s", kind)
	}

	t := r.templates.Lookup(kind.TemplateName())
	if t == nil {
		return "", fmt.Errorf("template %s not found", kind.TemplateName())
	}

	var b strings.Builder
	if err := t.Execute(&b, model); err != nil {
		return "", fmt.Errorf("failed to execute %s: %w", kind.TemplateName(), err)
	}
	return b.String(), nil
}
