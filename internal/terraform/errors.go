package terraform

import "fmt"

// RenderError is returned when the renderer fails to produce an artifact.
type RenderError struct {
	Kind  ArtifactKind
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s: %v", e.Kind, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
