package tags

// Standard tag keys applied through the provider default_tags block.
const (
	// KeyEnvironment identifies which environment a resource belongs to.
	KeyEnvironment = "Environment"

	// KeyManagedBy identifies the tool that manages the resource lifecycle.
	KeyManagedBy = "ManagedBy"

	// KeyGeneratedBy records the generator of the Terraform project.
	KeyGeneratedBy = "GeneratedBy"
)

// Tag values
const (
	ManagedByTerraform = "terraform"
	GeneratedBy        = "tfscaffold"
)

// Builder provides a fluent interface for building resource tags.
type Builder struct {
	tags map[string]string
}

// NewBuilder creates a builder with the environment and ownership tags pre-set.
func NewBuilder(environment string) *Builder {
	return &Builder{
		tags: map[string]string{
			KeyEnvironment: environment,
			KeyManagedBy:   ManagedByTerraform,
			KeyGeneratedBy: GeneratedBy,
		},
	}
}

// With sets a single tag.
func (b *Builder) With(key, value string) *Builder {
	b.tags[key] = value
	return b
}

// Merge adds all tags from the provided map, overriding existing keys.
func (b *Builder) Merge(extra map[string]string) *Builder {
	for k, v := range extra {
		b.tags[k] = v
	}
	return b
}

// Build returns a copy of the tags map.
func (b *Builder) Build() map[string]string {
	result := make(map[string]string, len(b.tags))
	for k, v := range b.tags {
		result[k] = v
	}
	return result
}

// Copy returns a non-nil copy of m.
func Copy(m map[string]string) map[string]string {
	result := make(map[string]string, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
