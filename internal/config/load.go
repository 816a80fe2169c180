package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// DefaultSpecFilename is the environment file looked up when no path is given.
const DefaultSpecFilename = "environment.yaml"

// LoadSpec reads an environment file (YAML or JSON) without validating it.
// Validation is left to the caller so that every violation can be reported.
func LoadSpec(path string) (*EnvironmentSpec, error) {
	// #nosec G304 -- path is chosen by the CLI user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file: %w", err)
	}

	return ParseSpec(data)
}

// ParseSpec parses YAML or JSON data into an EnvironmentSpec.
func ParseSpec(data []byte) (*EnvironmentSpec, error) {
	var spec EnvironmentSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse environment spec: %w", err)
	}
	return &spec, nil
}

// WriteSpecYAML writes the specification to path as YAML, preceded by
// header when it is not empty. Missing parent directories are created.
func WriteSpecYAML(spec *EnvironmentSpec, path, header string) error {
	body, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to marshal environment spec: %w", err)
	}
	data := append([]byte(header), body...)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// The file may hold a database password.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write environment file: %w", err)
	}
	return nil
}

// ResolveSpecPath returns path, or the default environment file in the
// working directory when path is empty.
func ResolveSpecPath(path string) string {
	if path != "" {
		return path
	}
	return DefaultSpecFilename
}
