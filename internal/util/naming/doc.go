// Package naming provides consistent naming functions for generated AWS resources.
//
// Resource names follow the pattern {environment}-{type}, so every resource
// of an environment shares its prefix and names are stable across renders.
package naming
