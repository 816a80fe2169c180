// Package config defines the environment specification accepted by
// tfscaffold and the rules it must satisfy before rendering.
//
// [EnvironmentSpec] is decoded from HTTP request bodies and from YAML or JSON
// environment files. [Validate] collects every violation into a
// [ValidationError] instead of stopping at the first one. [Partition] splits
// the environment network into equal subnets using the same arithmetic as
// Terraform's cidrsubnet function.
package config
