// Package terraform turns a validated environment specification into the
// files of a Terraform project.
//
// [BuildModel] derives the template model (subnet plan, service flags,
// resource names and tags) from an [config.EnvironmentSpec]. A [Generator]
// validates the specification, builds the model once and asks its
// [Renderer] for every [ArtifactKind], collecting the results in an
// immutable [ArtifactSet]. Artifacts of disabled services are present in the
// set with empty content.
package terraform
