// Package render renders Terraform artifacts from embedded text/template
// files.
//
// Every [terraform.ArtifactKind] has a template named after its file
// (vpc.tf.tmpl for the network artifact). Templates are parsed once by
// [New] with missingkey=error and are safe for concurrent rendering.
package render
