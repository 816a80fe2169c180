// Package tags provides consistent tagging utilities for generated AWS resources.
//
// Every environment gets the same provider-level default tags so that
// resources created from the generated Terraform can be traced back to the
// environment and to tfscaffold.
package tags
