// Package archive packages a generated Terraform project as a zip file.
//
// Entries follow [terraform.AllKinds] order and carry no timestamps, so
// packaging the same artifact set twice yields identical bytes.
package archive
