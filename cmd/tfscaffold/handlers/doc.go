// Package handlers contains the business logic for CLI commands.
//
// Each handler loads an environment file, runs it through the terraform
// generation pipeline and reports the outcome on stdout. Collaborators are
// held in package-level function variables so tests can replace them.
package handlers
