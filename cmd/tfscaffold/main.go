// Package main is the entry point for the tfscaffold CLI.
//
// tfscaffold turns a declarative environment description (name, region,
// network range and optional managed services) into a ready-to-apply
// Terraform project. It can run as an HTTP service or generate projects
// locally.
//
// Commands: serve, generate, validate, inspect, init.
//
// For detailed usage information, run:
//
//	tfscaffold --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/tfscaffold/cmd/tfscaffold/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
