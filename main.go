// Package main is the entry point for the spack CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The spack tool expands, inspects,
// and validates the spec lists of environment manifests.
package main

import "github.com/Jordan474/spack/cmd"

// main initializes and runs the spack CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles subcommands like scan, expand, constraints, and validate.
func main() {
	cmd.Execute()
}
