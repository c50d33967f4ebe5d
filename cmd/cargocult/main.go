// Package main is the entry point for the cargocult CLI application.
package main

import (
	"github.com/gizzahub/cargocult/cmd/cargocult/cmd"
)

// version is set during build time via ldflags.
var version = "dev"

func main() {
	cmd.Execute(version)
}
