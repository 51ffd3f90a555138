package main

import (
	"fmt"
	"os"

	"github.com/curioterm/curio/internal/schema"
)

// handleValidateDemoCommand checks a custom demo definition without
// starting the TUI: `curio validate-demo .curio/demos/recipes.yaml`.
func handleValidateDemoCommand() bool {
	if len(os.Args) < 2 || os.Args[1] != "validate-demo" {
		return false
	}
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: curio validate-demo /path/to/demo.yaml")
		os.Exit(2)
	}
	file, err := schema.LoadDefinitionFile(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}
	def := file.Definition
	fmt.Printf("OK: %s (%s) · %d field(s), %d view(s)\n", def.ID, def.Title, len(def.Fields), len(def.Views))
	os.Exit(0)
	return true
}
