// cmd/curio/main.go
//
// Entry point for the curio TUI. Running `curio` from any directory
// creates a .curio/ folder there (config, demo snapshots, logs, custom
// demos) and opens the demo cabinet.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/curioterm/curio/internal/config"
	"github.com/curioterm/curio/internal/tui"
)

func main() {
	if handleValidateDemoCommand() {
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitCurioDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .curio directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting curio: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
