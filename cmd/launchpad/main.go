package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"launchpad/internal/adapters/filesystem"
	"launchpad/internal/adapters/tui"
	"launchpad/internal/config"
)

func main() {
	dir := config.SiteDir()
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	// Initialize adapters
	repo := filesystem.NewRepository(dir, dir)

	// Create and run TUI app
	app := tui.NewApp(repo)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
