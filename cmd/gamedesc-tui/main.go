package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mydehq/gamedesc/internal/config"
	"github.com/mydehq/gamedesc/internal/platform"
	"github.com/mydehq/gamedesc/internal/tui"
)

func main() {
	path := "."
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Find(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	for label, name := range cfg.Names {
		platform.Register(label, name)
	}
	platforms, err := config.Select(cfg, nil)
	if err != nil {
		fmt.Printf("Error finding platforms: %v\n", err)
		os.Exit(1)
	}

	m := tui.NewModel(cfg.ResolvePath(cfg.Root), platforms, platform.Name, cfg.ResolvePath(cfg.Report))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
