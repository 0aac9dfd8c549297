package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/game"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modules",
	Long: `Shows the modules of a game in the order the engine runs them:
entity sources, processors and post-processors by priority.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	gc, preset := loadGameConfig()

	session := game.New(game.Options{Config: gc, Preset: preset})
	defer session.Close()

	cfg := core.DefaultConfig()
	cfg.WorldW, cfg.WorldH = 0, 0
	cfg.Seed = 1
	session.Reset(cfg)

	modules := session.Modules()
	if len(modules) == 0 {
		fmt.Println("No modules installed.")
		return
	}

	fmt.Println("Game modules:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, m := range modules {
		if len(m.Name) > maxNameLen {
			maxNameLen = len(m.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-8s  %-6s  %-10s  %s\n", maxNameLen, "Name", "Priority", "Source", "Processors", "Post")
	fmt.Printf("  %-*s  %-8s  %-6s  %-10s  %s\n", maxNameLen, "----", "--------", "------", "----------", "----")

	for _, m := range modules {
		source := "-"
		if m.HasSource {
			source = "yes"
		}
		fmt.Printf("  %-*s  %-8d  %-6s  %-10d  %d\n", maxNameLen, m.Name, m.Priority, source, m.Processors, m.PostProcessors)
	}

	fmt.Println()
	fmt.Println("Run 'asteroids play' to play.")
}
