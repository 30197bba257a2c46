package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/registry"
)

var renderersCmd = &cobra.Command{
	Use:   "renderers",
	Short: "List all available renderers",
	Long:  `Shows the renderers that can be picked with --renderer.`,
	Args:  cobra.NoArgs,
	Run:   runRenderers,
}

func runRenderers(cmd *cobra.Command, args []string) {
	renderers := registry.List()

	if len(renderers) == 0 {
		fmt.Println("No renderers available.")
		return
	}

	fmt.Println("Available renderers:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, r := range renderers {
		maxNameLen = max(maxNameLen, len(r.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, r := range renderers {
		fmt.Printf("  %-*s  %s\n", maxNameLen, r.Name, r.Description)
	}

	fmt.Println()
	fmt.Println("Run 't2048 --renderer <name>' to use one.")
}
