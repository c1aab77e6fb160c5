package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fpsdemo/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available backends",
	Long:  `Shows a list of all backends the demo can run on.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Println()
	fmt.Println("Run 'fpsdemo run --backend <name>' to use one.")
	fmt.Println("Run 'fpsdemo serve' to offer the terminal backend over SSH.")
}
