package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vim-quest/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tutorial stages",
	Long:  `Shows the stages in the order they are played.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	stages := registry.List()

	if len(stages) == 0 {
		fmt.Println("No stages available.")
		return
	}

	fmt.Println("Stages:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range stages {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  #  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  -  %-*s  %s\n", maxIDLen, "--", "-----")

	for i, s := range stages {
		fmt.Printf("  %d  %-*s  %s\n", i, maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'vimquest play --start <#>' to begin at a stage.")
}
