package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-sim/internal/games/breakout/levels"
	"github.com/vovakirdan/breakout-sim/internal/registry"
)

var flagLevelDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the built-in levels registered with the simulator.
With --dir, also lists the valid level files found under that directory.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLevelDir, "dir", "", "Directory of YAML level files to list as well")
}

func runList(cmd *cobra.Command, args []string) error {
	type row struct {
		id, title string
		blocks    int
	}

	var rows []row
	for _, l := range registry.List() {
		rows = append(rows, row{l.ID, l.Title, l.Blocks})
	}

	var files []row
	if flagLevelDir != "" {
		found, err := levels.LoadDir(flagLevelDir)
		if err != nil {
			return err
		}
		for _, l := range found {
			files = append(files, row{l.ID, l.Name, len(l.Blocks)})
		}
	}

	if len(rows)+len(files) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, r := range append(rows, files...) {
		maxIDLen = max(maxIDLen, len(r.id))
	}

	printTable := func(heading string, rs []row) {
		fmt.Println(heading)
		fmt.Println()
		fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "ID", "Blocks", "Title")
		fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "--", "------", "-----")
		for _, r := range rs {
			fmt.Printf("  %-*s  %6d  %s\n", maxIDLen, r.id, r.blocks, r.title)
		}
		fmt.Println()
	}

	printTable("Built-in levels:", rows)
	if len(files) > 0 {
		printTable(fmt.Sprintf("Levels in %s:", flagLevelDir), files)
	}

	fmt.Println("Run 'breakoutsim run <id>' to simulate a level.")
	return nil
}
