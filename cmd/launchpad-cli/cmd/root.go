package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"launchpad/internal/adapters/sqlite"
	"launchpad/internal/ports"
)

var noHistory bool

var rootCmd = &cobra.Command{
	Use:   "launchpad-cli",
	Short: "CLI for generating launcher pages",
	Long: `launchpad-cli scans a directory tree for HTML pages and generates a
styled launcher page (index.html) with one card per discovered file.

It provides commands to generate the launcher, preview the card list
without writing, and inspect past generation runs.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record generation runs")
}

// openHistory returns the run history for an output directory, or nil
// when history is disabled or the database cannot be opened. A broken
// history never blocks generation.
func openHistory(outputDir string) ports.RunHistory {
	if noHistory {
		return nil
	}
	h := sqlite.NewHistory(outputDir)
	if err := h.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: run history unavailable: %v\n", err)
		return nil
	}
	return h
}
