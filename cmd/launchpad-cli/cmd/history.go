package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"launchpad/internal/adapters/filesystem"
	"launchpad/internal/adapters/sqlite"
	"launchpad/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [output]",
	Short: "Show recent generation runs for an output directory",
	Long: `Show the most recent generation runs recorded for an output
directory, newest first. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		output := "."
		if len(args) == 1 {
			output = args[0]
		}

		// Same path expansion the generator applies when recording
		repo := filesystem.NewRepository(output, output)

		history := sqlite.NewHistory(repo.OutputDir())
		if err := history.Open(); err != nil {
			return err
		}
		defer history.Close()

		runs, err := commands.NewListRunsCommand(history, historyLimit).Execute(ctx)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		for _, r := range runs {
			fmt.Printf("%s  %s  %s → %s  %s\n",
				r.GeneratedAt.Format("2006-01-02 15:04:05"),
				pageCount(r.EntryCount),
				r.SourceDir,
				r.OutputDir,
				shortDigest(r.Digest),
			)
		}
		return nil
	},
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", commands.DefaultRunLimit, "maximum number of runs to show")
}
