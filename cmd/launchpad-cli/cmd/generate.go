package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"launchpad/internal/adapters/filesystem"
	"launchpad/internal/application/commands"
)

var skipUnchanged bool

var generateCmd = &cobra.Command{
	Use:   "generate <source> [output]",
	Short: "Scan a directory and write its launcher page",
	Long: `Scan a directory tree for HTML pages and write index.html with one
card per page.

With one argument the launcher is written into the scanned directory
and cards link to the pages directly. With two arguments the launcher
is written into the output directory and card links are prefixed with
the source directory's path relative to it.

Examples:
  launchpad-cli generate ./site
  launchpad-cli generate apps .`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		source := args[0]
		output := source
		if len(args) == 2 {
			output = args[1]
		}

		repo := filesystem.NewRepository(source, output)
		history := openHistory(repo.OutputDir())
		if history != nil {
			defer history.Close()
		}

		gen := commands.NewGenerateCommand(repo, history)
		gen.SkipUnchanged = skipUnchanged

		result, err := gen.Execute(ctx)
		if err != nil {
			return err
		}

		if result.HistoryErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record run: %v\n", result.HistoryErr)
		}

		if result.Skipped {
			fmt.Printf("Unchanged: %s (%s)\n", result.OutputPath, pageCount(result.Count))
			return nil
		}
		fmt.Printf("Generated %s with %s\n", result.OutputPath, pageCount(result.Count))
		return nil
	},
}

func pageCount(n int) string {
	if n == 1 {
		return "1 page"
	}
	return fmt.Sprintf("%d pages", n)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVar(&skipUnchanged, "skip-unchanged", false, "skip the write when the page matches the previous run")
}
