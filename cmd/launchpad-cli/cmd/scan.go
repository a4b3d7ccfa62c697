package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"launchpad/internal/adapters/filesystem"
	"launchpad/internal/application/commands"
)

var scanCmd = &cobra.Command{
	Use:   "scan <source> [output]",
	Short: "List the cards the launcher would contain, without writing",
	Long: `Scan a directory tree and print the cards the launcher page would
contain, one per line, in page order. Nothing is written.

Examples:
  launchpad-cli scan ./site
  launchpad-cli scan apps .`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		source := args[0]
		output := source
		if len(args) == 2 {
			output = args[1]
		}

		repo := filesystem.NewRepository(source, output)
		cards, err := commands.NewScanCommand(repo).Execute(ctx)
		if err != nil {
			return err
		}

		for _, c := range cards {
			fmt.Printf("%s  %s  %s\n", c.Icon, c.DisplayName, c.Href)
		}
		fmt.Println(pageCount(len(cards)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
