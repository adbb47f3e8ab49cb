package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mscript/internal/tui/explorer"
)

func newExploreCmd(a *app) *cobra.Command {
	var historySize int

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Start the interactive explorer",
		Long: `Opens a terminal UI that parses each entered line and shows its syntax
tree or token table.

Keys:
  enter   parse the line
  tab     switch between tree and tokens
  ↑/↓     history
  esc     quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return explorer.Run(explorer.Config{
				Engine:      a.engine,
				Catalogue:   a.catalogue,
				Styled:      !a.plain,
				HistorySize: historySize,
			})
		},
	}
	cmd.Flags().IntVar(&historySize, "history", explorer.DefaultHistorySize, "number of remembered lines")
	return cmd
}
