package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veda-tools/samhita/internal/userdata"
)

var historyClear bool

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent search queries",
	Long: `History lists your most recent search queries, newest first.

  samhita history
  samhita history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "clear the search history")
}

func runHistory(cmd *cobra.Command, args []string) error {
	a := newApp()
	defer a.close()

	history := userdata.LoadHistory(a.state, a.cfg.Search.HistorySize)

	if historyClear {
		history.Clear()
		fmt.Println("Search history cleared.")
		return nil
	}

	queries := history.List()
	if a.cfg.Output.JSON {
		if queries == nil {
			queries = []string{}
		}
		return renderJSON(os.Stdout, queries)
	}
	if len(queries) == 0 {
		fmt.Println("No recent searches.")
		return nil
	}
	for _, q := range queries {
		fmt.Println(q)
	}
	return nil
}
