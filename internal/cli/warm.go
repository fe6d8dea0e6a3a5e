package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// warmCmd represents the warm command
var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Prefetch the full corpus into the local cache",
	Long: `Warm loads every mandala concurrently and writes the results into
the session cache, so later commands start from local data.`,
	Args: cobra.NoArgs,
	RunE: runWarm,
}

func init() {
	rootCmd.AddCommand(warmCmd)
}

func runWarm(cmd *cobra.Command, args []string) error {
	a := newApp()
	defer a.close()

	if !a.cfg.Cache.Enabled {
		fmt.Fprintln(os.Stderr, "Cache is disabled; warming only the current process.")
	}

	verses := a.loadCorpus(context.Background())
	if len(verses) == 0 {
		fmt.Fprintln(os.Stderr, "No verse data available.")
		return nil
	}

	fmt.Printf("Cached %d verses across %d mandalas.\n", len(verses), a.cfg.Data.Mandalas)
	return nil
}
