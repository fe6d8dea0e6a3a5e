package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/veda-tools/samhita/internal/model"
)

var filtersMatch string

// filtersCmd represents the filters command
var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the filterable field values present in the corpus",
	Long: `Filters lists the distinct deities, rishis, meters, and themes
present in the loaded corpus, i.e. the values accepted by the
exact-match flags of the search command.

With --match, the lists are narrowed by fuzzy subsequence lookup:

  samhita filters
  samhita filters --match agn`,
	Args: cobra.NoArgs,
	RunE: runFilters,
}

func init() {
	rootCmd.AddCommand(filtersCmd)

	filtersCmd.Flags().StringVar(&filtersMatch, "match", "", "narrow values by fuzzy lookup")
}

func runFilters(cmd *cobra.Command, args []string) error {
	a := newApp()
	defer a.close()

	verses := a.loadCorpus(context.Background())
	if len(verses) == 0 {
		fmt.Fprintln(os.Stderr, "No verse data available.")
		return nil
	}

	options := model.CollectFilterOptions(verses)
	if filtersMatch != "" {
		options.Deities = fuzzyNarrow(options.Deities, filtersMatch)
		options.Rishis = fuzzyNarrow(options.Rishis, filtersMatch)
		options.Meters = fuzzyNarrow(options.Meters, filtersMatch)
		options.Themes = fuzzyNarrow(options.Themes, filtersMatch)
	}

	if a.cfg.Output.JSON {
		return renderJSON(os.Stdout, options)
	}

	printIntList("Mandalas", options.Mandalas)
	printIntList("Suktas", options.Suktas)
	printStringList("Deities", options.Deities)
	printStringList("Rishis", options.Rishis)
	printStringList("Meters", options.Meters)
	printStringList("Themes", options.Themes)
	return nil
}

// fuzzyNarrow keeps the values matching the pattern as a subsequence,
// best matches first.
func fuzzyNarrow(values []string, pattern string) []string {
	matches := fuzzy.Find(pattern, values)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = values[m.Index]
	}
	return out
}

func printIntList(label string, values []int) {
	if len(values) == 0 {
		return
	}
	parts := make([]string, len(values))
	for i, n := range values {
		parts[i] = fmt.Sprintf("%d", n)
	}
	fmt.Printf("%s: %s\n", label, strings.Join(parts, ", "))
}

func printStringList(label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Printf("%s: %s\n", label, strings.Join(values, ", "))
}
