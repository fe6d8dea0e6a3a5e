package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veda-tools/samhita/internal/model"
	"github.com/veda-tools/samhita/internal/search"
	"github.com/veda-tools/samhita/internal/userdata"
)

var (
	searchMandala int
	searchSukta   int
	searchDeity   string
	searchRishi   string
	searchMeter   string
	searchTheme   string
	searchLimit   int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search verses by text, deity, rishi, meter, or theme",
	Long: `Search runs a fuzzy query over the verse corpus: Sanskrit text,
IAST transliteration, translations, deity, rishi, meter, themes,
keywords, and contextual notes. Near-miss spellings still match.

Structural filters compose with the query (AND semantics):

  samhita search agni
  samhita search "morning light" --mandala 1 --meter Gayatri
  samhita search indra --theme victory --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchMandala, "mandala", 0, "restrict to one mandala (1-10)")
	searchCmd.Flags().IntVar(&searchSukta, "sukta", 0, "restrict to one sukta")
	searchCmd.Flags().StringVar(&searchDeity, "deity", "", "exact primary deity")
	searchCmd.Flags().StringVar(&searchRishi, "rishi", "", "exact rishi name")
	searchCmd.Flags().StringVar(&searchMeter, "meter", "", "exact meter")
	searchCmd.Flags().StringVar(&searchTheme, "theme", "", "required theme tag")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum results (0 = all)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a := newApp()
	defer a.close()

	query := strings.Join(args, " ")

	verses := a.loadCorpus(context.Background())
	if len(verses) == 0 {
		fmt.Fprintln(os.Stderr, "No verse data available.")
		return nil
	}

	index := search.Build(verses, a.cfg.Search.Threshold)
	results := index.Query(query)

	// Structural filter narrows the ranked result set; ranking order
	// is preserved.
	filter := model.Filter{
		Mandala: searchMandala,
		Sukta:   searchSukta,
		Deity:   searchDeity,
		Rishi:   searchRishi,
		Meter:   searchMeter,
		Theme:   searchTheme,
	}
	results = filter.Apply(results)

	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	history := userdata.LoadHistory(a.state, a.cfg.Search.HistorySize)
	history.Record(query)

	if a.cfg.Output.JSON {
		return renderJSON(os.Stdout, results)
	}

	if len(results) == 0 {
		fmt.Printf("No verses match %q.\n", query)
		return nil
	}
	for i := range results {
		renderVerseLine(os.Stdout, &results[i])
	}
	return nil
}
