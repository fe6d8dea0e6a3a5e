package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/veda-tools/samhita/internal/corpus"
	"github.com/veda-tools/samhita/internal/model"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <mandala> [sukta [verse]]",
	Short: "Show a mandala, sukta, or single verse",
	Long: `Show navigates the corpus hierarchy. With one argument it lists the
suktas of a mandala; with two it lists the verses of a sukta; with
three it prints one verse in full.

  samhita show 1
  samhita show 1 1
  samhita show 1 1 1`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runShow,
}

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the verse of the day",
	Long: `Today prints the featured verse for the current date. The selection
is deterministic per day and rotates through the corpus.`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(todayCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	nums := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid reference component %q", arg)
		}
		nums[i] = n
	}

	a := newApp()
	defer a.close()

	mandala := nums[0]
	if mandala > a.cfg.Data.Mandalas {
		return fmt.Errorf("mandala %d out of range (corpus has %d)", mandala, a.cfg.Data.Mandalas)
	}

	// Only the addressed mandala is loaded; the rest of the corpus
	// stays cold.
	verses := a.store.LoadCollection(context.Background(), mandala)
	if len(verses) == 0 {
		fmt.Fprintf(os.Stderr, "No data available for mandala %d.\n", mandala)
		return nil
	}

	switch len(nums) {
	case 1:
		return showMandala(a, verses, mandala)
	case 2:
		return showSukta(a, verses, mandala, nums[1])
	default:
		return showVerse(a, verses, mandala, nums[1], nums[2])
	}
}

func showMandala(a *app, verses []model.Verse, mandala int) error {
	counts := map[int]int{}
	for i := range verses {
		counts[verses[i].Sukta]++
	}
	options := model.CollectFilterOptions(verses)

	if a.cfg.Output.JSON {
		return renderJSON(os.Stdout, map[string]interface{}{
			"mandala": mandala,
			"suktas":  options.Suktas,
			"verses":  len(verses),
		})
	}

	fmt.Printf("Mandala %d: %d suktas, %d verses\n", mandala, len(options.Suktas), len(verses))
	for _, s := range options.Suktas {
		fmt.Printf("  %d.%d (%d verses)\n", mandala, s, counts[s])
	}
	return nil
}

func showSukta(a *app, verses []model.Verse, mandala, sukta int) error {
	filter := model.Filter{Mandala: mandala, Sukta: sukta}
	selected := filter.Apply(verses)
	if len(selected) == 0 {
		fmt.Fprintf(os.Stderr, "No data available for sukta %d.%d.\n", mandala, sukta)
		return nil
	}

	if a.cfg.Output.JSON {
		return renderJSON(os.Stdout, selected)
	}

	fmt.Printf("Sukta %d.%d — Rishi: %s\n\n", mandala, sukta, orUnknown(selected[0].RishiName()))
	for i := range selected {
		renderVerseLine(os.Stdout, &selected[i])
	}
	return nil
}

func showVerse(a *app, verses []model.Verse, mandala, sukta, number int) error {
	for i := range verses {
		v := &verses[i]
		if v.Mandala == mandala && v.Sukta == sukta && v.Number == number {
			if a.cfg.Output.JSON {
				return renderJSON(os.Stdout, v)
			}
			renderVerse(os.Stdout, v)
			return nil
		}
	}
	fmt.Fprintf(os.Stderr, "No data available for verse %d.%d.%d.\n", mandala, sukta, number)
	return nil
}

func runToday(cmd *cobra.Command, args []string) error {
	a := newApp()
	defer a.close()

	verses := a.loadCorpus(context.Background())
	featured := corpus.VerseOfTheDay(verses, time.Now())
	if featured == nil {
		fmt.Fprintln(os.Stderr, "No daily verse available.")
		return nil
	}

	if a.cfg.Output.JSON {
		return renderJSON(os.Stdout, featured)
	}
	renderVerse(os.Stdout, featured)
	return nil
}
