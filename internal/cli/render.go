package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/veda-tools/samhita/internal/model"
)

// orUnknown applies the presentation-layer default for absent
// metadata. The data model keeps absence as absence; only output
// renders it as "Unknown".
func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// renderVerse prints the full card for one verse.
func renderVerse(w io.Writer, v *model.Verse) {
	fmt.Fprintf(w, "Rigveda %s (%s)\n", v.Ref(), v.ID)
	if v.Text.Sanskrit != "" {
		fmt.Fprintf(w, "  %s\n", v.Text.Sanskrit)
	}
	if v.Text.IAST != "" {
		fmt.Fprintf(w, "  %s\n", v.Text.IAST)
	}
	if tr := v.DefaultTranslation(); tr != nil {
		fmt.Fprintf(w, "\n  %s\n", tr.Text)
		if tr.Translator != "" {
			if tr.Year > 0 {
				fmt.Fprintf(w, "  — %s (%d)\n", tr.Translator, tr.Year)
			} else {
				fmt.Fprintf(w, "  — %s\n", tr.Translator)
			}
		}
	}
	fmt.Fprintf(w, "\n  Deity: %s  Rishi: %s  Meter: %s\n",
		orUnknown(v.PrimaryDeity()), orUnknown(v.RishiName()), orUnknown(v.MeterName()))
	if len(v.Themes) > 0 {
		fmt.Fprintf(w, "  Themes: %s\n", strings.Join(v.Themes, ", "))
	}
	if v.Context != nil && v.Context.Significance != "" {
		fmt.Fprintf(w, "  Note: %s\n", v.Context.Significance)
	}
}

// renderVerseLine prints a one-line summary for list output.
func renderVerseLine(w io.Writer, v *model.Verse) {
	summary := ""
	if tr := v.DefaultTranslation(); tr != nil {
		summary = tr.Text
	} else if v.Text.IAST != "" {
		summary = v.Text.IAST
	}
	const maxSummary = 72
	if r := []rune(summary); len(r) > maxSummary {
		summary = string(r[:maxSummary-1]) + "…"
	}
	fmt.Fprintf(w, "%-10s %-14s %s\n", v.Ref(), orUnknown(v.PrimaryDeity()), summary)
}

// renderJSON prints any value as indented JSON.
func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
