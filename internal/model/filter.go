package model

import "sort"

// Filter is a structured verse filter. Zero-valued fields are
// inactive; the zero Filter matches every verse. Mandala and Sukta use
// 0 as the unset marker since valid values start at 1.
//
// Query is the free-text dimension. Matches deliberately ignores it:
// free text is evaluated by the search index and composed with the
// structural dimensions by the caller (AND semantics).
type Filter struct {
	Mandala int    `json:"mandala,omitempty"`
	Sukta   int    `json:"sukta,omitempty"`
	Deity   string `json:"deity,omitempty"`
	Rishi   string `json:"rishi,omitempty"`
	Meter   string `json:"meter,omitempty"`
	Theme   string `json:"theme,omitempty"`
	Query   string `json:"search,omitempty"`
}

// IsZero reports whether no filter dimension is active.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Matches reports whether the verse satisfies every active structural
// dimension. Exact, case-sensitive comparison against the stored
// values; a verse with an absent field never matches an active filter
// on that field.
func (f Filter) Matches(v *Verse) bool {
	if f.Mandala != 0 && v.Mandala != f.Mandala {
		return false
	}
	if f.Sukta != 0 && v.Sukta != f.Sukta {
		return false
	}
	if f.Deity != "" && v.PrimaryDeity() != f.Deity {
		return false
	}
	if f.Rishi != "" && v.RishiName() != f.Rishi {
		return false
	}
	if f.Meter != "" && v.MeterName() != f.Meter {
		return false
	}
	if f.Theme != "" && !v.HasTheme(f.Theme) {
		return false
	}
	return true
}

// Apply returns the verses matching the structural dimensions,
// preserving input order.
func (f Filter) Apply(verses []Verse) []Verse {
	if f.structurallyZero() {
		return verses
	}
	var out []Verse
	for i := range verses {
		if f.Matches(&verses[i]) {
			out = append(out, verses[i])
		}
	}
	return out
}

func (f Filter) structurallyZero() bool {
	f.Query = ""
	return f.IsZero()
}

// FilterOptions lists the distinct present values for each filterable
// field across a corpus, sorted ascending. Empty values are excluded,
// so UIs never offer an "unknown" choice.
type FilterOptions struct {
	Mandalas []int    `json:"mandalas"`
	Suktas   []int    `json:"suktas"`
	Deities  []string `json:"deities"`
	Rishis   []string `json:"rishis"`
	Meters   []string `json:"meters"`
	Themes   []string `json:"themes"`
}

// CollectFilterOptions derives the option lists from the loaded corpus.
func CollectFilterOptions(verses []Verse) FilterOptions {
	mandalas := map[int]struct{}{}
	suktas := map[int]struct{}{}
	deities := map[string]struct{}{}
	rishis := map[string]struct{}{}
	meters := map[string]struct{}{}
	themes := map[string]struct{}{}

	for i := range verses {
		v := &verses[i]
		if v.Mandala != 0 {
			mandalas[v.Mandala] = struct{}{}
		}
		if v.Sukta != 0 {
			suktas[v.Sukta] = struct{}{}
		}
		if d := v.PrimaryDeity(); d != "" {
			deities[d] = struct{}{}
		}
		if r := v.RishiName(); r != "" {
			rishis[r] = struct{}{}
		}
		if m := v.MeterName(); m != "" {
			meters[m] = struct{}{}
		}
		for _, t := range v.Themes {
			if t != "" {
				themes[t] = struct{}{}
			}
		}
	}

	return FilterOptions{
		Mandalas: sortedInts(mandalas),
		Suktas:   sortedInts(suktas),
		Deities:  sortedStrings(deities),
		Rishis:   sortedStrings(rishis),
		Meters:   sortedStrings(meters),
		Themes:   sortedStrings(themes),
	}
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
