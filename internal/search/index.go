// Package search implements the fuzzy verse index: a fixed field list
// per verse, a single shared looseness threshold, and relevance-ranked
// queries. The index is immutable; callers rebuild it whenever the
// verse list changes identity.
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/veda-tools/samhita/internal/model"
)

// DefaultThreshold is the shared match-looseness constant: the
// fraction of a token that may differ and still count as a match.
const DefaultThreshold = 0.4

// Index holds the searchable projection of a verse list.
type Index struct {
	verses    []model.Verse
	docs      [][]string
	threshold float64
}

// Build creates an index over verses. A non-positive threshold falls
// back to DefaultThreshold.
func Build(verses []model.Verse, threshold float64) *Index {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	docs := make([][]string, len(verses))
	for i := range verses {
		docs[i] = fieldValues(&verses[i])
	}
	return &Index{
		verses:    verses,
		docs:      docs,
		threshold: threshold,
	}
}

// fieldValues flattens the fixed field list for one verse. Multi-value
// fields (translations, themes, keywords) are unioned into a single
// searchable value rather than matched entry-by-entry.
func fieldValues(v *model.Verse) []string {
	fields := make([]string, 0, 10)
	add := func(s string) {
		if s != "" {
			fields = append(fields, strings.ToLower(s))
		}
	}

	add(v.Text.Sanskrit)
	add(v.Text.IAST)

	var translations []string
	for _, tr := range v.Text.Translations {
		if tr.Text != "" {
			translations = append(translations, tr.Text)
		}
	}
	add(strings.Join(translations, "\n"))

	add(v.PrimaryDeity())
	add(v.RishiName())
	add(v.MeterName())
	add(strings.Join(v.Themes, "\n"))
	if v.Keywords != nil {
		add(strings.Join(v.Keywords.Sanskrit, "\n"))
		add(strings.Join(v.Keywords.English, "\n"))
	}
	if v.Context != nil {
		add(v.Context.Significance)
	}
	return fields
}

// Query returns the verses matching the free-text query, ordered by
// descending relevance; ties keep corpus order. Empty and
// whitespace-only queries short-circuit to an empty result.
func (idx *Index) Query(query string) []model.Verse {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		verse model.Verse
		score float64
	}
	var hits []scored

	for i := range idx.verses {
		total := 0.0
		matched := true
		for _, term := range terms {
			s := idx.scoreTerm(i, term)
			if s == 0 {
				matched = false
				break
			}
			total += s
		}
		if !matched {
			continue
		}
		hits = append(hits, scored{
			verse: idx.verses[i],
			score: total / float64(len(terms)),
		})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].score > hits[b].score
	})

	out := make([]model.Verse, len(hits))
	for i, h := range hits {
		out[i] = h.verse
	}
	return out
}

// scoreTerm computes the best score of one query term across a
// verse's fields: 2 for whole-field equality, 1 for a substring hit,
// otherwise the best token similarity admitted by the threshold.
func (idx *Index) scoreTerm(doc int, term string) float64 {
	best := 0.0
	for _, field := range idx.docs[doc] {
		switch {
		case field == term:
			return 2
		case strings.Contains(field, term):
			if best < 1 {
				best = 1
			}
		default:
			if sim := idx.bestTokenSimilarity(field, term); sim > best {
				best = sim
			}
		}
	}
	return best
}

// bestTokenSimilarity scans a field's whitespace tokens for the
// closest edit-distance match. Similarity is 1 - distance/maxLen in
// runes; matches below 1-threshold are discarded.
func (idx *Index) bestTokenSimilarity(field, term string) float64 {
	floor := 1 - idx.threshold
	termLen := len([]rune(term))

	best := 0.0
	for _, token := range strings.Fields(field) {
		tokenLen := len([]rune(token))
		maxLen := termLen
		if tokenLen > maxLen {
			maxLen = tokenLen
		}
		if maxLen == 0 {
			continue
		}
		dist := levenshtein.ComputeDistance(term, token)
		sim := 1 - float64(dist)/float64(maxLen)
		if sim >= floor && sim > best {
			best = sim
		}
	}
	return best
}

// Len reports the number of indexed verses.
func (idx *Index) Len() int {
	return len(idx.verses)
}
