package search

import (
	"testing"

	"github.com/veda-tools/samhita/internal/model"
)

func fixtureVerses() []model.Verse {
	return []model.Verse{
		{
			ID:      "RV.1.1.1",
			Mandala: 1,
			Sukta:   1,
			Number:  1,
			Text: model.VerseText{
				Sanskrit: "अग्निमीळे पुरोहितं यज्ञस्य देवमृत्विजम्",
				IAST:     "agnim īḷe purohitaṃ yajñasya devam ṛtvijam",
				Translations: []model.Translation{
					{Language: "en", Translator: "Ralph T.H. Griffith", Text: "I praise Agni, the chosen Priest, God, minister of sacrifice"},
				},
			},
			Metadata: &model.VerseMetadata{
				Deity: &model.Deity{Primary: "Agni"},
				Rishi: &model.Rishi{Name: "Madhucchandas Vaishvamitra"},
				Meter: "Gayatri",
			},
			Themes:   []string{"fire", "ritual", "worship"},
			Keywords: &model.Keywords{Sanskrit: []string{"अग्नि", "यज्ञ"}, English: []string{"fire", "sacrifice"}},
			Context:  &model.VerseContext{Significance: "Opening verse of the Rigveda"},
		},
		{
			ID:      "RV.1.32.1",
			Mandala: 1,
			Sukta:   32,
			Number:  1,
			Text: model.VerseText{
				Sanskrit: "इन्द्रस्य नु वीर्याणि प्र वोचं",
				IAST:     "indrasya nu vīryāṇi pra vocaṃ",
				Translations: []model.Translation{
					{Language: "en", Translator: "Ralph T.H. Griffith", Text: "I will declare the manly deeds of Indra, the Thunder-wielder"},
				},
			},
			Metadata: &model.VerseMetadata{
				Deity: &model.Deity{Primary: "Indra"},
				Rishi: &model.Rishi{Name: "Hiranyastupa Angirasa"},
				Meter: "Tristubh",
			},
			Themes:   []string{"heroism", "victory", "thunder"},
			Keywords: &model.Keywords{Sanskrit: []string{"इन्द्र", "वज्र"}, English: []string{"thunder", "victory"}},
		},
		{
			ID:      "RV.10.129.1",
			Mandala: 10,
			Sukta:   129,
			Number:  1,
			Text: model.VerseText{
				Sanskrit: "नासदासीन्नो सदासीत्तदानीं",
				IAST:     "nāsad āsīn no sad āsīt tadānīṃ",
				Translations: []model.Translation{
					{Language: "en", Translator: "Ralph T.H. Griffith", Text: "Then was not non-existent nor existent: there was no realm of air"},
				},
			},
			Metadata: &model.VerseMetadata{
				Deity: &model.Deity{Primary: "Creation"},
				Rishi: &model.Rishi{Name: "Prajapati Parameshthin"},
				Meter: "Tristubh",
			},
			Themes: []string{"creation", "philosophy"},
		},
	}
}

func TestQuery_EmptyAndWhitespace(t *testing.T) {
	index := Build(fixtureVerses(), DefaultThreshold)

	if got := index.Query(""); len(got) != 0 {
		t.Errorf("Empty query returned %d results", len(got))
	}
	if got := index.Query("   "); len(got) != 0 {
		t.Errorf("Whitespace query returned %d results", len(got))
	}
}

func TestQuery_ExactDeityTopRanked(t *testing.T) {
	index := Build(fixtureVerses(), DefaultThreshold)

	results := index.Query("Agni")
	if len(results) == 0 {
		t.Fatal("Expected results for exact deity value")
	}
	if got := results[0].PrimaryDeity(); got != "Agni" {
		t.Errorf("Top result deity = %q, want Agni", got)
	}
}

func TestQuery_FuzzyToleratesMisspelling(t *testing.T) {
	index := Build(fixtureVerses(), DefaultThreshold)

	// Single substituted character still matches.
	results := index.Query("Agmi")
	if len(results) == 0 {
		t.Fatal("Expected fuzzy match for Agmi")
	}
	if got := results[0].PrimaryDeity(); got != "Agni" {
		t.Errorf("Top fuzzy result deity = %q, want Agni", got)
	}

	// Transposition within tolerance too.
	if results := index.Query("Indar"); len(results) == 0 {
		t.Error("Expected fuzzy match for Indar")
	}
}

func TestQuery_NoMatch(t *testing.T) {
	index := Build(fixtureVerses(), DefaultThreshold)

	if results := index.Query("zzzzqqqq"); len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestQuery_SearchesAllConfiguredFields(t *testing.T) {
	index := Build(fixtureVerses(), DefaultThreshold)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"iast", "purohitaṃ", "RV.1.1.1"},
		{"translation", "thunder-wielder", "RV.1.32.1"},
		{"rishi", "Hiranyastupa", "RV.1.32.1"},
		{"meter", "Gayatri", "RV.1.1.1"},
		{"theme", "philosophy", "RV.10.129.1"},
		{"english keyword", "sacrifice", "RV.1.1.1"},
		{"sanskrit keyword", "वज्र", "RV.1.32.1"},
		{"context", "opening", "RV.1.1.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := index.Query(tt.query)
			if len(results) == 0 {
				t.Fatalf("No results for %q", tt.query)
			}
			if results[0].ID != tt.want {
				t.Errorf("Top result = %s, want %s", results[0].ID, tt.want)
			}
		})
	}
}

func TestQuery_TiesKeepCorpusOrder(t *testing.T) {
	// Both verses carry the same meter; equal scores must preserve
	// corpus order.
	index := Build(fixtureVerses(), DefaultThreshold)

	results := index.Query("Tristubh")
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].ID != "RV.1.32.1" || results[1].ID != "RV.10.129.1" {
		t.Errorf("Tie order broken: %s, %s", results[0].ID, results[1].ID)
	}
}

func TestQuery_MultiTermAllMustMatch(t *testing.T) {
	index := Build(fixtureVerses(), DefaultThreshold)

	results := index.Query("Agni sacrifice")
	if len(results) != 1 || results[0].ID != "RV.1.1.1" {
		t.Fatalf("Expected only RV.1.1.1, got %d results", len(results))
	}

	if results := index.Query("Agni thunder"); len(results) != 0 {
		t.Errorf("Expected no verse to match both terms, got %d", len(results))
	}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	index := Build(nil, DefaultThreshold)
	if index.Len() != 0 {
		t.Errorf("Expected empty index, got %d", index.Len())
	}
	if results := index.Query("agni"); len(results) != 0 {
		t.Errorf("Empty index returned %d results", len(results))
	}
}
