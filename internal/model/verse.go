package model

import "fmt"

// Verse is the atomic unit of the corpus: one verse of the Rigveda with
// its original text, transliteration, translations, and attribution
// metadata. Records are read-only; they are decoded from the static
// per-mandala JSON files and never written back.
type Verse struct {
	ID      string `json:"id"`
	Mandala int    `json:"mandala"`
	Sukta   int    `json:"sukta"`
	Number  int    `json:"verse"`

	Text     VerseText      `json:"text"`
	Metadata *VerseMetadata `json:"metadata,omitempty"`
	Themes   []string       `json:"themes,omitempty"`
	Keywords *Keywords      `json:"keywords,omitempty"`
	Context  *VerseContext  `json:"context,omitempty"`
}

// VerseText holds the textual representations of a verse. The
// translation order is display-significant: the first entry is the
// default shown to the user.
type VerseText struct {
	Sanskrit     string        `json:"sanskrit"`
	IAST         string        `json:"iast"`
	Translations []Translation `json:"translations,omitempty"`
}

// Translation is one rendering of a verse in a target language.
type Translation struct {
	Language   string `json:"language"`
	Translator string `json:"translator,omitempty"`
	Year       int    `json:"year,omitempty"`
	Text       string `json:"text"`
}

// VerseMetadata carries the attribution fields. All of them are
// optional in the source data; absence is represented as absence, not
// defaulted here. "Unknown" is a presentation decision.
type VerseMetadata struct {
	Deity *Deity `json:"deity,omitempty"`
	Rishi *Rishi `json:"rishi,omitempty"`
	Meter string `json:"meter,omitempty"`
}

// Deity names the primary deity a verse is addressed to, plus any
// secondary deities.
type Deity struct {
	Primary   string   `json:"primary,omitempty"`
	Secondary []string `json:"secondary,omitempty"`
}

// Rishi names the seer credited with the sukta.
type Rishi struct {
	Name  string `json:"name,omitempty"`
	Gotra string `json:"gotra,omitempty"`
}

// Keywords holds two parallel keyword lists, original script and
// English. Both are indexed for search.
type Keywords struct {
	Sanskrit []string `json:"sanskrit,omitempty"`
	English  []string `json:"english,omitempty"`
}

// VerseContext is an optional significance/notes pair.
type VerseContext struct {
	Significance string `json:"significance,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// Ref returns the canonical mandala.sukta.verse reference.
func (v *Verse) Ref() string {
	return fmt.Sprintf("%d.%d.%d", v.Mandala, v.Sukta, v.Number)
}

// PrimaryDeity returns the primary deity name, or "" when absent.
func (v *Verse) PrimaryDeity() string {
	if v.Metadata == nil || v.Metadata.Deity == nil {
		return ""
	}
	return v.Metadata.Deity.Primary
}

// RishiName returns the seer name, or "" when absent.
func (v *Verse) RishiName() string {
	if v.Metadata == nil || v.Metadata.Rishi == nil {
		return ""
	}
	return v.Metadata.Rishi.Name
}

// MeterName returns the meter classification, or "" when absent.
func (v *Verse) MeterName() string {
	if v.Metadata == nil {
		return ""
	}
	return v.Metadata.Meter
}

// DefaultTranslation returns the first (display-default) translation,
// or nil when the verse has none.
func (v *Verse) DefaultTranslation() *Translation {
	if len(v.Text.Translations) == 0 {
		return nil
	}
	return &v.Text.Translations[0]
}

// HasTheme reports whether the verse carries the given theme tag.
func (v *Verse) HasTheme(theme string) bool {
	for _, t := range v.Themes {
		if t == theme {
			return true
		}
	}
	return false
}
