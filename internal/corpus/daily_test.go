package corpus

import (
	"testing"
	"time"
)

func TestVerseOfTheDay_DeterministicPerDay(t *testing.T) {
	verses := sampleVerses(1, 7)
	day := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	first := VerseOfTheDay(verses, day)
	second := VerseOfTheDay(verses, day.Add(5*time.Hour))
	if first == nil || second == nil {
		t.Fatal("Expected a featured verse")
	}
	if first.ID != second.ID {
		t.Errorf("Same day picked different verses: %s vs %s", first.ID, second.ID)
	}

	// seed = 2026 + 8 + 28 = 2062; 2062 % 7 = 4
	if first.ID != verses[2062%7].ID {
		t.Errorf("Unexpected selection %s", first.ID)
	}
}

func TestVerseOfTheDay_EmptyCorpus(t *testing.T) {
	if v := VerseOfTheDay(nil, time.Now()); v != nil {
		t.Errorf("Expected nil for empty corpus, got %v", v)
	}
}
