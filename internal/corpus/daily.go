package corpus

import (
	"time"

	"github.com/veda-tools/samhita/internal/model"
)

// VerseOfTheDay picks the featured verse for the given day: the seed
// is the sum of the date's numeric components, reduced modulo the
// corpus size. Deterministic per day, stable across processes, and
// deliberately not a fairness-grade selection.
func VerseOfTheDay(verses []model.Verse, day time.Time) *model.Verse {
	if len(verses) == 0 {
		return nil
	}
	year, month, dom := day.Date()
	seed := year + int(month) + dom
	return &verses[seed%len(verses)]
}
