package corpus

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/veda-tools/samhita/internal/model"
	"github.com/veda-tools/samhita/internal/worker"
)

// Loader assembles the full corpus: it fetches every mandala through
// the Store concurrently and merges the results in mandala order, so
// the merged sequence is deterministic regardless of which fetch
// finishes first. Like the Store it never fails; an unreachable corpus
// is an empty slice.
type Loader struct {
	store     *Store
	fetcher   *Fetcher
	mandalas  int
	legacyURL string
	workers   int
	logger    *zap.Logger
}

// NewLoader creates a Loader over store. legacyURL is the combined
// single-file fallback tried when every mandala comes back empty; ""
// disables it.
func NewLoader(store *Store, fetcher *Fetcher, mandalas, workers int, legacyURL string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mandalas <= 0 {
		mandalas = 10
	}
	if workers <= 0 {
		workers = 4
	}
	return &Loader{
		store:     store,
		fetcher:   fetcher,
		mandalas:  mandalas,
		legacyURL: legacyURL,
		workers:   workers,
		logger:    logger,
	}
}

// collectionJob loads one mandala through the store.
type collectionJob struct {
	store   *Store
	mandala int
}

// collectionResult carries the mandala number so the merge step can
// restore request order.
type collectionResult struct {
	Mandala int
	Verses  []model.Verse
}

func (r *collectionResult) GetError() error { return nil }

func (j *collectionJob) Execute(ctx context.Context) worker.Result {
	return &collectionResult{
		Mandala: j.mandala,
		Verses:  j.store.LoadCollection(ctx, j.mandala),
	}
}

// LoadAll loads and merges every mandala. Mandalas that fail to load
// are already logged and resolved to empty by the Store; they simply
// contribute nothing to the merge.
func (l *Loader) LoadAll(ctx context.Context) []model.Verse {
	pool := worker.NewPool(l.workers)
	pool.Start()

	for n := 1; n <= l.mandalas; n++ {
		pool.Submit(&collectionJob{store: l.store, mandala: n})
	}

	byMandala := make([][]model.Verse, l.mandalas+1)
	for _, res := range pool.Wait() {
		cr, ok := res.(*collectionResult)
		if !ok || cr.Mandala < 1 || cr.Mandala > l.mandalas {
			continue
		}
		byMandala[cr.Mandala] = cr.Verses
	}

	var merged []model.Verse
	for n := 1; n <= l.mandalas; n++ {
		if len(byMandala[n]) == 0 {
			continue
		}
		merged = append(merged, byMandala[n]...)
	}

	if len(merged) > 0 {
		return merged
	}

	return l.loadLegacy(ctx)
}

// loadLegacy fetches the combined single-file corpus as a last resort.
func (l *Loader) loadLegacy(ctx context.Context) []model.Verse {
	if l.legacyURL == "" {
		return []model.Verse{}
	}

	l.logger.Info("per-mandala load empty, trying legacy corpus file",
		zap.String("url", l.legacyURL))

	body, err := l.fetcher.FetchWithRetry(ctx, l.legacyURL)
	if err != nil {
		l.logger.Warn("legacy corpus fetch failed", zap.Error(err))
		return []model.Verse{}
	}

	verses, err := decodeVerses(body)
	if err != nil {
		l.logger.Warn("legacy corpus payload unrecognized", zap.Error(err))
		return []model.Verse{}
	}
	if verses == nil {
		verses = []model.Verse{}
	}
	return verses
}

// LegacyURL builds the legacy combined-file URL from a base URL and
// file name.
func LegacyURL(baseURL, file string) string {
	if file == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(baseURL, "/"), file)
}
