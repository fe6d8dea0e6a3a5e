package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/veda-tools/samhita/internal/cache"
	"github.com/veda-tools/samhita/internal/model"
)

// Store loads and memoizes per-mandala verse collections. The memory
// layer holds decoded records for the process lifetime; the session
// layer holds the raw JSON arrays across runs. Failures never surface
// to callers: a mandala that cannot be loaded resolves to an empty
// slice, cached like any other result, with the cause logged.
type Store struct {
	mem     *gocache.Cache // CollectionKey -> []model.Verse
	session cache.Cache    // nil disables the session layer
	fetcher *Fetcher
	baseURL string
	logger  *zap.Logger
}

// NewStore creates a Store fetching from baseURL. A memoryTTL of 0
// memoizes for the process lifetime. session may be nil when caching
// is disabled.
func NewStore(baseURL string, fetcher *Fetcher, session cache.Cache, memoryTTL time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := memoryTTL
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	return &Store{
		mem:     gocache.New(ttl, 10*time.Minute),
		session: session,
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// LoadCollection returns the verses of one mandala, consulting the
// memory layer, then the session cache, then the network. Concurrent
// first loads of the same mandala may fetch twice; both writes are
// idempotent, so no in-flight registry is kept.
func (s *Store) LoadCollection(ctx context.Context, mandala int) []model.Verse {
	key := cache.CollectionKey(mandala)

	if val, found := s.mem.Get(key); found {
		return val.([]model.Verse)
	}

	if s.session != nil {
		if raw, found := s.session.Get(key); found {
			var cached []model.Verse
			if err := json.Unmarshal(raw, &cached); err == nil {
				// Promote to the memory layer.
				s.mem.SetDefault(key, cached)
				return cached
			}
			s.logger.Warn("discarding unparseable session cache entry",
				zap.String("key", key))
			_ = s.session.Delete(key)
		}
	}

	verses := s.fetchCollection(ctx, mandala)
	s.mem.SetDefault(key, verses)
	s.writeSession(key, verses)
	return verses
}

// fetchCollection walks the candidate paths and decodes the first 2xx
// response. All-candidates-failed resolves to empty.
func (s *Store) fetchCollection(ctx context.Context, mandala int) []model.Verse {
	for _, url := range s.candidateURLs(mandala) {
		body, err := s.fetcher.FetchWithRetry(ctx, url)
		if err != nil {
			s.logger.Debug("candidate fetch failed",
				zap.String("url", url), zap.Error(err))
			continue
		}

		verses, err := decodeVerses(body)
		if err != nil {
			s.logger.Warn("unrecognized collection payload",
				zap.String("url", url), zap.Error(err))
			return []model.Verse{}
		}
		if verses == nil {
			verses = []model.Verse{}
		}
		return verses
	}

	s.logger.Warn("no candidate path served collection",
		zap.Int("mandala", mandala))
	return []model.Verse{}
}

// candidateURLs lists the filename conventions tolerated for a
// mandala file, most preferred first.
func (s *Store) candidateURLs(mandala int) []string {
	plain := fmt.Sprintf("%d", mandala)
	padded := fmt.Sprintf("%02d", mandala)
	return []string{
		fmt.Sprintf("%s/Mandala_%s.json", s.baseURL, plain),
		fmt.Sprintf("%s/Mandala_%s.json", s.baseURL, padded),
		fmt.Sprintf("%s/mandala_%s.json", s.baseURL, padded),
		fmt.Sprintf("%s/mandala_%s.json", s.baseURL, plain),
	}
}

func (s *Store) writeSession(key string, verses []model.Verse) {
	if s.session == nil {
		return
	}
	raw, err := json.Marshal(verses)
	if err != nil {
		return
	}
	if err := s.session.Set(key, raw); err != nil {
		// Best effort: storage may be unavailable.
		s.logger.Debug("session cache write failed",
			zap.String("key", key), zap.Error(err))
	}
}
