package userdata

import "encoding/json"

const historyKey = "search_history"

// DefaultHistorySize caps the recent-query list.
const DefaultHistorySize = 5

// History is the most-recent-first list of search queries, capped and
// de-duplicated by most recent occurrence.
type History struct {
	store   *Store
	queries []string
	max     int
}

// LoadHistory reads the persisted history. max <= 0 falls back to
// DefaultHistorySize.
func LoadHistory(store *Store, max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	h := &History{store: store, max: max}
	if raw, ok := store.Get(historyKey); ok {
		var queries []string
		if err := json.Unmarshal(raw, &queries); err == nil {
			if len(queries) > max {
				queries = queries[:max]
			}
			h.queries = queries
		}
	}
	return h
}

// Record adds a query to the front, dropping any earlier occurrence
// and trimming to the cap. Empty queries are ignored.
func (h *History) Record(query string) {
	if query == "" {
		return
	}
	next := make([]string, 0, len(h.queries)+1)
	next = append(next, query)
	for _, q := range h.queries {
		if q != query {
			next = append(next, q)
		}
	}
	if len(next) > h.max {
		next = next[:h.max]
	}
	h.queries = next
	h.save()
}

// List returns the queries, most recent first.
func (h *History) List() []string {
	out := make([]string, len(h.queries))
	copy(out, h.queries)
	return out
}

// Clear empties the history.
func (h *History) Clear() {
	h.queries = nil
	_ = h.store.Delete(historyKey)
}

func (h *History) save() {
	raw, err := json.Marshal(h.queries)
	if err != nil {
		return
	}
	_ = h.store.Set(historyKey, raw)
}
