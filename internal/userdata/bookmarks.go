package userdata

import "encoding/json"

const bookmarksKey = "bookmarks"

// Bookmarks is the user's set of saved verse ids. Ids reference verses
// by their stable string id; no verse data is embedded. Insertion
// order is preserved for display.
type Bookmarks struct {
	store *Store
	ids   []string
}

// LoadBookmarks reads the persisted bookmark list. An unreadable or
// unparseable entry yields an empty set.
func LoadBookmarks(store *Store) *Bookmarks {
	b := &Bookmarks{store: store}
	if raw, ok := store.Get(bookmarksKey); ok {
		var ids []string
		if err := json.Unmarshal(raw, &ids); err == nil {
			b.ids = ids
		}
	}
	return b
}

// Contains reports whether the verse id is bookmarked.
func (b *Bookmarks) Contains(id string) bool {
	for _, v := range b.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Add bookmarks a verse id. Adding an existing id is a no-op.
func (b *Bookmarks) Add(id string) {
	if b.Contains(id) {
		return
	}
	b.ids = append(b.ids, id)
	b.save()
}

// Remove deletes a verse id from the set.
func (b *Bookmarks) Remove(id string) {
	next := b.ids[:0]
	for _, v := range b.ids {
		if v != id {
			next = append(next, v)
		}
	}
	b.ids = next
	b.save()
}

// Toggle flips membership. Two toggles restore the original state.
func (b *Bookmarks) Toggle(id string) {
	if b.Contains(id) {
		b.Remove(id)
	} else {
		b.Add(id)
	}
}

// List returns the bookmarked ids in insertion order.
func (b *Bookmarks) List() []string {
	out := make([]string, len(b.ids))
	copy(out, b.ids)
	return out
}

func (b *Bookmarks) save() {
	raw, err := json.Marshal(b.ids)
	if err != nil {
		return
	}
	// Best effort: storage may be unavailable.
	_ = b.store.Set(bookmarksKey, raw)
}
