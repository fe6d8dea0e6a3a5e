// Package userdata manages durable user-owned state: bookmarks,
// recent search queries, and the theme preference. Everything is
// best-effort key-value storage; when the backing directory is
// unusable, operations degrade to in-memory behavior for the session
// instead of failing.
package userdata

import (
	"os"
	"path/filepath"
)

// Store is a one-file-per-key JSON store.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created
// lazily on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Get retrieves the raw value for a key.
func (s *Store) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set writes the raw value for a key.
func (s *Store) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), value, 0644)
}

// Delete removes a key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
