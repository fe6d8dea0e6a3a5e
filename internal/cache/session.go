package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SessionCache is the file-backed layer standing in for the original
// platform's session storage: entries survive process restarts but
// expire after the configured TTL.
type SessionCache struct {
	dir string
	ttl time.Duration
}

// NewSessionCache creates a session cache rooted at dir.
func NewSessionCache(dir string, ttl time.Duration) *SessionCache {
	return &SessionCache{
		dir: dir,
		ttl: ttl,
	}
}

type sessionEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a value, dropping it if expired.
func (c *SessionCache) Get(key string) ([]byte, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry sessionEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false
	}

	return entry.Data, true
}

// Set stores a value with the cache's TTL.
func (c *SessionCache) Set(key string, value []byte) error {
	entry := sessionEntry{
		Data:      value,
		ExpiresAt: time.Now().Add(c.ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// Delete removes a value.
func (c *SessionCache) Delete(key string) error {
	return os.Remove(c.path(key))
}

// Clear removes the whole cache directory.
func (c *SessionCache) Clear() error {
	return os.RemoveAll(c.dir)
}

func (c *SessionCache) path(key string) string {
	return filepath.Join(c.dir, key+".cache")
}
