package cache

import "fmt"

// Cache is the storage interface the corpus store consults below its
// in-process memory layer. Values are raw JSON-encoded verse arrays.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error
}

// CollectionKey returns the cache key for a mandala's verse array:
// "collection_{n}".
func CollectionKey(mandala int) string {
	return fmt.Sprintf("collection_%d", mandala)
}
