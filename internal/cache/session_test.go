package cache

import (
	"testing"
	"time"
)

func TestSessionCache_RoundTrip(t *testing.T) {
	c := NewSessionCache(t.TempDir(), time.Hour)

	if _, found := c.Get("collection_1"); found {
		t.Fatal("Expected miss on empty cache")
	}

	if err := c.Set("collection_1", []byte(`[{"id":"RV.1.1.1"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get("collection_1")
	if !found {
		t.Fatal("Expected hit after Set")
	}
	if string(val) != `[{"id":"RV.1.1.1"}]` {
		t.Errorf("Unexpected value: %s", val)
	}
}

func TestSessionCache_Expiry(t *testing.T) {
	c := NewSessionCache(t.TempDir(), -time.Second)

	if err := c.Set("collection_1", []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get("collection_1"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestSessionCache_DeleteAndClear(t *testing.T) {
	c := NewSessionCache(t.TempDir(), time.Hour)

	_ = c.Set("collection_1", []byte(`[]`))
	_ = c.Set("collection_2", []byte(`[]`))

	if err := c.Delete("collection_1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("collection_1"); found {
		t.Error("Deleted key still present")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("collection_2"); found {
		t.Error("Cleared key still present")
	}
}

func TestCollectionKey(t *testing.T) {
	if got := CollectionKey(7); got != "collection_7" {
		t.Errorf("CollectionKey(7) = %q", got)
	}
	if got := CollectionKey(10); got != "collection_10" {
		t.Errorf("CollectionKey(10) = %q", got)
	}
}
