package userdata

import (
	"reflect"
	"testing"
)

func TestBookmarks_AddRemove(t *testing.T) {
	store := NewStore(t.TempDir())
	bookmarks := LoadBookmarks(store)

	bookmarks.Add("RV.1.1.1")
	bookmarks.Add("RV.1.32.1")
	bookmarks.Add("RV.1.1.1") // duplicate add is a no-op

	if got := bookmarks.List(); !reflect.DeepEqual(got, []string{"RV.1.1.1", "RV.1.32.1"}) {
		t.Fatalf("List = %v", got)
	}

	bookmarks.Remove("RV.1.1.1")
	if bookmarks.Contains("RV.1.1.1") {
		t.Error("Removed id still present")
	}
	if !bookmarks.Contains("RV.1.32.1") {
		t.Error("Unrelated id lost on remove")
	}
}

func TestBookmarks_DoubleToggleRestoresState(t *testing.T) {
	store := NewStore(t.TempDir())
	bookmarks := LoadBookmarks(store)
	bookmarks.Add("RV.1.1.1")

	for _, id := range []string{"RV.1.1.1", "RV.10.129.1"} {
		before := bookmarks.Contains(id)
		bookmarks.Toggle(id)
		if bookmarks.Contains(id) == before {
			t.Errorf("%s: first toggle did not flip state", id)
		}
		bookmarks.Toggle(id)
		if bookmarks.Contains(id) != before {
			t.Errorf("%s: double toggle did not restore state", id)
		}
	}
}

func TestBookmarks_PersistAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	bookmarks := LoadBookmarks(NewStore(dir))
	bookmarks.Add("RV.1.1.1")
	bookmarks.Toggle("RV.1.32.1")

	reloaded := LoadBookmarks(NewStore(dir))
	if got := reloaded.List(); !reflect.DeepEqual(got, []string{"RV.1.1.1", "RV.1.32.1"}) {
		t.Fatalf("Reloaded list = %v", got)
	}
}

func TestBookmarks_UnusableDirDegradesToMemory(t *testing.T) {
	// A store pointed at an unwritable location must still work for
	// the life of the process.
	store := NewStore("/dev/null/notadir")
	bookmarks := LoadBookmarks(store)

	bookmarks.Add("RV.1.1.1")
	if !bookmarks.Contains("RV.1.1.1") {
		t.Error("In-memory bookmark lost when storage is unavailable")
	}
	bookmarks.Toggle("RV.1.1.1")
	if bookmarks.Contains("RV.1.1.1") {
		t.Error("Toggle failed when storage is unavailable")
	}
}
