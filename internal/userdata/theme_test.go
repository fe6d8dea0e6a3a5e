package userdata

import "testing"

func TestTheme_DefaultAndPersistence(t *testing.T) {
	store := NewStore(t.TempDir())

	if got := LoadTheme(store); got != ThemeLight {
		t.Errorf("Default theme = %v, want light", got)
	}

	SaveTheme(store, ThemeDark)
	if got := LoadTheme(store); got != ThemeDark {
		t.Errorf("Theme = %v, want dark", got)
	}
}

func TestTheme_Toggle(t *testing.T) {
	store := NewStore(t.TempDir())

	if got := ToggleTheme(store); got != ThemeDark {
		t.Errorf("First toggle = %v, want dark", got)
	}
	if got := ToggleTheme(store); got != ThemeLight {
		t.Errorf("Second toggle = %v, want light", got)
	}
}

func TestTheme_UnknownValueFallsBack(t *testing.T) {
	store := NewStore(t.TempDir())
	_ = store.Set("theme", []byte("sepia"))

	if got := LoadTheme(store); got != ThemeLight {
		t.Errorf("Unknown stored theme = %v, want light fallback", got)
	}
}
