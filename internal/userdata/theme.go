package userdata

const themeKey = "theme"

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// LoadTheme reads the persisted theme, defaulting to light when the
// entry is missing or not a known value.
func LoadTheme(store *Store) Theme {
	raw, ok := store.Get(themeKey)
	if !ok {
		return ThemeLight
	}
	switch Theme(string(raw)) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	default:
		return ThemeLight
	}
}

// SaveTheme persists the theme preference.
func SaveTheme(store *Store, theme Theme) {
	_ = store.Set(themeKey, []byte(theme))
}

// ToggleTheme flips between light and dark and persists the result.
func ToggleTheme(store *Store) Theme {
	next := ThemeDark
	if LoadTheme(store) == ThemeDark {
		next = ThemeLight
	}
	SaveTheme(store, next)
	return next
}
