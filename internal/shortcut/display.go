package shortcut

import (
	"strings"
	"unicode/utf8"
)

// DisplayName returns the label shown on a keycap for a raw key name.
// It only affects rendering; Parse and Serialize never use it.
func DisplayName(key string) string {
	switch {
	case key == " ":
		return "Space"
	case key == string(Control):
		return "Ctrl"
	case utf8.RuneCountInString(key) == 1:
		return strings.ToUpper(key)
	default:
		return key
	}
}

// DisplayKeys returns the keycap labels of v, modifiers first.
func DisplayKeys(v Value) []string {
	keys := v.Keys()
	for i, k := range keys {
		keys[i] = DisplayName(k)
	}
	return keys
}
