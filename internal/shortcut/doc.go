// Package shortcut holds the shortcut value type and its canonical string
// codec.
//
// A shortcut is one main key plus at least one modifier key, written as
// modifiers in canonical order followed by the main key, joined by "+":
//
//	Control+Shift+A
//	Alt+Space
//	Control+Plus
//
// The space and "+" main keys are written as "Space" and "Plus" so they never
// collide with the separator.
package shortcut
