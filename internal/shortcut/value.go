package shortcut

import "slices"

// Value is a shortcut: a canonically ordered set of modifier keys plus at
// most one main key. A Value is immutable; the With* methods return copies.
// The zero Value is Empty.
type Value struct {
	modifiers []ModifierKey
	mainKey   string
	hasMain   bool
}

// Empty returns the value with neither modifiers nor a main key.
func Empty() Value {
	return Value{}
}

// NewValue builds a value from modifiers and a main key. Duplicate modifiers
// are collapsed and the result is canonically ordered. An empty mainKey
// means no main key.
func NewValue(mainKey string, mods ...ModifierKey) Value {
	v := Value{}
	for _, m := range mods {
		v = v.WithModifier(m)
	}
	if mainKey != "" {
		v = v.WithMainKey(mainKey)
	}
	return v
}

// Modifiers returns the modifier keys in canonical order.
func (v Value) Modifiers() []ModifierKey {
	return slices.Clone(v.modifiers)
}

// MainKey returns the main key and whether one is set.
func (v Value) MainKey() (string, bool) {
	return v.mainKey, v.hasMain
}

// IsEmpty reports whether the value has neither modifiers nor a main key.
func (v Value) IsEmpty() bool {
	return !v.hasMain && len(v.modifiers) == 0
}

// IsValid reports whether the value can be committed: a main key and at
// least one modifier.
func (v Value) IsValid() bool {
	return v.hasMain && len(v.modifiers) > 0
}

// WithModifier returns a copy with m added. Adding a modifier that is
// already present returns an equal value.
func (v Value) WithModifier(m ModifierKey) Value {
	if slices.Contains(v.modifiers, m) {
		return v
	}
	mods := append(slices.Clone(v.modifiers), m)
	return Value{
		modifiers: SortModifiers(mods),
		mainKey:   v.mainKey,
		hasMain:   v.hasMain,
	}
}

// WithMainKey returns a copy whose main key is key, replacing any previous
// main key.
func (v Value) WithMainKey(key string) Value {
	return Value{
		modifiers: slices.Clone(v.modifiers),
		mainKey:   key,
		hasMain:   true,
	}
}

// Keys returns the raw key names, modifiers first, then the main key.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.modifiers)+1)
	for _, m := range v.modifiers {
		keys = append(keys, string(m))
	}
	if v.hasMain {
		keys = append(keys, v.mainKey)
	}
	return keys
}

// Equal reports whether two values hold the same keys.
func (v Value) Equal(other Value) bool {
	return v.hasMain == other.hasMain &&
		v.mainKey == other.mainKey &&
		slices.Equal(v.modifiers, other.modifiers)
}

// String returns the canonical string form.
func (v Value) String() string {
	return Serialize(v)
}
