package shortcut

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ModifierKey is a key that combines with, but never stands alone as, the
// key that triggers a shortcut.
type ModifierKey string

const (
	Control  ModifierKey = "Control"
	Alt      ModifierKey = "Alt"
	Shift    ModifierKey = "Shift"
	CapsLock ModifierKey = "CapsLock"
	Meta     ModifierKey = "Meta"
)

// canonicalOrder is the serialization order of modifiers. It does not change
// when a caller restricts the allow-list.
var canonicalOrder = []ModifierKey{Control, Alt, Shift, CapsLock, Meta}

// ErrUnknownModifier is returned when a modifier name is not one of the
// supported modifier keys.
var ErrUnknownModifier = errors.New("unknown modifier key")

// DefaultModifiers returns the supported modifier keys in canonical order.
func DefaultModifiers() []ModifierKey {
	return slices.Clone(canonicalOrder)
}

// rank returns the canonical position of m, or -1 for unknown keys.
func (m ModifierKey) rank() int {
	return slices.Index(canonicalOrder, m)
}

// CompareModifiers orders two modifier keys by canonical position.
func CompareModifiers(a, b ModifierKey) int {
	return a.rank() - b.rank()
}

// SortModifiers returns a canonically ordered copy of mods.
func SortModifiers(mods []ModifierKey) []ModifierKey {
	sorted := slices.Clone(mods)
	slices.SortStableFunc(sorted, CompareModifiers)
	return sorted
}

// ModifierSet is the allow-list of keys recognized as modifiers.
// The zero value recognizes every supported modifier.
type ModifierSet struct {
	keys []ModifierKey
}

// AllModifiers returns a set recognizing every supported modifier.
func AllModifiers() ModifierSet {
	return ModifierSet{keys: DefaultModifiers()}
}

// NewModifierSet builds an allow-list from the given keys. Keys outside the
// supported set make it fail with ErrUnknownModifier. An empty argument list
// yields the default set.
func NewModifierSet(keys ...ModifierKey) (ModifierSet, error) {
	if len(keys) == 0 {
		return AllModifiers(), nil
	}

	set := make([]ModifierKey, 0, len(keys))
	for _, k := range keys {
		if k.rank() < 0 {
			return ModifierSet{}, fmt.Errorf("%w: %q", ErrUnknownModifier, string(k))
		}
		if !slices.Contains(set, k) {
			set = append(set, k)
		}
	}
	return ModifierSet{keys: SortModifiers(set)}, nil
}

// ParseModifierSet builds an allow-list from names such as "Control" or
// "shift". Matching is case-insensitive.
func ParseModifierSet(names []string) (ModifierSet, error) {
	keys := make([]ModifierKey, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key, ok := lookupModifier(name)
		if !ok {
			return ModifierSet{}, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
		}
		keys = append(keys, key)
	}
	return NewModifierSet(keys...)
}

func lookupModifier(name string) (ModifierKey, bool) {
	for _, m := range canonicalOrder {
		if strings.EqualFold(string(m), name) {
			return m, true
		}
	}
	return "", false
}

// Keys returns the allowed modifiers in canonical order.
func (s ModifierSet) Keys() []ModifierKey {
	if s.keys == nil {
		return DefaultModifiers()
	}
	return slices.Clone(s.keys)
}

// Contains reports whether key is recognized as a modifier by this set.
// The comparison is exact: "control" is not a modifier.
func (s ModifierSet) Contains(key string) bool {
	if s.keys == nil {
		return ModifierKey(key).rank() >= 0
	}
	return slices.Contains(s.keys, ModifierKey(key))
}

// String renders the set the way it appears in configuration.
func (s ModifierSet) String() string {
	keys := s.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ",")
}
