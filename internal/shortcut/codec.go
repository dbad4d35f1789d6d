package shortcut

import "strings"

// Separator joins keys in the canonical string form.
const Separator = "+"

// serializeKeys maps raw main keys that would collide with the grammar to
// reserved names. parseKeys is its inverse.
var (
	serializeKeys = map[string]string{
		" ": "Space",
		"+": "Plus",
	}
	parseKeys = map[string]string{
		"Space": " ",
		"Plus":  "+",
	}
)

// Parse decodes a canonical string such as "Control+Shift+A". Only keys in
// allowed count as modifiers; every other token is a main key candidate.
//
// An empty string yields the Empty value. Otherwise the first violated rule
// wins, checked in this order: no modifiers, duplicate modifiers, no main
// key, more than one main key. Input order does not matter; the result is
// canonically ordered.
func Parse(raw string, allowed ModifierSet) (Value, error) {
	if raw == "" {
		return Empty(), nil
	}

	var (
		modifiers []ModifierKey
		mainKeys  []string
	)
	for _, token := range strings.Split(strings.TrimSpace(raw), Separator) {
		if token == "" {
			continue
		}
		if allowed.Contains(token) {
			modifiers = append(modifiers, ModifierKey(token))
		} else {
			mainKeys = append(mainKeys, token)
		}
	}

	if len(modifiers) == 0 {
		return Value{}, NoModifierKeys
	}
	if hasDuplicates(modifiers) {
		return Value{}, DuplicateModifierKeys
	}
	if len(mainKeys) == 0 {
		return Value{}, NoMainKey
	}
	if len(mainKeys) > 1 {
		return Value{}, MoreThanOneMainKey
	}

	return Value{
		modifiers: SortModifiers(modifiers),
		mainKey:   unescapeKey(mainKeys[0]),
		hasMain:   true,
	}, nil
}

// ParseDefault parses raw recognizing every supported modifier.
func ParseDefault(raw string) (Value, error) {
	return Parse(raw, AllModifiers())
}

// Serialize encodes v in canonical form. Empty values encode as "".
func Serialize(v Value) string {
	if v.IsEmpty() {
		return ""
	}

	parts := make([]string, 0, len(v.modifiers)+1)
	for _, m := range v.modifiers {
		parts = append(parts, string(m))
	}
	if v.hasMain {
		parts = append(parts, escapeKey(v.mainKey))
	}
	return strings.Join(parts, Separator)
}

func hasDuplicates(mods []ModifierKey) bool {
	seen := make(map[ModifierKey]struct{}, len(mods))
	for _, m := range mods {
		if _, ok := seen[m]; ok {
			return true
		}
		seen[m] = struct{}{}
	}
	return false
}

func escapeKey(key string) string {
	if name, ok := serializeKeys[key]; ok {
		return name
	}
	return key
}

func unescapeKey(token string) string {
	if key, ok := parseKeys[token]; ok {
		return key
	}
	return token
}
