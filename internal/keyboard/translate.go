package keyboard

import (
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/keycap/internal/capture"
	"github.com/renato0307/keycap/internal/shortcut"
)

// Stroke is one synthetic key transition.
type Stroke struct {
	Down  bool
	Event capture.KeyEvent
}

// terminal prefixes as produced by tea.Key.String
var modifierPrefixes = []struct {
	prefix string
	key    shortcut.ModifierKey
}{
	{"ctrl+", shortcut.Control},
	{"alt+", shortcut.Alt},
	{"shift+", shortcut.Shift},
}

// terminal key names mapped to key values and physical codes
var namedKeys = map[string]capture.KeyEvent{
	"enter":     {Key: "Enter", Code: "Enter"},
	"tab":       {Key: "Tab", Code: "Tab"},
	"esc":       {Key: "Escape", Code: "Escape"},
	"backspace": {Key: "Backspace", Code: "Backspace"},
	"delete":    {Key: "Delete", Code: "Delete"},
	"insert":    {Key: "Insert", Code: "Insert"},
	"up":        {Key: "ArrowUp", Code: "ArrowUp"},
	"down":      {Key: "ArrowDown", Code: "ArrowDown"},
	"left":      {Key: "ArrowLeft", Code: "ArrowLeft"},
	"right":     {Key: "ArrowRight", Code: "ArrowRight"},
	"home":      {Key: "Home", Code: "Home"},
	"end":       {Key: "End", Code: "End"},
	"pgup":      {Key: "PageUp", Code: "PageUp"},
	"pgdown":    {Key: "PageDown", Code: "PageDown"},
	" ":         {Key: " ", Code: "Space"},
	"space":     {Key: " ", Code: "Space"},
}

// Strokes turns a terminal key message into the down/up sequence a physical
// keyboard would have produced: modifiers down, key down, key up, modifiers
// up. Terminals report no modifier-only presses and no releases, so every
// message is a complete combination. Paste and unknown messages yield nil.
func Strokes(msg tea.KeyMsg) []Stroke {
	if msg.Paste {
		return nil
	}

	name := msg.String()
	var mods []shortcut.ModifierKey
	for {
		stripped := false
		for _, p := range modifierPrefixes {
			// the remaining key itself may be "+", as in "ctrl++"
			if len(name) > len(p.prefix) && strings.HasPrefix(name, p.prefix) {
				name = name[len(p.prefix):]
				mods = append(mods, p.key)
				stripped = true
			}
		}
		if !stripped {
			break
		}
	}

	ev, ok := keyEvent(name)
	if !ok {
		return nil
	}
	if r, _ := utf8.DecodeRuneInString(ev.Key); utf8.RuneCountInString(ev.Key) == 1 && unicode.IsUpper(r) {
		mods = append(mods, shortcut.Shift)
	}
	mods = shortcut.SortModifiers(dedupe(mods))

	strokes := make([]Stroke, 0, 2*len(mods)+2)
	for _, m := range mods {
		strokes = append(strokes, Stroke{Down: true, Event: modifierEvent(m)})
	}
	strokes = append(strokes, Stroke{Down: true, Event: ev}, Stroke{Down: false, Event: ev})
	for i := len(mods) - 1; i >= 0; i-- {
		strokes = append(strokes, Stroke{Down: false, Event: modifierEvent(mods[i])})
	}
	return strokes
}

// Replay feeds strokes into m.
func Replay(m *capture.Machine, strokes []Stroke) {
	for _, s := range strokes {
		if s.Down {
			m.KeyDown(s.Event)
		} else {
			m.KeyUp(s.Event)
		}
	}
}

func keyEvent(name string) (capture.KeyEvent, bool) {
	if ev, ok := namedKeys[name]; ok {
		return ev, true
	}
	if len(name) > 1 && (name[0] == 'f' || name[0] == 'F') && isDigits(name[1:]) {
		upper := strings.ToUpper(name)
		return capture.KeyEvent{Key: upper, Code: upper}, true
	}
	if utf8.RuneCountInString(name) != 1 {
		return capture.KeyEvent{}, false
	}

	r, _ := utf8.DecodeRuneInString(name)
	ev := capture.KeyEvent{Key: name}
	if r < unicode.MaxASCII && unicode.IsLetter(r) {
		ev.Code = "Key" + string(unicode.ToUpper(r))
	} else if r >= '0' && r <= '9' {
		ev.Code = "Digit" + name
	}
	return ev, true
}

func modifierEvent(m shortcut.ModifierKey) capture.KeyEvent {
	code := string(m) + "Left"
	if m == shortcut.CapsLock {
		code = string(m)
	}
	return capture.KeyEvent{Key: string(m), Code: code}
}

func dedupe(mods []shortcut.ModifierKey) []shortcut.ModifierKey {
	out := mods[:0]
	seen := make(map[shortcut.ModifierKey]bool, len(mods))
	for _, m := range mods {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
