package capture

import "regexp"

// KeyEvent is a key-down or key-up event as delivered by the host.
//
// Key is the logical key value ("a", "A", "Control", " ", "F5"). Code is the
// physical key position ("KeyA", "ShiftLeft", "Digit1"); hosts that cannot
// report positions leave it empty. Repeat is set on key-down events
// generated by holding a key.
type KeyEvent struct {
	Key    string
	Code   string
	Repeat bool
}

var letterCode = regexp.MustCompile(`^Key([A-Z])$`)

// MainKey returns the key name to store when ev is used as a main key. Letter
// positions ("KeyA".."KeyZ") win over the logical key so single-letter
// shortcuts do not depend on the keyboard layout.
func MainKey(ev KeyEvent) string {
	if m := letterCode.FindStringSubmatch(ev.Code); m != nil {
		return m[1]
	}
	return ev.Key
}
