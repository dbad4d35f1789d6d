//go:build !nogui

package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/renato0307/keycap/internal/capture"
	"github.com/renato0307/keycap/internal/shortcut"
)

// fyne modifier key names
var modifierKeys = map[fyne.KeyName]capture.KeyEvent{
	desktop.KeyControlLeft:  {Key: string(shortcut.Control), Code: "ControlLeft"},
	desktop.KeyControlRight: {Key: string(shortcut.Control), Code: "ControlRight"},
	desktop.KeyAltLeft:      {Key: string(shortcut.Alt), Code: "AltLeft"},
	desktop.KeyAltRight:     {Key: string(shortcut.Alt), Code: "AltRight"},
	desktop.KeyShiftLeft:    {Key: string(shortcut.Shift), Code: "ShiftLeft"},
	desktop.KeyShiftRight:   {Key: string(shortcut.Shift), Code: "ShiftRight"},
	desktop.KeySuperLeft:    {Key: string(shortcut.Meta), Code: "MetaLeft"},
	desktop.KeySuperRight:   {Key: string(shortcut.Meta), Code: "MetaRight"},
	desktop.KeyCapsLock:     {Key: string(shortcut.CapsLock), Code: "CapsLock"},
}

// fyne names that differ from the key values stored in shortcuts
var namedKeys = map[fyne.KeyName]capture.KeyEvent{
	fyne.KeySpace:     {Key: " ", Code: "Space"},
	fyne.KeyReturn:    {Key: "Enter", Code: "Enter"},
	fyne.KeyEnter:     {Key: "Enter", Code: "NumpadEnter"},
	fyne.KeyEscape:    {Key: "Escape", Code: "Escape"},
	fyne.KeyBackspace: {Key: "Backspace", Code: "Backspace"},
	fyne.KeyUp:        {Key: "ArrowUp", Code: "ArrowUp"},
	fyne.KeyDown:      {Key: "ArrowDown", Code: "ArrowDown"},
	fyne.KeyLeft:      {Key: "ArrowLeft", Code: "ArrowLeft"},
	fyne.KeyRight:     {Key: "ArrowRight", Code: "ArrowRight"},
	fyne.KeyPageUp:    {Key: "PageUp", Code: "PageUp"},
	fyne.KeyPageDown:  {Key: "PageDown", Code: "PageDown"},
}

// keyEvent converts a fyne key event into the form the capture machine
// expects. Letters keep their physical position in Code.
func keyEvent(ev *fyne.KeyEvent) capture.KeyEvent {
	if mapped, ok := modifierKeys[ev.Name]; ok {
		return mapped
	}
	if mapped, ok := namedKeys[ev.Name]; ok {
		return mapped
	}

	name := string(ev.Name)
	if len(name) == 1 {
		switch c := name[0]; {
		case c >= 'A' && c <= 'Z':
			return capture.KeyEvent{Key: strings.ToLower(name), Code: "Key" + name}
		case c >= '0' && c <= '9':
			return capture.KeyEvent{Key: name, Code: "Digit" + name}
		}
	}
	return capture.KeyEvent{Key: name, Code: name}
}
