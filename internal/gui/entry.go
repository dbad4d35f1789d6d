//go:build !nogui

package gui

import (
	"errors"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/renato0307/keycap/internal/capture"
	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/shortcut"
)

var (
	_ fyne.Focusable  = (*ShortcutEntry)(nil)
	_ desktop.Keyable = (*ShortcutEntry)(nil)
	_ fyne.Tappable   = (*ShortcutEntry)(nil)
)

// ShortcutEntry is a desktop widget that records a shortcut. Unlike a
// terminal, the desktop driver reports real key releases, so the machine
// sees exactly what the user pressed.
type ShortcutEntry struct {
	widget.BaseWidget

	// OnChanged is called once per committed shortcut and whenever SetText
	// changes the value.
	OnChanged func(string)

	placeholder string
	label       *widget.Label

	// mu serializes machine calls from the event thread and config reloads
	mu      sync.Mutex
	machine *capture.Machine
	// keys currently down, to flag auto-repeat
	down map[fyne.KeyName]bool
}

// NewShortcutEntry creates an entry. opts are passed to the capture machine;
// any change callback among them is replaced by OnChanged.
func NewShortcutEntry(placeholder string, opts ...capture.Option) *ShortcutEntry {
	if placeholder == "" {
		placeholder = config.DefaultPlaceholder
	}
	e := &ShortcutEntry{
		placeholder: placeholder,
		label:       widget.NewLabel(placeholder),
		down:        make(map[fyne.KeyName]bool),
	}
	opts = append(opts, capture.WithOnChange(func(value string) {
		if e.OnChanged != nil {
			e.OnChanged(value)
		}
	}))
	e.machine = capture.New(opts...)
	e.ExtendBaseWidget(e)
	return e
}

// do runs fn with exclusive access to the machine, then redraws. OnChanged
// fires inside fn and must not call back into the entry.
func (e *ShortcutEntry) do(fn func(m *capture.Machine)) {
	e.mu.Lock()
	fn(e.machine)
	e.mu.Unlock()
	e.Refresh()
}

// SetText replaces the value from outside. OnChanged fires when a valid raw
// changes the value; an invalid one only sets Err.
func (e *ShortcutEntry) SetText(raw string) {
	e.do(func(m *capture.Machine) { m.SetValue(raw) })
}

// Text returns the canonical string of the committed value.
func (e *ShortcutEntry) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.machine.String()
}

// Err returns the validation error of the last external value.
func (e *ShortcutEntry) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.machine.Err()
}

// KeyDown implements desktop.Keyable.
func (e *ShortcutEntry) KeyDown(ev *fyne.KeyEvent) {
	e.do(func(m *capture.Machine) {
		mapped := keyEvent(ev)
		mapped.Repeat = e.down[ev.Name]
		e.down[ev.Name] = true
		m.KeyDown(mapped)
	})
}

// KeyUp implements desktop.Keyable.
func (e *ShortcutEntry) KeyUp(ev *fyne.KeyEvent) {
	e.do(func(m *capture.Machine) {
		delete(e.down, ev.Name)
		m.KeyUp(keyEvent(ev))
	})
}

// FocusGained implements fyne.Focusable.
func (e *ShortcutEntry) FocusGained() {
	e.do(func(m *capture.Machine) { m.Focus() })
}

// FocusLost implements fyne.Focusable. Keys still down count as released.
func (e *ShortcutEntry) FocusLost() {
	e.do(func(m *capture.Machine) {
		clear(e.down)
		m.Blur()
	})
}

// TypedRune implements fyne.Focusable.
func (e *ShortcutEntry) TypedRune(rune) {}

// TypedKey implements fyne.Focusable.
func (e *ShortcutEntry) TypedKey(*fyne.KeyEvent) {}

// Tapped focuses the entry.
func (e *ShortcutEntry) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(e); c != nil {
		c.Focus(e)
	}
}

// Refresh updates the label from the machine state.
func (e *ShortcutEntry) Refresh() {
	e.mu.Lock()
	text := e.displayText()
	focused := e.machine.Focused()
	e.mu.Unlock()

	e.label.TextStyle = fyne.TextStyle{Bold: focused}
	e.label.SetText(text)
	e.BaseWidget.Refresh()
}

// displayText is called with mu held.
func (e *ShortcutEntry) displayText() string {
	keys := e.machine.DisplayKeys()
	if len(keys) > 0 {
		return strings.Join(keys, " + ")
	}
	var verr shortcut.ValidationError
	if errors.As(e.machine.Err(), &verr) {
		return verr.Message()
	}
	return e.placeholder
}

// CreateRenderer implements fyne.Widget.
func (e *ShortcutEntry) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewPadded(e.label))
}
