// Package capture turns live key events into committed shortcut values.
//
// A Machine is driven by its host: every key-down, key-up and focus change is
// forwarded unchanged, and the machine decides when a combination is
// complete. Nothing is committed until all physically held keys are released.
// A Machine is not safe for concurrent use; hosts call it from their event
// loop.
package capture

import (
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/shortcut"
)

// Machine captures one shortcut.
type Machine struct {
	allowed  shortcut.ModifierSet
	onChange func(string)
	logger   *logging.Logger

	held      int
	candidate shortcut.Value
	committed shortcut.Value
	focused   bool
	err       error
}

// Option configures a Machine.
type Option func(*Machine)

// WithAllowedModifiers restricts which keys count as modifiers.
func WithAllowedModifiers(set shortcut.ModifierSet) Option {
	return func(m *Machine) {
		m.allowed = set
	}
}

// WithOnChange registers the callback fired once per commit, and once per
// external value that changes the committed one, with the canonical string
// of the new value. The Empty value is reported as "".
func WithOnChange(fn func(string)) Option {
	return func(m *Machine) {
		m.onChange = fn
	}
}

// WithLogger sets the logger used for commit, discard and parse events.
func WithLogger(l *logging.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates an idle machine with an empty value.
func New(opts ...Option) *Machine {
	m := &Machine{
		allowed: shortcut.AllModifiers(),
		logger:  logging.Get(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "capture")
	return m
}

// KeyDown handles a key press. Repeats are ignored. The first press after
// all keys were released starts a new candidate.
func (m *Machine) KeyDown(ev KeyEvent) {
	if ev.Repeat {
		return
	}

	if m.held == 0 {
		m.candidate = shortcut.Empty()
	}
	m.held++
	m.fold(ev)
}

// KeyUp handles a key release. Releasing the last held key ends the capture.
func (m *Machine) KeyUp(ev KeyEvent) {
	m.setHeld(m.held - 1)
}

// Focus marks the machine focused.
func (m *Machine) Focus() {
	m.focused = true
}

// Blur marks the machine unfocused and treats every held key as released.
func (m *Machine) Blur() {
	m.focused = false
	m.setHeld(0)
}

// SetValue replaces the committed value with raw, a canonical string coming
// from outside. A malformed string is recorded as Err and leaves the
// machine empty without firing the change callback. A valid string fires
// it once, and only when the committed value actually changes.
func (m *Machine) SetValue(raw string) {
	v, err := shortcut.Parse(raw, m.allowed)
	if err != nil {
		m.logger.Debug("external value rejected", "value", raw, "error", err)
		m.err = err
		m.setCommitted(shortcut.Empty())
		return
	}

	changed := !v.Equal(m.committed)
	m.err = nil
	m.setCommitted(v)
	m.candidate = v
	if changed {
		m.emit()
	}
}

// fold adds the key of ev to the candidate. Modifiers accumulate; any other
// key replaces the previous main key.
func (m *Machine) fold(ev KeyEvent) {
	if m.allowed.Contains(ev.Key) {
		m.candidate = m.candidate.WithModifier(shortcut.ModifierKey(ev.Key))
		return
	}
	if key := MainKey(ev); key != "" {
		m.candidate = m.candidate.WithMainKey(key)
	}
}

func (m *Machine) setHeld(n int) {
	if n < 0 {
		n = 0
	}
	wasCapturing := m.held > 0
	m.held = n
	if wasCapturing && m.held == 0 {
		m.release()
	}
}

// release runs when the last held key goes up.
func (m *Machine) release() {
	if !m.candidate.IsValid() {
		m.logger.Debug("capture discarded", "keys", m.candidate.Keys())
		m.candidate = shortcut.Empty()
		return
	}

	m.err = nil
	m.setCommitted(m.candidate)
	m.logger.Debug("capture committed", "value", shortcut.Serialize(m.committed))
	m.emit()
}

// emit reports the committed value to the change callback.
func (m *Machine) emit() {
	if m.onChange != nil {
		m.onChange(shortcut.Serialize(m.committed))
	}
}

func (m *Machine) setCommitted(v shortcut.Value) {
	m.committed = v
	if v.IsEmpty() {
		m.candidate = shortcut.Empty()
	}
}

// Value returns the committed value.
func (m *Machine) Value() shortcut.Value {
	return m.committed
}

// String returns the canonical string of the committed value.
func (m *Machine) String() string {
	return shortcut.Serialize(m.committed)
}

// Candidate returns the combination being assembled.
func (m *Machine) Candidate() shortcut.Value {
	return m.candidate
}

// Err returns the validation error of the last external value, if any.
func (m *Machine) Err() error {
	return m.err
}

// Focused reports whether the host has focus on this machine.
func (m *Machine) Focused() bool {
	return m.focused
}

// InProgress reports whether keys are currently held.
func (m *Machine) InProgress() bool {
	return m.held > 0
}

// Held returns the number of keys currently held.
func (m *Machine) Held() int {
	return m.held
}

// DisplayKeys returns the keycap labels to render: the committed value when
// it is not empty, otherwise the candidate. A nil result means the host
// should show its placeholder.
func (m *Machine) DisplayKeys() []string {
	v := m.committed
	if v.IsEmpty() {
		v = m.candidate
	}
	if v.IsEmpty() {
		return nil
	}
	return shortcut.DisplayKeys(v)
}
