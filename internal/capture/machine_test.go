package capture

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/shortcut"
)

var (
	ctrl  = KeyEvent{Key: "Control", Code: "ControlLeft"}
	shift = KeyEvent{Key: "Shift", Code: "ShiftLeft"}
	alt   = KeyEvent{Key: "Alt", Code: "AltLeft"}
	keyA  = KeyEvent{Key: "a", Code: "KeyA"}
	keyB  = KeyEvent{Key: "b", Code: "KeyB"}
)

// recorder collects OnChange emissions
type recorder struct {
	values []string
}

func (r *recorder) onChange(v string) {
	r.values = append(r.values, v)
}

func newTestMachine(t *testing.T, opts ...Option) (*Machine, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{WithOnChange(rec.onChange), WithLogger(logging.Nop())}, opts...)
	return New(opts...), rec
}

func press(m *Machine, events ...KeyEvent) {
	for _, ev := range events {
		m.KeyDown(ev)
	}
}

func release(m *Machine, events ...KeyEvent) {
	for _, ev := range events {
		m.KeyUp(ev)
	}
}

func TestMachine_CommitOnFullRelease(t *testing.T) {
	releaseOrders := map[string][]KeyEvent{
		"reverse":          {keyA, shift, ctrl},
		"same as press":    {ctrl, shift, keyA},
		"modifiers middle": {shift, keyA, ctrl},
	}

	for name, order := range releaseOrders {
		t.Run(name, func(t *testing.T) {
			m, rec := newTestMachine(t)

			press(m, ctrl, shift, keyA)
			assert.True(t, m.InProgress())
			assert.Equal(t, 3, m.Held())

			release(m, order[:2]...)
			assert.Empty(t, rec.values, "must not commit before every key is released")

			release(m, order[2])
			assert.False(t, m.InProgress())
			assert.Equal(t, []string{"Control+Shift+A"}, rec.values)
			assert.Equal(t, "Control+Shift+A", m.String())
			assert.Equal(t, []string{"Ctrl", "Shift", "A"}, m.DisplayKeys())
		})
	}
}

func TestMachine_PressOrderDoesNotMatter(t *testing.T) {
	m, rec := newTestMachine(t)

	press(m, keyA, shift, ctrl)
	release(m, keyA, shift, ctrl)

	assert.Equal(t, []string{"Control+Shift+A"}, rec.values)
}

func TestMachine_DiscardModifierOnly(t *testing.T) {
	m, rec := newTestMachine(t)

	press(m, ctrl)
	assert.Equal(t, []string{"Ctrl"}, m.DisplayKeys(), "live input shown while nothing is committed")

	release(m, ctrl)
	assert.Empty(t, rec.values)
	assert.True(t, m.Candidate().IsEmpty())
	assert.True(t, m.Value().IsEmpty())
	assert.Nil(t, m.DisplayKeys())
}

func TestMachine_DiscardMainKeyOnly(t *testing.T) {
	m, rec := newTestMachine(t)

	press(m, keyA)
	release(m, keyA)

	assert.Empty(t, rec.values)
	assert.True(t, m.Candidate().IsEmpty())
}

func TestMachine_DiscardKeepsPreviousCommit(t *testing.T) {
	m, rec := newTestMachine(t)

	press(m, alt, keyA)
	release(m, alt, keyA)
	press(m, shift)
	release(m, shift)

	assert.Equal(t, []string{"Alt+A"}, rec.values)
	assert.Equal(t, "Alt+A", m.String())
}

func TestMachine_RepeatIgnored(t *testing.T) {
	m, rec := newTestMachine(t)

	press(m, ctrl)
	repeat := ctrl
	repeat.Repeat = true
	m.KeyDown(repeat)
	m.KeyDown(repeat)

	assert.Equal(t, 1, m.Held())
	assert.Equal(t, []shortcut.ModifierKey{shortcut.Control}, m.Candidate().Modifiers())

	press(m, keyA)
	release(m, keyA, ctrl)
	assert.Equal(t, []string{"Control+A"}, rec.values)
}

func TestMachine_SameModifierTwice(t *testing.T) {
	m, _ := newTestMachine(t)

	// left and right Control keys
	press(m, ctrl, KeyEvent{Key: "Control", Code: "ControlRight"})

	assert.Equal(t, 2, m.Held())
	assert.Equal(t, []shortcut.ModifierKey{shortcut.Control}, m.Candidate().Modifiers())
}

func TestMachine_LastMainKeyWins(t *testing.T) {
	m, rec := newTestMachine(t)

	press(m, ctrl, keyA, keyB)
	release(m, keyA, keyB, ctrl)

	assert.Equal(t, []string{"Control+B"}, rec.values)
}

func TestMachine_KeyUpFloorsAtZero(t *testing.T) {
	m, rec := newTestMachine(t)

	release(m, keyA, keyA)
	assert.Equal(t, 0, m.Held())
	assert.Empty(t, rec.values)

	press(m, ctrl, keyA)
	assert.Equal(t, 2, m.Held())
}

func TestMachine_NewCaptureStartsFresh(t *testing.T) {
	m, rec := newTestMachine(t)

	press(m, ctrl, shift, keyA)
	release(m, ctrl, shift, keyA)

	press(m, alt, keyB)
	release(m, alt, keyB)

	assert.Equal(t, []string{"Control+Shift+A", "Alt+B"}, rec.values)
}

func TestMachine_DisplayPrefersCommitted(t *testing.T) {
	m, _ := newTestMachine(t)

	press(m, ctrl, keyA)
	release(m, ctrl, keyA)

	press(m, alt)
	assert.Equal(t, []string{"Ctrl", "A"}, m.DisplayKeys())
	assert.Equal(t, []string{"Alt"}, m.Candidate().Keys())
}

func TestMachine_BlurAbortsCapture(t *testing.T) {
	t.Run("valid candidate commits", func(t *testing.T) {
		m, rec := newTestMachine(t)
		m.Focus()
		press(m, ctrl, keyA)

		m.Blur()
		assert.False(t, m.Focused())
		assert.Equal(t, 0, m.Held())
		assert.Equal(t, []string{"Control+A"}, rec.values)

		// late key-ups from the host change nothing
		release(m, ctrl, keyA)
		assert.Len(t, rec.values, 1)
	})

	t.Run("invalid candidate discarded", func(t *testing.T) {
		m, rec := newTestMachine(t)
		m.Focus()
		press(m, ctrl, shift)

		m.Blur()
		assert.Empty(t, rec.values)
		assert.True(t, m.Candidate().IsEmpty())
	})

	t.Run("idle blur", func(t *testing.T) {
		m, rec := newTestMachine(t)
		m.Focus()
		assert.True(t, m.Focused())
		m.Blur()
		assert.Empty(t, rec.values)
	})
}

func TestMachine_SetValue(t *testing.T) {
	m, rec := newTestMachine(t)

	m.SetValue("Shift+Control+K")
	require.NoError(t, m.Err())
	assert.Equal(t, "Control+Shift+K", m.String())
	assert.Equal(t, []string{"Control", "Shift", "K"}, m.Candidate().Keys())
	assert.Equal(t, []string{"Ctrl", "Shift", "K"}, m.DisplayKeys())
	assert.Equal(t, []string{"Control+Shift+K"}, rec.values)

	// the same value again is not a change
	m.SetValue("Control+Shift+K")
	assert.Equal(t, []string{"Control+Shift+K"}, rec.values)

	m.SetValue("")
	assert.Equal(t, []string{"Control+Shift+K", ""}, rec.values)
}

func TestMachine_SetValueEmptyOnEmptyMachine(t *testing.T) {
	m, rec := newTestMachine(t)

	m.SetValue("")
	assert.True(t, m.Value().IsEmpty())
	assert.Empty(t, rec.values)
}

func TestMachine_SetValueMidCapture(t *testing.T) {
	m, rec := newTestMachine(t)

	press(m, ctrl, keyA)
	m.SetValue("Alt+F4")

	assert.Equal(t, "Alt+F4", m.String())
	assert.Equal(t, []string{"Alt", "F4"}, m.Candidate().Keys())
	assert.True(t, m.InProgress())
	assert.Equal(t, []string{"Alt+F4"}, rec.values)

	// the keys still held now commit the external value as the candidate
	release(m, keyA)
	assert.True(t, m.InProgress())
	release(m, ctrl)
	assert.False(t, m.InProgress())
	assert.Equal(t, "Alt+F4", m.String())
	assert.Equal(t, []string{"Alt+F4", "Alt+F4"}, rec.values)
}

func TestMachine_SetValueInvalid(t *testing.T) {
	m, rec := newTestMachine(t)
	m.SetValue("Control+A")

	m.SetValue("Control+A+B")
	assert.ErrorIs(t, m.Err(), shortcut.MoreThanOneMainKey)
	assert.True(t, m.Value().IsEmpty())
	assert.True(t, m.Candidate().IsEmpty())
	assert.Nil(t, m.DisplayKeys())
	assert.Equal(t, []string{"Control+A"}, rec.values, "a rejected value is not emitted")

	// a valid external value clears the error
	m.SetValue("Meta+Q")
	assert.NoError(t, m.Err())
	assert.Equal(t, "Meta+Q", m.String())
	assert.Equal(t, []string{"Control+A", "Meta+Q"}, rec.values)
}

func TestMachine_CommitClearsError(t *testing.T) {
	m, rec := newTestMachine(t)

	m.SetValue("A")
	assert.ErrorIs(t, m.Err(), shortcut.NoModifierKeys)

	press(m, shift, keyB)
	release(m, shift, keyB)

	assert.NoError(t, m.Err())
	assert.Equal(t, []string{"Shift+B"}, rec.values)
}

func TestMachine_SetValueEmptyClearsCandidate(t *testing.T) {
	m, rec := newTestMachine(t)
	m.SetValue("Control+S")

	press(m, ctrl)
	m.SetValue("")

	assert.NoError(t, m.Err())
	assert.True(t, m.Value().IsEmpty())
	assert.True(t, m.Candidate().IsEmpty())
	assert.Nil(t, m.DisplayKeys())
	assert.Equal(t, []string{"Control+S", ""}, rec.values)

	// the held modifier alone is discarded on release
	release(m, ctrl)
	assert.Equal(t, []string{"Control+S", ""}, rec.values)
}

func TestMachine_AllowList(t *testing.T) {
	allowed, err := shortcut.NewModifierSet(shortcut.Alt, shortcut.Shift)
	require.NoError(t, err)
	m, rec := newTestMachine(t, WithAllowedModifiers(allowed))

	press(m, ctrl)
	main, ok := m.Candidate().MainKey()
	assert.True(t, ok)
	assert.Equal(t, "Control", main)
	assert.Empty(t, m.Candidate().Modifiers())

	press(m, alt)
	release(m, ctrl, alt)
	assert.Equal(t, []string{"Alt+Control"}, rec.values)
}

func TestMachine_SpaceAndPlus(t *testing.T) {
	m, rec := newTestMachine(t)

	press(m, ctrl, KeyEvent{Key: " ", Code: "Space"})
	release(m, ctrl, KeyEvent{Key: " ", Code: "Space"})

	press(m, shift, KeyEvent{Key: "+", Code: "Equal"})
	release(m, shift, KeyEvent{Key: "+", Code: "Equal"})

	assert.Equal(t, []string{"Control+Space", "Shift+Plus"}, rec.values)

	m.SetValue(rec.values[0])
	assert.Equal(t, []string{"Ctrl", "Space"}, m.DisplayKeys())
}

func TestMachine_NoCallback(t *testing.T) {
	m := New(WithLogger(logging.Nop()))

	press(m, alt, keyA)
	assert.NotPanics(t, func() { release(m, alt, keyA) })
	assert.Equal(t, "Alt+A", m.String())
}

func TestMachine_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug, logging.FormatText)
	m := New(WithLogger(logger))

	press(m, alt, keyA)
	release(m, alt, keyA)
	m.SetValue("Alt")

	out := buf.String()
	assert.Contains(t, out, "capture committed")
	assert.Contains(t, out, "value=Alt+A")
	assert.Contains(t, out, "component=capture")
	assert.Contains(t, out, "external value rejected")
}
