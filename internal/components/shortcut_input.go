package components

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keycap/internal/capture"
	"github.com/renato0307/keycap/internal/keyboard"
	"github.com/renato0307/keycap/internal/shortcut"
	"github.com/renato0307/keycap/internal/types"
	"github.com/renato0307/keycap/internal/ui"
)

// ShortcutInput is the terminal rendition of a shortcut field. Key messages
// received while focused are replayed into a capture.Machine as down/up
// strokes; every change the machine reports becomes a
// types.ShortcutChangedMsg.
type ShortcutInput struct {
	action      string
	machine     *capture.Machine
	theme       *ui.Theme
	placeholder string

	// source of the changes the machine reports next
	source types.ChangeSource
	// changes reported by the machine during the current call
	pending []types.ShortcutChangedMsg
}

// NewShortcutInput creates an input for action. opts are passed to the
// underlying machine; any change callback among them is replaced.
func NewShortcutInput(action string, theme *ui.Theme, placeholder string, opts ...capture.Option) *ShortcutInput {
	in := &ShortcutInput{
		action:      action,
		theme:       theme,
		placeholder: placeholder,
		source:      types.SourceCapture,
	}
	opts = append(opts, capture.WithOnChange(func(value string) {
		in.pending = append(in.pending, types.ShortcutChangedMsg{
			Action: in.action,
			Value:  value,
			Source: in.source,
		})
	}))
	in.machine = capture.New(opts...)
	return in
}

// Action returns the action this input edits.
func (in *ShortcutInput) Action() string {
	return in.action
}

// Focus starts capturing.
func (in *ShortcutInput) Focus() {
	in.machine.Focus()
}

// Blur stops capturing. Held keys count as released.
func (in *ShortcutInput) Blur() tea.Cmd {
	in.machine.Blur()
	return in.flush()
}

// Focused reports whether the input is capturing.
func (in *ShortcutInput) Focused() bool {
	return in.machine.Focused()
}

// Load sets the initial value. It is not reported as a change.
func (in *ShortcutInput) Load(raw string) {
	in.machine.SetValue(raw)
	in.pending = nil
}

// SetValue replaces the value from outside. A valid raw that changes the
// value is reported with source; an invalid one only sets Err.
func (in *ShortcutInput) SetValue(raw string, source types.ChangeSource) tea.Cmd {
	in.source = source
	in.machine.SetValue(raw)
	in.source = types.SourceCapture
	return in.flush()
}

// Value returns the canonical string of the committed value.
func (in *ShortcutInput) Value() string {
	return in.machine.String()
}

// Err returns the validation error of the last external value.
func (in *ShortcutInput) Err() error {
	return in.machine.Err()
}

// Update replays key messages into the machine while focused.
func (in *ShortcutInput) Update(msg tea.Msg) (*ShortcutInput, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !in.machine.Focused() {
		return in, nil
	}

	keyboard.Replay(in.machine, keyboard.Strokes(keyMsg))
	return in, in.flush()
}

func (in *ShortcutInput) flush() tea.Cmd {
	if len(in.pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(in.pending))
	for _, changed := range in.pending {
		cmds = append(cmds, func() tea.Msg { return changed })
	}
	in.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// View renders the keycaps, the placeholder, or the validation error. The
// error is only shown when there are no keys to display.
func (in *ShortcutInput) View() string {
	keys := in.machine.DisplayKeys()
	if len(keys) == 0 {
		var verr shortcut.ValidationError
		if errors.As(in.machine.Err(), &verr) {
			return in.theme.InputError.Render(verr.Message())
		}
		return in.theme.Placeholder.Render(in.placeholder)
	}

	style := in.theme.Keycap
	switch {
	case in.machine.InProgress():
		style = in.theme.KeycapCapturing
	case in.machine.Focused():
		style = in.theme.KeycapFocused
	}

	caps := make([]string, len(keys))
	for i, k := range keys {
		caps[i] = style.Render(k)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, caps...)
}

// InlineView renders the input on a single line, for table cells.
func (in *ShortcutInput) InlineView() string {
	keys := in.machine.DisplayKeys()
	if len(keys) == 0 {
		var verr shortcut.ValidationError
		if errors.As(in.machine.Err(), &verr) {
			return "! " + verr.Message()
		}
		if in.machine.Focused() {
			return in.placeholder
		}
		return ""
	}
	return strings.Join(keys, " ")
}
