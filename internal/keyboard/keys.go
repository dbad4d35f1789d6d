package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds the bindings keycap itself reacts to. While an input is
// capturing, only Done is honored; every other key goes to the input.
type Keys struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Editing
	Edit  key.Binding // Start capturing into the selected action
	Done  key.Binding // Stop capturing
	Clear key.Binding // Remove the selected shortcut
	Reset key.Binding // Restore the shortcut from the config file
	Copy  key.Binding // Copy the canonical string to the clipboard
	Save  key.Binding // Write the shortcuts back to the config file

	// Views
	History key.Binding
	YAML    key.Binding
	Back    key.Binding

	// Global
	Filter key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// Default returns the default key bindings
func Default() *Keys {
	return &Keys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "record"),
		),
		Done: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop recording"),
		),
		Clear: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("del", "clear"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		YAML: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view yaml"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "back"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k *Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Copy, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k *Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter},
		{k.Edit, k.Done, k.Clear, k.Reset},
		{k.Copy, k.Save, k.History, k.YAML},
		{k.Help, k.Quit},
	}
}

// CaptureHelp lists the bindings active while an input is capturing.
func (k *Keys) CaptureHelp() []key.Binding {
	return []key.Binding{k.Done}
}
