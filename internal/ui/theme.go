package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	Border     lipgloss.AdaptiveColor
	Dimmed     lipgloss.AdaptiveColor
	Background lipgloss.AdaptiveColor

	// Keycap styles, one per input state
	Keycap          lipgloss.Style
	KeycapFocused   lipgloss.Style
	KeycapCapturing lipgloss.Style
	Placeholder     lipgloss.Style
	InputError      lipgloss.Style

	Table     TableStyles
	AppTitle  lipgloss.Style
	Header    lipgloss.Style
	StatusBar lipgloss.Style
}

// TableStyles defines styles for the action table
type TableStyles struct {
	Header      lipgloss.Style
	Cell        lipgloss.Style
	SelectedRow lipgloss.Style
}

// ToTableStyles converts Theme.Table to bubbles table.Styles
func (t *Theme) ToTableStyles() table.Styles {
	return table.Styles{
		Header:   t.Table.Header,
		Cell:     t.Table.Cell,
		Selected: t.Table.SelectedRow,
	}
}

// palette is the raw color set a theme is derived from.
type palette struct {
	primary, secondary, accent, foreground, muted lipgloss.AdaptiveColor
	errorColor, success, warning                  lipgloss.AdaptiveColor
	border, dimmed, background                    lipgloss.AdaptiveColor
	selectedFg, selectedBg, titleBg               lipgloss.Color
}

var palettes = map[string]palette{
	"charm": {
		primary:    lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
		secondary:  lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		accent:     lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"},
		foreground: lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
		muted:      lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
		errorColor: lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"},
		success:    lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		warning:    lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"},
		border:     lipgloss.AdaptiveColor{Light: "240", Dark: "240"},
		dimmed:     lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
		background: lipgloss.AdaptiveColor{Light: "254", Dark: "235"},
		selectedFg: lipgloss.Color("229"),
		selectedBg: lipgloss.Color("57"),
		titleBg:    lipgloss.Color("235"),
	},
	"dracula": {
		primary:    lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"},
		secondary:  lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"},
		accent:     lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"},
		foreground: lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"},
		muted:      lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
		errorColor: lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"},
		success:    lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"},
		warning:    lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"},
		border:     lipgloss.AdaptiveColor{Light: "61", Dark: "61"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
		background: lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#282a36"},
		selectedFg: lipgloss.Color("#282a36"),
		selectedBg: lipgloss.Color("#bd93f9"),
		titleBg:    lipgloss.Color("#44475a"),
	},
	"nord": {
		primary:    lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"},
		secondary:  lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"},
		accent:     lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"},
		foreground: lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"},
		muted:      lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
		errorColor: lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"},
		success:    lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"},
		warning:    lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"},
		border:     lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
		background: lipgloss.AdaptiveColor{Light: "#eceff4", Dark: "#2e3440"},
		selectedFg: lipgloss.Color("#2e3440"),
		selectedBg: lipgloss.Color("#88c0d0"),
		titleBg:    lipgloss.Color("#3b4252"),
	},
	"gruvbox": {
		primary:    lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"},
		secondary:  lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"},
		accent:     lipgloss.AdaptiveColor{Light: "#b16286", Dark: "#d3869b"},
		foreground: lipgloss.AdaptiveColor{Light: "#3c3836", Dark: "#ebdbb2"},
		muted:      lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"},
		errorColor: lipgloss.AdaptiveColor{Light: "#9d0006", Dark: "#fb4934"},
		success:    lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"},
		warning:    lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"},
		border:     lipgloss.AdaptiveColor{Light: "#d5c4a1", Dark: "#504945"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"},
		background: lipgloss.AdaptiveColor{Light: "#fbf1c7", Dark: "#282828"},
		selectedFg: lipgloss.Color("#282828"),
		selectedBg: lipgloss.Color("#fe8019"),
		titleBg:    lipgloss.Color("#3c3836"),
	},
}

func newTheme(name string, p palette) *Theme {
	t := &Theme{
		Name:       name,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Accent:     p.accent,
		Foreground: p.foreground,
		Muted:      p.muted,
		Error:      p.errorColor,
		Success:    p.success,
		Warning:    p.warning,
		Border:     p.border,
		Dimmed:     p.dimmed,
		Background: p.background,
	}

	t.Keycap = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.KeycapFocused = t.Keycap.
		BorderForeground(t.Primary)
	t.KeycapCapturing = t.Keycap.
		BorderForeground(t.Accent).
		Foreground(t.Accent).
		Bold(true)
	t.Placeholder = lipgloss.NewStyle().
		Foreground(t.Dimmed).
		Italic(true)
	t.InputError = lipgloss.NewStyle().
		Foreground(t.Error)

	t.Table.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(false).
		PaddingLeft(1).
		PaddingRight(1)
	t.Table.Cell = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	t.Table.SelectedRow = lipgloss.NewStyle().
		Foreground(p.selectedFg).
		Background(p.selectedBg).
		Bold(false)

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(p.titleBg).
		Bold(true)
	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)
	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	return newTheme("charm", palettes["charm"])
}

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	p, ok := palettes[name]
	if !ok {
		return ThemeCharm()
	}
	return newTheme(name, p)
}

// AvailableThemes returns the theme names in alphabetical order
func AvailableThemes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
