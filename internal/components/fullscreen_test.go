package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/renato0307/keycap/internal/ui"
)

func TestFullScreen_Scroll(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	fs := NewFullScreen(FullScreenHistory, "session", strings.Join(lines, "\n"), ui.ThemeCharm())
	fs.SetSize(80, 13)

	fs.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, fs.scrollOffset)

	fs.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Equal(t, 20, fs.scrollOffset)

	fs.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 20, fs.scrollOffset)

	fs.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, fs.scrollOffset)

	view := fs.View()
	assert.Contains(t, view, "History: session")
	assert.Contains(t, view, "1-10 of 30")
}

func TestFullScreen_YAML(t *testing.T) {
	fs := NewFullScreen(FullScreenYAML, "keycap.yaml", "theme: charm\n# comment", ui.ThemeCharm())
	view := fs.View()
	assert.Contains(t, view, "theme:")
	assert.Contains(t, view, "charm")
	assert.Contains(t, view, "# comment")
}
