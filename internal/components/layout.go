package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keycap/internal/ui"
)

type Layout struct {
	width  int
	height int
	theme  *ui.Theme
}

func NewLayout(theme *ui.Theme, width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
		theme:  theme,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateBodyHeight returns the available height for the action table
func (l *Layout) CalculateBodyHeight() int {
	// header (1) + empty line (1) + detail (4) + help (1) + status (1)
	reserved := 8
	return max(3, l.height-reserved)
}

// Render builds the full layout
func (l *Layout) Render(header, body, detail, help, status string) string {
	sections := []string{}

	if header != "" {
		sections = append(sections, header, "")
	}
	if body != "" {
		sections = append(sections, body)
	}
	if detail != "" {
		sections = append(sections, lipgloss.NewStyle().Padding(0, 1).Render(detail))
	}
	if help != "" {
		sections = append(sections, l.theme.StatusBar.Padding(0, 1).Render(help))
	}
	sections = append(sections, status)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
