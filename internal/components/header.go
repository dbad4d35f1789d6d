package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keycap/internal/ui"
)

type Header struct {
	appName     string
	actionCount int
	totalCount  int
	filter      string
	recording   string
	width       int
	theme       *ui.Theme
}

func NewHeader(theme *ui.Theme, appName string) *Header {
	return &Header{
		appName: appName,
		theme:   theme,
	}
}

// SetCounts sets the visible and total number of actions
func (h *Header) SetCounts(visible, total int) {
	h.actionCount = visible
	h.totalCount = total
}

func (h *Header) SetFilter(filter string) {
	h.filter = filter
}

// SetRecording names the action being captured, empty when idle
func (h *Header) SetRecording(action string) {
	h.recording = action
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	// "keycap • 5 of 7 actions • filter: save"
	leftParts := []string{h.appName}
	if h.actionCount != h.totalCount {
		leftParts = append(leftParts, fmt.Sprintf("%d of %d actions", h.actionCount, h.totalCount))
	} else {
		leftParts = append(leftParts, fmt.Sprintf("%d actions", h.totalCount))
	}
	if h.filter != "" {
		leftParts = append(leftParts, fmt.Sprintf("filter: %s", h.filter))
	}
	left := h.theme.Header.Render(strings.Join(leftParts, " • "))

	var right string
	if h.recording != "" {
		right = lipgloss.NewStyle().
			Foreground(h.theme.Accent).
			Bold(true).
			Padding(0, 1).
			Render("● recording " + h.recording)
	}

	spacing := max(0, h.width-lipgloss.Width(left)-lipgloss.Width(right))
	spacer := lipgloss.NewStyle().
		Width(spacing).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}
