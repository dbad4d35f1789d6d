package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keycap/internal/types"
)

// RenderMessage renders a status message with styling based on its type.
// Long messages are truncated to fit the terminal width.
func RenderMessage(text string, msgType types.MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	// prefix (2) plus margin
	maxMessageLength := width - 7
	if maxMessageLength < 20 {
		maxMessageLength = 20
	}
	if runes := []rune(text); len(runes) > maxMessageLength {
		text = string(runes[:maxMessageLength-1]) + "…"
	}

	var (
		color  lipgloss.AdaptiveColor
		prefix string
	)
	switch msgType {
	case types.MessageTypeSuccess:
		color, prefix = theme.Success, "✓ "
	case types.MessageTypeError:
		color, prefix = theme.Error, "✗ "
	default:
		color, prefix = theme.Primary, "ℹ "
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(color).
		Foreground(theme.Background).
		Bold(true).
		Render(prefix + text)
}
