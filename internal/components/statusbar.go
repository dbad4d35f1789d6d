package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keycap/internal/types"
	"github.com/renato0307/keycap/internal/ui"
)

// StatusBar displays status messages (success, errors, info). Each message
// clears itself after StatusBarDisplayDuration unless replaced.
type StatusBar struct {
	message     string
	messageType types.MessageType
	messageID   int
	width       int
	theme       *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

// SetMessage sets the status message and returns the command that clears it
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) tea.Cmd {
	sb.message = msg
	sb.messageType = msgType
	sb.messageID++

	id := sb.messageID
	return tea.Tick(StatusBarDisplayDuration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}

// ClearMessage clears the status message
func (sb *StatusBar) ClearMessage() {
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

// Message returns the current text
func (sb *StatusBar) Message() string {
	return sb.message
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// GetHeight returns the height (always 1 line to reserve space)
func (sb *StatusBar) GetHeight() int {
	return 1
}

// Update handles status and clear messages
func (sb *StatusBar) Update(msg tea.Msg) (*StatusBar, tea.Cmd) {
	switch msg := msg.(type) {
	case types.StatusMsg:
		return sb, sb.SetMessage(msg.Message, msg.Type)
	case types.ClearStatusMsg:
		// a newer message owns the bar
		if msg.MessageID == sb.messageID {
			sb.ClearMessage()
		}
	}
	return sb, nil
}

// View renders the status bar
func (sb *StatusBar) View() string {
	if sb.message == "" {
		return lipgloss.NewStyle().Width(sb.width).Render("")
	}
	return ui.RenderMessage(sb.message, sb.messageType, sb.theme, sb.width)
}
