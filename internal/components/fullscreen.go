package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keycap/internal/ui"
)

// FullScreenViewType represents the type of full-screen view
type FullScreenViewType int

const (
	FullScreenHistory FullScreenViewType = iota
	FullScreenYAML
)

// FullScreen displays scrollable content over the whole terminal
type FullScreen struct {
	viewType     FullScreenViewType
	title        string
	content      string
	width        int
	height       int
	theme        *ui.Theme
	scrollOffset int
}

// NewFullScreen creates a new full-screen component
func NewFullScreen(viewType FullScreenViewType, title, content string, theme *ui.Theme) *FullScreen {
	return &FullScreen{
		viewType: viewType,
		title:    title,
		content:  content,
		width:    80,
		height:   24,
		theme:    theme,
	}
}

// SetSize updates the size of the full-screen view
func (fs *FullScreen) SetSize(width, height int) {
	fs.width = width
	fs.height = height
}

func (fs *FullScreen) visibleHeight() int {
	return max(1, fs.height-FullScreenReservedLines)
}

func (fs *FullScreen) maxOffset() int {
	lines := strings.Count(fs.content, "\n") + 1
	return max(0, lines-fs.visibleHeight())
}

// Update handles scrolling
func (fs *FullScreen) Update(msg tea.Msg) (*FullScreen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return fs, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		fs.scrollOffset--
	case "down", "j":
		fs.scrollOffset++
	case "pgup":
		fs.scrollOffset -= fs.visibleHeight()
	case "pgdown":
		fs.scrollOffset += fs.visibleHeight()
	case "home", "g":
		fs.scrollOffset = 0
	case "end", "G":
		fs.scrollOffset = fs.maxOffset()
	}
	fs.scrollOffset = min(max(fs.scrollOffset, 0), fs.maxOffset())
	return fs, nil
}

// View renders the full-screen view
func (fs *FullScreen) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(fs.theme.Primary).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(fs.theme.Muted)

	var viewTypeStr string
	switch fs.viewType {
	case FullScreenHistory:
		viewTypeStr = "History"
	case FullScreenYAML:
		viewTypeStr = "YAML"
	}

	title := titleStyle.Render(viewTypeStr + ": " + fs.title)
	hint := hintStyle.Render("[ESC] Back  [↑↓/jk] Scroll  [g/G] Top/Bottom")

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", max(0, fs.width-lipgloss.Width(title)-lipgloss.Width(hint))),
		hint,
	)

	separator := hintStyle.Render(strings.Repeat("─", max(0, fs.width)))

	displayContent := fs.content
	if fs.viewType == FullScreenYAML {
		displayContent = fs.highlightYAML(fs.content)
	}

	lines := strings.Split(displayContent, "\n")
	visibleHeight := fs.visibleHeight()

	var visibleLines []string
	for i := fs.scrollOffset; i < len(lines) && i < fs.scrollOffset+visibleHeight; i++ {
		visibleLines = append(visibleLines, lines[i])
	}
	for len(visibleLines) < visibleHeight {
		visibleLines = append(visibleLines, "")
	}

	scrollInfo := ""
	if len(lines) > visibleHeight {
		scrollInfo = hintStyle.Render(fmt.Sprintf("  %d-%d of %d",
			fs.scrollOffset+1, min(fs.scrollOffset+visibleHeight, len(lines)), len(lines)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		separator,
		strings.Join(visibleLines, "\n"),
		scrollInfo,
	)
}

// highlightYAML colors keys and values of simple YAML
func (fs *FullScreen) highlightYAML(yaml string) string {
	keyStyle := lipgloss.NewStyle().Foreground(fs.theme.Primary)
	valueStyle := lipgloss.NewStyle().Foreground(fs.theme.Success)
	commentStyle := lipgloss.NewStyle().Foreground(fs.theme.Muted)

	lines := strings.Split(yaml, "\n")
	highlighted := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			highlighted = append(highlighted, commentStyle.Render(line))
			continue
		}

		if key, value, ok := strings.Cut(line, ":"); ok {
			highlighted = append(highlighted, keyStyle.Render(key+":")+valueStyle.Render(value))
			continue
		}

		highlighted = append(highlighted, line)
	}

	return strings.Join(highlighted, "\n")
}
