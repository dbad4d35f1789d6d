package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/keycap/internal/capture"
	"github.com/renato0307/keycap/internal/components"
	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/keyboard"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/messages"
	"github.com/renato0307/keycap/internal/shortcut"
	"github.com/renato0307/keycap/internal/types"
	"github.com/renato0307/keycap/internal/ui"
)

const appName = "keycap"

type mode int

const (
	modeBrowse mode = iota
	modeCapture
	modeFilter
	modeFullScreen
)

// Options configures the root model.
type Options struct {
	Config *config.Config
	// ConfigPath is where Save writes. Saving is disabled when empty.
	ConfigPath string
	Theme      *ui.Theme
	// Reloads delivers configuration changes, usually from config.Watch.
	Reloads <-chan config.Reload
	// Clipboard replaces clipboard.WriteAll, for tests.
	Clipboard func(string) error
}

type Model struct {
	cfg     *config.Config
	allowed shortcut.ModifierSet
	inputs  []*components.ShortcutInput
	// last value seen per action, for history entries
	last map[string]string
	// visible holds indices into inputs, in table order
	visible []int

	table      table.Model
	filter     textinput.Model
	help       help.Model
	keys       *keyboard.Keys
	header     *components.Header
	statusBar  *components.StatusBar
	layout     *components.Layout
	history    *components.History
	fullScreen *components.FullScreen

	mode       mode
	editing    int
	configPath string
	reloads    <-chan config.Reload
	copy       func(string) error
	theme      *ui.Theme
	width      int
	height     int
}

func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	theme := opts.Theme
	if theme == nil {
		theme = ui.GetTheme(cfg.Theme)
	}
	allowed, err := cfg.Modifiers()
	if err != nil {
		return Model{}, err
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	columns := []table.Column{
		{Title: "Action", Width: 20},
		{Title: "Shortcut", Width: 28},
		{Title: "Description", Width: 30},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(theme.ToTableStyles())

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter actions"

	m := Model{
		cfg:        cfg,
		allowed:    allowed,
		table:      t,
		filter:     filter,
		help:       help.New(),
		keys:       keyboard.Default(),
		header:     components.NewHeader(theme, appName),
		statusBar:  components.NewStatusBar(theme),
		layout:     components.NewLayout(theme, 80, 24),
		history:    components.NewHistory(),
		last:       make(map[string]string),
		editing:    -1,
		configPath: opts.ConfigPath,
		reloads:    opts.Reloads,
		copy:       copyFn,
		theme:      theme,
		width:      80,
		height:     24,
	}
	m.inputs = m.buildInputs(cfg.Actions, nil)
	m.applyFilter()
	m.resize()
	return m, nil
}

// buildInputs creates one input per action. Values found in current win
// over the action's configured shortcut.
func (m *Model) buildInputs(actions []config.Action, current map[string]string) []*components.ShortcutInput {
	inputs := make([]*components.ShortcutInput, len(actions))
	for i, a := range actions {
		in := components.NewShortcutInput(a.Name, m.theme, m.cfg.Placeholder,
			capture.WithAllowedModifiers(m.allowed),
			capture.WithLogger(logging.Get().With("action", a.Name)),
		)
		value, ok := current[a.Name]
		if !ok {
			value = a.Shortcut
		}
		in.Load(value)
		inputs[i] = in
		m.last[a.Name] = in.Value()
	}
	return inputs
}

func (m Model) Init() tea.Cmd {
	return waitForReload(m.reloads)
}

// waitForReload blocks on the next configuration reload.
func waitForReload(reloads <-chan config.Reload) tea.Cmd {
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-reloads
		if !ok {
			return nil
		}
		return types.ConfigReloadedMsg{Config: r.Config, Err: r.Err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.fullScreen != nil {
			m.fullScreen.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case types.ShortcutChangedMsg:
		m.record(msg.Action, msg.Value, msg.Source)
		m.refreshRows()
		logging.Info("Shortcut changed", "action", msg.Action, "value", msg.Value, "source", msg.Source)
		switch msg.Source {
		case types.SourceCapture:
			return m, messages.SuccessCmd("%s → %s", msg.Action, msg.Value)
		case types.SourceReload:
			// applyReload reports a summary
			return m, nil
		}
		return m, messages.InfoCmd("%s → %s", msg.Action, displayValue(msg.Value))

	case types.ConfigReloadedMsg:
		cmd := m.applyReload(msg)
		return m, tea.Batch(cmd, waitForReload(m.reloads))

	case types.FilterUpdateMsg:
		m.filter.SetValue(msg.Filter)
		m.applyFilter()
		return m, nil

	case types.ClearFilterMsg:
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil

	case types.StatusMsg, types.ClearStatusMsg:
		var cmd tea.Cmd
		m.statusBar, cmd = m.statusBar.Update(msg)
		return m, cmd
	}

	// cursor blink
	if m.mode == modeFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeFullScreen:
		if key.Matches(msg, m.keys.Back) {
			m.mode = modeBrowse
			m.fullScreen = nil
			return m, nil
		}
		m.fullScreen, _ = m.fullScreen.Update(msg)
		return m, nil

	case modeCapture:
		in := m.inputs[m.editing]
		if key.Matches(msg, m.keys.Done) {
			return m, m.stopCapture()
		}
		var cmd tea.Cmd
		m.inputs[m.editing], cmd = in.Update(msg)
		m.refreshRows()
		return m, cmd

	case modeFilter:
		switch msg.Type {
		case tea.KeyEsc:
			m.filter.SetValue("")
			m.filter.Blur()
			m.mode = modeBrowse
			m.applyFilter()
			return m, nil
		case tea.KeyEnter:
			m.filter.Blur()
			m.mode = modeBrowse
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Edit):
		return m, m.startCapture()
	case key.Matches(msg, m.keys.Clear):
		return m, m.setSelected("", types.SourceClear)
	case key.Matches(msg, m.keys.Reset):
		return m, m.resetSelected()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()
	case key.Matches(msg, m.keys.Save):
		return m, m.save()
	case key.Matches(msg, m.keys.History):
		m.openFullScreen(components.FullScreenHistory, "session", m.history.Render())
		return m, nil
	case key.Matches(msg, m.keys.YAML):
		data, err := m.snapshot().Marshal()
		if err != nil {
			return m, messages.ErrorCmd("Export failed: %v", err)
		}
		m.openFullScreen(components.FullScreenYAML, m.configName(), string(data))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selected returns the index into inputs of the highlighted row, or -1.
func (m *Model) selected() int {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.visible) {
		return -1
	}
	return m.visible[cursor]
}

func (m *Model) startCapture() tea.Cmd {
	idx := m.selected()
	if idx < 0 {
		return nil
	}
	m.editing = idx
	m.mode = modeCapture
	m.inputs[idx].Focus()
	m.header.SetRecording(m.inputs[idx].Action())
	m.table.Blur()
	m.refreshRows()
	return messages.InfoCmd("Recording %s, press esc to stop", m.inputs[idx].Action())
}

func (m *Model) stopCapture() tea.Cmd {
	cmd := m.inputs[m.editing].Blur()
	m.editing = -1
	m.mode = modeBrowse
	m.header.SetRecording("")
	m.table.Focus()
	m.refreshRows()
	return cmd
}

// setSelected replaces the selected value from outside the capture flow.
// The change comes back as a ShortcutChangedMsg.
func (m *Model) setSelected(value string, source types.ChangeSource) tea.Cmd {
	idx := m.selected()
	if idx < 0 {
		return nil
	}
	in := m.inputs[idx]
	cmd := in.SetValue(value, source)
	m.refreshRows()
	if err := in.Err(); err != nil {
		m.last[in.Action()] = in.Value()
		return messages.ErrorCmd("%s: %v", in.Action(), err)
	}
	return cmd
}

func (m *Model) resetSelected() tea.Cmd {
	idx := m.selected()
	if idx < 0 {
		return nil
	}
	action, err := m.cfg.Action(m.inputs[idx].Action())
	if err != nil {
		return messages.ErrorCmd("Reset failed: %v", err)
	}
	return m.setSelected(action.Shortcut, types.SourceReset)
}

func (m *Model) copySelected() tea.Cmd {
	idx := m.selected()
	if idx < 0 {
		return nil
	}
	value := m.inputs[idx].Value()
	if value == "" {
		return messages.InfoCmd("%s has no shortcut", m.inputs[idx].Action())
	}
	if err := m.copy(value); err != nil {
		logging.Warn("Clipboard write failed", "error", err)
		return messages.ErrorCmd("Copy failed: %v", err)
	}
	return messages.SuccessCmd("Copied %s", value)
}

// save writes the current shortcuts to the config file. The watcher, if
// any, reports the write back as a reload with no changes.
func (m *Model) save() tea.Cmd {
	if m.configPath == "" {
		return messages.InfoCmd("No config file, start with --config to save")
	}

	data, err := m.snapshot().Marshal()
	if err != nil {
		return messages.ErrorCmd("Save failed: %v", err)
	}
	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		err = messages.WrapError(err, "writing %s", m.configPath)
		logging.Error("Save failed", "error", err)
		return messages.ErrorCmd("Save failed: %v", err)
	}

	// the file now matches what is on screen
	m.cfg = m.snapshot()
	logging.Info("Config saved", "path", m.configPath)
	return messages.SuccessCmd("Saved %s", m.configPath)
}

// snapshot returns the configuration with the shortcuts currently shown.
// Actions holding an invalid external value keep their original string.
func (m *Model) snapshot() *config.Config {
	out := *m.cfg
	out.Actions = make([]config.Action, len(m.cfg.Actions))
	for i, a := range m.cfg.Actions {
		if m.inputs[i].Err() == nil {
			a.Shortcut = m.inputs[i].Value()
		}
		out.Actions[i] = a
	}
	return &out
}

func (m *Model) applyReload(msg types.ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		logging.Warn("Config reload failed", "error", msg.Err)
		return messages.ErrorCmd("Reload failed: %v", msg.Err)
	}

	next := msg.Config
	allowed, err := next.Modifiers()
	if err != nil {
		return messages.ErrorCmd("Reload failed: %v", err)
	}

	var stopCmd tea.Cmd
	if m.mode == modeCapture {
		stopCmd = m.stopCapture()
	}

	// inputs holding an invalid string get that string back, so its error
	// survives the rebuild
	changed := m.cfg.Changed(next)
	current := make(map[string]string, len(m.inputs))
	for i, in := range m.inputs {
		value := in.Value()
		if in.Err() != nil {
			value = m.cfg.Actions[i].Shortcut
		}
		current[in.Action()] = value
	}

	m.cfg = next
	m.allowed = allowed
	m.inputs = m.buildInputs(next.Actions, current)

	cmds := []tea.Cmd{stopCmd}
	for _, in := range m.inputs {
		value, ok := changed[in.Action()]
		if !ok {
			continue
		}
		cmds = append(cmds, in.SetValue(value, types.SourceReload))
		if in.Err() != nil {
			m.last[in.Action()] = in.Value()
		}
	}
	m.applyFilter()

	logging.Info("Config reloaded", "changed", len(changed))
	if len(changed) > 0 {
		cmds = append(cmds, messages.InfoCmd("Config reloaded, %d shortcut(s) changed", len(changed)))
	}
	return tea.Batch(cmds...)
}

// record adds a history entry for the value action now holds.
func (m *Model) record(action, value string, source types.ChangeSource) {
	m.history.Add(components.Change{
		Action:    action,
		Previous:  m.last[action],
		Value:     value,
		Source:    source,
		Timestamp: time.Now(),
	})
	m.last[action] = value
}

func (m *Model) openFullScreen(viewType components.FullScreenViewType, title, content string) {
	m.fullScreen = components.NewFullScreen(viewType, title, content, m.theme)
	m.fullScreen.SetSize(m.width, m.height)
	m.mode = modeFullScreen
}

func (m *Model) configName() string {
	if m.configPath == "" {
		return "defaults"
	}
	return m.configPath
}

// applyFilter narrows the table with a fuzzy match over action name,
// description and shortcut. A leading "!" inverts the match.
func (m *Model) applyFilter() {
	pattern := strings.ToLower(m.filter.Value())

	m.visible = m.visible[:0]
	if pattern == "" {
		for i := range m.inputs {
			m.visible = append(m.visible, i)
		}
	} else {
		searchStrings := make([]string, len(m.inputs))
		for i, in := range m.inputs {
			a := m.cfg.Actions[i]
			searchStrings[i] = strings.ToLower(strings.Join([]string{a.Name, a.Description, in.Value()}, " "))
		}

		if negate, ok := strings.CutPrefix(pattern, "!"); ok {
			matchSet := make(map[int]bool)
			for _, match := range fuzzy.Find(negate, searchStrings) {
				matchSet[match.Index] = true
			}
			for i := range m.inputs {
				if !matchSet[i] {
					m.visible = append(m.visible, i)
				}
			}
		} else {
			for _, match := range fuzzy.Find(pattern, searchStrings) {
				m.visible = append(m.visible, match.Index)
			}
		}
	}

	m.header.SetFilter(m.filter.Value())
	m.header.SetCounts(len(m.visible), len(m.inputs))
	m.refreshRows()
	if m.table.Cursor() >= len(m.visible) {
		m.table.SetCursor(max(0, len(m.visible)-1))
	}
}

func (m *Model) refreshRows() {
	rows := make([]table.Row, len(m.visible))
	for i, idx := range m.visible {
		a := m.cfg.Actions[idx]
		rows[i] = table.Row{a.Name, m.inputs[idx].InlineView(), a.Description}
	}
	m.table.SetRows(rows)
}

func (m *Model) resize() {
	m.header.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.help.Width = m.width
	m.layout.SetSize(m.width, m.height)

	bodyHeight := m.layout.CalculateBodyHeight()
	if m.help.ShowAll {
		rows := 0
		for _, group := range m.keys.FullHelp() {
			rows = max(rows, len(group))
		}
		bodyHeight = max(3, bodyHeight-rows+1)
	}
	m.table.SetHeight(bodyHeight - 1)

	cols := m.table.Columns()
	fixed := cols[0].Width + cols[1].Width + 2*len(cols)
	cols[2].Width = max(10, m.width-fixed)
	m.table.SetColumns(cols)
}

func (m Model) View() string {
	if m.mode == modeFullScreen && m.fullScreen != nil {
		return m.fullScreen.View()
	}

	body := m.table.View()
	if m.mode == modeFilter || m.filter.Value() != "" {
		body = m.filter.View() + "\n" + body
	}

	return m.layout.Render(
		m.header.View(),
		body,
		m.detailView(),
		m.helpView(),
		m.statusBar.View(),
	)
}

// detailView renders the selected action with its keycaps.
func (m Model) detailView() string {
	idx := m.selected()
	if m.editing >= 0 {
		idx = m.editing
	}
	if idx < 0 {
		return ""
	}

	a := m.cfg.Actions[idx]
	title := m.theme.AppTitle.Render(" " + a.Name + " ")
	if a.Description != "" {
		title += " " + m.theme.StatusBar.Render(a.Description)
	}
	return title + "\n" + m.inputs[idx].View()
}

func (m Model) helpView() string {
	if m.mode == modeCapture {
		return m.help.ShortHelpView(m.keys.CaptureHelp())
	}
	return m.help.View(m.keys)
}

func displayValue(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}

// Value returns the current shortcut of action, for hosts that embed the
// model and for tests.
func (m Model) Value(action string) (string, error) {
	for _, in := range m.inputs {
		if in.Action() == action {
			return in.Value(), in.Err()
		}
	}
	return "", fmt.Errorf("%w: %q", config.ErrActionNotFound, action)
}
