//go:build !nogui

// Package gui is the desktop host. Its entries receive real key-down and
// key-up events from the windowing system.
package gui

import (
	"fmt"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/renato0307/keycap/internal/capture"
	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/messages"
)

// Options configures the desktop window.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Reloads    <-chan config.Reload
}

// Available reports whether this build includes the desktop host.
func Available() bool {
	return true
}

// Panel lists the configured actions, one entry each.
type Panel struct {
	// mu guards cfg and entries against the reload goroutine
	mu      sync.Mutex
	cfg     *config.Config
	entries map[string]*ShortcutEntry
	status  *widget.Label
	content *fyne.Container

	// onMain runs widget updates that start on another goroutine
	onMain func(func())
}

// runNow is the onMain of fyne 2.5, whose widgets may be updated from any
// goroutine.
// TODO: use fyne.Do once fyne is upgraded to 2.6.
func runNow(fn func()) {
	fn()
}

// NewPanel builds the widgets for cfg.
func NewPanel(cfg *config.Config) (*Panel, error) {
	p := &Panel{
		status: widget.NewLabel(""),
		onMain: runNow,
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.load(cfg, nil); err != nil {
		return nil, err
	}
	return p, nil
}

// load rebuilds the rows. Values in current win over the configured ones.
// Callers hold mu.
func (p *Panel) load(cfg *config.Config, current map[string]string) error {
	allowed, err := cfg.Modifiers()
	if err != nil {
		return err
	}

	p.cfg = cfg
	p.entries = make(map[string]*ShortcutEntry, len(cfg.Actions))

	rows := container.NewGridWithColumns(3)
	for _, a := range cfg.Actions {
		name := a.Name
		entry := NewShortcutEntry(cfg.Placeholder,
			capture.WithAllowedModifiers(allowed),
			capture.WithLogger(logging.Get().With("action", name)),
		)
		value, ok := current[name]
		if !ok {
			value = a.Shortcut
		}
		// the initial value is not a change
		entry.SetText(value)
		entry.OnChanged = func(value string) {
			logging.Info("Shortcut changed", "action", name, "value", value)
			if value == "" {
				p.status.SetText(fmt.Sprintf("%s cleared", name))
				return
			}
			p.status.SetText(fmt.Sprintf("%s → %s", name, value))
		}

		clearButton := widget.NewButton("Clear", func() {
			entry.SetText("")
		})

		title := widget.NewLabelWithStyle(name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		rows.Add(title)
		rows.Add(entry)
		rows.Add(clearButton)

		p.entries[name] = entry
	}

	if p.content == nil {
		p.content = container.NewBorder(nil, p.status, nil, nil, rows)
	} else {
		p.content.Objects = []fyne.CanvasObject{rows, p.status}
		p.content.Refresh()
	}
	return nil
}

// Content returns the root object to place in a window.
func (p *Panel) Content() fyne.CanvasObject {
	return p.content
}

// Entry returns the entry of action, or nil.
func (p *Panel) Entry(action string) *ShortcutEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.entries[action]
}

// Status returns the text of the status line.
func (p *Panel) Status() string {
	return p.status.Text
}

// ApplyReload takes a configuration reloaded from disk. Actions whose
// configured string changed take the new value; the rest keep what the
// user recorded, or their invalid configured string. It may be called from
// any goroutine.
func (p *Panel) ApplyReload(r config.Reload) {
	p.onMain(func() { p.applyReload(r) })
}

func (p *Panel) applyReload(r config.Reload) {
	if r.Err != nil {
		logging.Warn("Config reload failed", "error", r.Err)
		p.status.SetText(fmt.Sprintf("Reload failed: %v", r.Err))
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	changed := p.cfg.Changed(r.Config)
	current := make(map[string]string, len(p.entries))
	for _, a := range p.cfg.Actions {
		e := p.entries[a.Name]
		if e == nil {
			continue
		}
		current[a.Name] = e.Text()
		if e.Err() != nil {
			current[a.Name] = a.Shortcut
		}
	}

	if err := p.load(r.Config, current); err != nil {
		p.status.SetText(fmt.Sprintf("Reload failed: %v", err))
		return
	}
	for _, a := range r.Config.Actions {
		if value, ok := changed[a.Name]; ok {
			p.entries[a.Name].SetText(value)
		}
	}
	p.status.SetText(fmt.Sprintf("Config reloaded, %d shortcut(s) changed", len(changed)))
}

// Snapshot returns the configuration with the shortcuts currently shown.
func (p *Panel) Snapshot() *config.Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

func (p *Panel) snapshot() *config.Config {
	out := *p.cfg
	out.Actions = make([]config.Action, len(p.cfg.Actions))
	for i, a := range p.cfg.Actions {
		if e := p.entries[a.Name]; e != nil && e.Err() == nil {
			a.Shortcut = e.Text()
		}
		out.Actions[i] = a
	}
	return &out
}

// Save writes the current shortcuts to path.
func (p *Panel) Save(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := p.snapshot()
	data, err := snapshot.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return messages.WrapError(err, "writing %s", path)
	}
	p.cfg = snapshot
	return nil
}

// Run opens the desktop window and blocks until it is closed.
func Run(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	panel, err := NewPanel(cfg)
	if err != nil {
		return err
	}

	a := app.NewWithID("io.github.renato0307.keycap")
	w := a.NewWindow("keycap")

	var toolbar fyne.CanvasObject = widget.NewLabel("")
	if opts.ConfigPath != "" {
		toolbar = widget.NewButton("Save", func() {
			if err := panel.Save(opts.ConfigPath); err != nil {
				logging.Error("Save failed", "error", err)
				panel.status.SetText(fmt.Sprintf("Save failed: %v", err))
				return
			}
			panel.status.SetText("Saved " + opts.ConfigPath)
		})
	}

	if opts.Reloads != nil {
		go func() {
			for r := range opts.Reloads {
				panel.ApplyReload(r)
			}
		}()
	}

	w.SetContent(container.NewBorder(toolbar, nil, nil, nil, panel.Content()))
	w.Resize(fyne.NewSize(640, 420))
	logging.Info("Desktop window opened", "actions", len(cfg.Actions))
	w.ShowAndRun()
	return nil
}
