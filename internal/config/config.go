// Package config loads the keycap configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/shortcut"
)

// DefaultPlaceholder is shown by an input that has nothing to display.
const DefaultPlaceholder = "Press Shortcut"

var (
	// ErrDuplicateAction is returned when two actions share a name.
	ErrDuplicateAction = errors.New("duplicate action name")
	// ErrActionNotFound is returned when looking up an unknown action.
	ErrActionNotFound = errors.New("action not found")
	// ErrEmptyActionName is returned when an action has no name.
	ErrEmptyActionName = errors.New("action name is empty")
)

// Action is a named command whose shortcut the user edits.
type Action struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Shortcut is the canonical string. It may be invalid; the input that
	// owns the action reports the problem instead of the loader.
	Shortcut string `json:"shortcut,omitempty"`
}

// LogConfig mirrors logging.Config in file form.
type LogConfig struct {
	File       string `json:"file,omitempty"`
	Level      string `json:"level,omitempty"`
	Format     string `json:"format,omitempty"`
	MaxSizeMB  int    `json:"maxSizeMB,omitempty"`
	MaxBackups int    `json:"maxBackups,omitempty"`
}

// Config is the content of the configuration file.
type Config struct {
	Theme            string    `json:"theme,omitempty"`
	Placeholder      string    `json:"placeholder,omitempty"`
	AllowedModifiers []string  `json:"allowedModifiers,omitempty"`
	Log              LogConfig `json:"log"`
	Actions          []Action  `json:"actions"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Theme:       "charm",
		Placeholder: DefaultPlaceholder,
		Actions: []Action{
			{Name: "open-file", Description: "Open a file", Shortcut: "Control+O"},
			{Name: "save-file", Description: "Save the current file", Shortcut: "Control+S"},
			{Name: "command-palette", Description: "Show the command palette", Shortcut: "Control+Shift+P"},
			{Name: "toggle-sidebar", Description: "Show or hide the sidebar", Shortcut: "Control+B"},
			{Name: "quick-search", Description: "Search everywhere", Shortcut: "Alt+Space"},
			{Name: "zoom-in", Description: "Increase the font size", Shortcut: "Control+Plus"},
			{Name: "close-window", Description: "Close the window"},
		},
	}
}

// Load reads and validates the file at path. Missing optional fields take
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML configuration.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "charm"
	}
	if c.Placeholder == "" {
		c.Placeholder = DefaultPlaceholder
	}
}

// Validate checks the allow-list and action names.
func (c *Config) Validate() error {
	if _, err := c.Modifiers(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(c.Actions))
	for i, a := range c.Actions {
		if a.Name == "" {
			return fmt.Errorf("action %d: %w", i, ErrEmptyActionName)
		}
		if _, ok := seen[a.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateAction, a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	return nil
}

// Modifiers returns the allow-list. An empty list allows every modifier.
func (c *Config) Modifiers() (shortcut.ModifierSet, error) {
	set, err := shortcut.ParseModifierSet(c.AllowedModifiers)
	if err != nil {
		return shortcut.ModifierSet{}, fmt.Errorf("allowedModifiers: %w", err)
	}
	return set, nil
}

// Action returns the action called name.
func (c *Config) Action(name string) (Action, error) {
	for _, a := range c.Actions {
		if a.Name == name {
			return a, nil
		}
	}
	return Action{}, fmt.Errorf("%w: %q", ErrActionNotFound, name)
}

// Logging converts the log section into a logging.Config.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return data, nil
}

// Changed returns the actions of next whose shortcut string differs from
// the one in c, keyed by action name. Actions that only exist in next are
// included.
func (c *Config) Changed(next *Config) map[string]string {
	prev := make(map[string]string, len(c.Actions))
	for _, a := range c.Actions {
		prev[a.Name] = a.Shortcut
	}

	changed := make(map[string]string)
	for _, a := range next.Actions {
		if old, ok := prev[a.Name]; !ok || old != a.Shortcut {
			changed[a.Name] = a.Shortcut
		}
	}
	return changed
}
