package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renato0307/keycap/internal/app"
	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/ui"
)

// NewTUICmd creates the terminal interface command
func NewTUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit shortcuts in the terminal",
		Long: `Edit the configured shortcuts in the terminal. Terminals do not report key
releases, so every key press is recorded as a complete combination.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd)
		},
	}
}

func (c *cli) runTUI(cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	reloads, err := c.watch(ctx)
	if err != nil {
		return err
	}

	model, err := app.NewModel(app.Options{
		Config:     c.cfg,
		ConfigPath: c.configPath,
		Theme:      ui.GetTheme(c.cfg.Theme),
		Reloads:    reloads,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// watch starts the config watcher when a file was given.
func (c *cli) watch(ctx context.Context) (<-chan config.Reload, error) {
	if c.configPath == "" {
		return nil, nil
	}
	return config.Watch(ctx, c.configPath)
}
