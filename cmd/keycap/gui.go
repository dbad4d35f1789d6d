package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/renato0307/keycap/internal/gui"
)

// NewGUICmd creates the desktop window command
func NewGUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Edit shortcuts in a desktop window",
		Long: `Edit the configured shortcuts in a desktop window. The window receives
key releases, so combinations are recorded exactly as pressed and held.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			reloads, err := c.watch(ctx)
			if err != nil {
				return err
			}

			return gui.Run(gui.Options{
				Config:     c.cfg,
				ConfigPath: c.configPath,
				Reloads:    reloads,
			})
		},
	}
}
