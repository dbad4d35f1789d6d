package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/shortcut"
	"github.com/renato0307/keycap/internal/ui"
)

// NewFormatCmd creates the format command
func NewFormatCmd(c *cli) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Print the configured actions with canonical shortcuts",
		Long: `Print the configured actions with their shortcuts in canonical form.
With --yaml the whole configuration is written back as YAML; shortcuts that
do not validate are kept as written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			allowed, err := c.cfg.Modifiers()
			if err != nil {
				return err
			}

			canonical, problems := canonicalize(c.cfg, allowed)
			if asYAML {
				data, err := canonical.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			theme := ui.GetTheme(c.cfg.Theme)
			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
				Headers("ACTION", "SHORTCUT", "DESCRIPTION")
			for _, a := range canonical.Actions {
				value := a.Shortcut
				if problem, ok := problems[a.Name]; ok {
					value = fmt.Sprintf("%s ✗ %s", a.Shortcut, problem)
				}
				t.Row(a.Name, value, a.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the configuration as YAML")
	return cmd
}

// canonicalize returns a copy of cfg with every valid shortcut in canonical
// form, and the validation message of the others by action name.
func canonicalize(cfg *config.Config, allowed shortcut.ModifierSet) (*config.Config, map[string]string) {
	out := *cfg
	out.Actions = make([]config.Action, len(cfg.Actions))
	problems := make(map[string]string)

	for i, a := range cfg.Actions {
		v, err := shortcut.Parse(a.Shortcut, allowed)
		if err != nil {
			problems[a.Name] = describe(err)
		} else {
			a.Shortcut = shortcut.Serialize(v)
		}
		out.Actions[i] = a
	}
	return &out, problems
}
