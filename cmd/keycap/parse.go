package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renato0307/keycap/internal/shortcut"
)

// errInvalidShortcuts makes the command exit non-zero after all input was
// reported.
var errInvalidShortcuts = errors.New("invalid shortcuts")

// NewParseCmd creates the parse command
func NewParseCmd(c *cli) *cobra.Command {
	var display bool

	cmd := &cobra.Command{
		Use:   "parse [shortcut...]",
		Short: "Validate shortcut strings and print their canonical form",
		Long: `Validate shortcut strings and print their canonical form, one per line.
Without arguments, shortcuts are read from standard input.`,
		Example: `  keycap parse "Shift+Control+p"
  keycap parse --allow Control,Alt "Alt+Space"
  printf 'Control+S\nAlt\n' | keycap parse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			allowed, err := c.cfg.Modifiers()
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := scanner.Text(); strings.TrimSpace(line) != "" {
						inputs = append(inputs, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
			}

			invalid := 0
			for _, raw := range inputs {
				v, err := shortcut.Parse(raw, allowed)
				if err != nil {
					invalid++
					fmt.Fprintf(cmd.ErrOrStderr(), "%q: %s\n", raw, describe(err))
					continue
				}

				line := shortcut.Serialize(v)
				if display {
					line += "\t" + strings.Join(shortcut.DisplayKeys(v), " ")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidShortcuts, invalid, len(inputs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&display, "display", false, "also print the keycap labels")
	return cmd
}

// describe renders validation errors with their stable code.
func describe(err error) string {
	var verr shortcut.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("%s (%s)", verr.Message(), verr.Code())
	}
	return err.Error()
}
