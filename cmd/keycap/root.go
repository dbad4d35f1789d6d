package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/ui"
)

// cli holds the flags shared by all subcommands and the configuration they
// resolve to.
type cli struct {
	configPath string
	theme      string
	logFile    string
	logLevel   string
	allow      []string

	cfg *config.Config
}

// NewRootCmd creates the root command. Without a subcommand it starts the
// terminal interface.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "keycap",
		Short: "Record and validate keyboard shortcuts",
		Long: `keycap records keyboard shortcuts by listening to the keys you press,
validates them and stores them as canonical strings such as Control+Shift+P.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Shutdown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (YAML); reloaded when it changes")
	flags.StringVar(&c.theme, "theme", "", fmt.Sprintf("theme to use %v", ui.AvailableThemes()))
	flags.StringVar(&c.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringSliceVar(&c.allow, "allow", nil, "modifiers recognized while recording, e.g. Control,Alt")

	rootCmd.AddCommand(NewTUICmd(c))
	rootCmd.AddCommand(NewGUICmd(c))
	rootCmd.AddCommand(NewParseCmd(c))
	rootCmd.AddCommand(NewFormatCmd(c))

	return rootCmd
}

// load reads the configuration file, applies flag overrides and starts
// logging.
func (c *cli) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("theme") {
		cfg.Theme = c.theme
	}
	if cmd.Flags().Changed("allow") {
		cfg.AllowedModifiers = c.allow
	}
	if c.logFile != "" {
		cfg.Log.File = c.logFile
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Init(cfg.Logging()); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	logging.Debug("Configuration loaded", "path", c.configPath, "actions", len(cfg.Actions), "theme", cfg.Theme)

	c.cfg = cfg
	return nil
}
