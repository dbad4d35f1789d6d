package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/shortcut"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keycap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCmd(t *testing.T) {
	t.Run("canonicalizes arguments", func(t *testing.T) {
		out, _, err := execute(t, "", "parse", "Shift+Control+p", "Alt+Space")
		require.NoError(t, err)
		assert.Equal(t, "Control+Shift+p\nAlt+Space\n", out)
	})

	t.Run("display labels", func(t *testing.T) {
		out, _, err := execute(t, "", "parse", "--display", "Control+Plus")
		require.NoError(t, err)
		assert.Equal(t, "Control+Plus\tCtrl +\n", out)
	})

	t.Run("reads stdin", func(t *testing.T) {
		out, _, err := execute(t, "Control+S\n\nMeta+K\n", "parse")
		require.NoError(t, err)
		assert.Equal(t, "Control+S\nMeta+K\n", out)
	})

	t.Run("reports every invalid input", func(t *testing.T) {
		out, errOut, err := execute(t, "", "parse", "Control", "Control+S", "A")
		require.ErrorIs(t, err, errInvalidShortcuts)
		assert.Equal(t, "Control+S\n", out)
		assert.Contains(t, errOut, `"Control": No main key (NO_MAIN_KEY)`)
		assert.Contains(t, errOut, `"A": No modifier keys (NO_MODIFIER_KEYS)`)
		assert.Contains(t, err.Error(), "2 of 3")
	})

	t.Run("allow list", func(t *testing.T) {
		_, errOut, err := execute(t, "", "parse", "--allow", "Control", "Alt+K")
		require.Error(t, err)
		assert.Contains(t, errOut, "NO_MODIFIER_KEYS")
	})

	t.Run("unknown allowed modifier", func(t *testing.T) {
		_, _, err := execute(t, "", "parse", "--allow", "Hyper", "Control+K")
		assert.ErrorIs(t, err, shortcut.ErrUnknownModifier)
	})
}

func TestFormatCmd(t *testing.T) {
	path := writeConfig(t, `
actions:
  - name: open-file
    description: Open a file
    shortcut: Shift+Control+O
  - name: broken
    shortcut: Control
`)

	t.Run("table", func(t *testing.T) {
		out, _, err := execute(t, "", "format", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "ACTION")
		assert.Contains(t, out, "Control+Shift+O")
		assert.Contains(t, out, "No main key (NO_MAIN_KEY)")
	})

	t.Run("yaml", func(t *testing.T) {
		out, _, err := execute(t, "", "format", "--yaml", "--config", path)
		require.NoError(t, err)

		cfg, err := config.Parse([]byte(out))
		require.NoError(t, err)
		open, err := cfg.Action("open-file")
		require.NoError(t, err)
		assert.Equal(t, "Control+Shift+O", open.Shortcut)
		broken, err := cfg.Action("broken")
		require.NoError(t, err)
		assert.Equal(t, "Control", broken.Shortcut)
	})

	t.Run("defaults without config", func(t *testing.T) {
		out, _, err := execute(t, "", "format")
		require.NoError(t, err)
		assert.Contains(t, out, "command-palette")
	})
}

func TestRootCmd_ConfigErrors(t *testing.T) {
	_, _, err := execute(t, "", "format", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeConfig(t, "actions:\n  - name: a\n  - name: a\n")
	_, _, err = execute(t, "", "format", "--config", path)
	assert.ErrorIs(t, err, config.ErrDuplicateAction)
}
