//go:build e2e

// E2E tests drive the full program through testutil.TestProgram.
package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keycap/internal/testutil"
)

func TestE2E_RecordShortcut(t *testing.T) {
	m, err := NewModel(Options{Clipboard: func(string) error { return nil }})
	require.NoError(t, err)

	tp := testutil.NewTestProgram(t, m, 120, 30)

	assert.True(t, tp.WaitForOutput("open-file", 2*time.Second))

	tp.SendKey(tea.KeyEnter)
	assert.True(t, tp.WaitForOutput("recording open-file", 2*time.Second))

	tp.SendAlt('k')
	assert.True(t, tp.WaitForMessage("success", 2*time.Second))
	tp.AssertContains("Alt+K")

	tp.SendKey(tea.KeyEsc)
	tp.Type("y")
	assert.True(t, tp.WaitForOutput("Copied Alt+K", 2*time.Second))

	tp.Type("q")
	final := tp.FinalModel(2 * time.Second).(Model)
	v, err := final.Value("open-file")
	require.NoError(t, err)
	assert.Equal(t, "Alt+K", v)
}

func TestE2E_Filter(t *testing.T) {
	m, err := NewModel(Options{})
	require.NoError(t, err)

	tp := testutil.NewTestProgram(t, m, 120, 30)
	defer tp.Quit()

	tp.Type("/zoom")
	assert.True(t, tp.WaitForOutput("1 of 7 actions", 2*time.Second))
	tp.SendKey(tea.KeyEnter)
	tp.AssertContains("zoom-in")
}
