package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Add(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		h := NewHistory()
		h.Add(Change{Action: "open-file", Value: "Control+O", Source: SourceCapture})
		h.Add(Change{Action: "save-file", Value: "Control+S", Source: SourceCapture})

		entries := h.GetAll()
		assert.Len(t, entries, 2)
		assert.Equal(t, "save-file", entries[0].Action)
		assert.Equal(t, "open-file", entries[1].Action)
	})

	t.Run("bounded - oldest removed when exceeding max", func(t *testing.T) {
		h := NewHistory()
		base := time.Now()
		for i := 0; i < MaxHistoryEntries+1; i++ {
			h.Add(Change{Action: "zoom-in", Timestamp: base.Add(time.Duration(i) * time.Second)})
		}

		assert.Equal(t, MaxHistoryEntries, h.Count())
		entries := h.GetAll()
		assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))
		assert.Equal(t, base.Add(time.Second), entries[len(entries)-1].Timestamp)
	})

	t.Run("GetAll returns a copy", func(t *testing.T) {
		h := NewHistory()
		h.Add(Change{Action: "open-file"})

		entries := h.GetAll()
		entries[0].Action = "changed"
		assert.Equal(t, "open-file", h.GetAll()[0].Action)
	})
}

func TestHistory_Render(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, "No changes yet", h.Render())

	h.Add(Change{
		Action:    "open-file",
		Previous:  "Control+O",
		Source:    SourceClear,
		Timestamp: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
	})
	out := h.Render()
	assert.Contains(t, out, "09:30:00")
	assert.Contains(t, out, "clear")
	assert.Contains(t, out, "Control+O → (none)")
}
