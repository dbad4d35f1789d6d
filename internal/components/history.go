package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/keycap/internal/types"
)

// ChangeSource is the source recorded with each history entry.
type ChangeSource = types.ChangeSource

const (
	SourceCapture = types.SourceCapture
	SourceClear   = types.SourceClear
	SourceReset   = types.SourceReset
	SourceReload  = types.SourceReload
)

// Change is one shortcut change made during the session.
type Change struct {
	Action    string
	Previous  string
	Value     string
	Source    ChangeSource
	Timestamp time.Time
}

// History keeps the most recent changes. It is owned by the model and only
// touched from Update, so it does no locking.
type History struct {
	entries []Change
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{
		entries: make([]Change, 0, MaxHistoryEntries),
	}
}

// Add appends entry, dropping the oldest past MaxHistoryEntries.
func (h *History) Add(entry Change) {
	h.entries = append(h.entries, entry)
	if len(h.entries) > MaxHistoryEntries {
		h.entries = h.entries[len(h.entries)-MaxHistoryEntries:]
	}
}

// GetAll returns all entries, newest first
func (h *History) GetAll() []Change {
	result := make([]Change, len(h.entries))
	for i, entry := range h.entries {
		result[len(h.entries)-1-i] = entry
	}
	return result
}

// Count returns number of entries
func (h *History) Count() int {
	return len(h.entries)
}

// Render formats the history for the full-screen view, newest first.
func (h *History) Render() string {
	entries := h.GetAll()
	if len(entries) == 0 {
		return "No changes yet"
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s  %-8s %-20s %s → %s",
			e.Timestamp.Format("15:04:05"), e.Source, e.Action,
			orNone(e.Previous), orNone(e.Value))
	}
	return strings.Join(lines, "\n")
}

func orNone(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}
