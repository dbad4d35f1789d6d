package components

import "time"

// UI component constants
const (
	// MaxHistoryEntries bounds the change history kept for the session.
	MaxHistoryEntries = 100

	// FullScreenReservedLines is the number of lines reserved for the title
	// and the footer of full-screen views.
	FullScreenReservedLines = 3

	// StatusBarDisplayDuration is how long status messages are displayed
	// before automatically clearing.
	StatusBarDisplayDuration = 5 * time.Second
)
