// Package messages holds the conventions for reporting outcomes to the user.
//
// Library packages (internal/shortcut, internal/capture, internal/config)
// return plain errors wrapped with %w and never know about the UI. The UI
// layer (internal/app, internal/components) turns outcomes into
// types.StatusMsg values through the helpers here, and the status bar
// renders them:
//
//	func copyShortcut(value string) tea.Cmd {
//	    if err := clipboard.WriteAll(value); err != nil {
//	        return messages.ErrorCmd("Copy failed: %v", err)
//	    }
//	    return messages.SuccessCmd("Copied %s", value)
//	}
//
// Shortcut validation errors are not status messages: each input shows its
// own error in place of its keycaps.
package messages
