package types

import (
	"github.com/renato0307/keycap/internal/config"
)

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

type StatusMsg struct {
	Message string
	Type    MessageType
}

type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}

// ChangeSource tells where a shortcut change came from.
type ChangeSource string

const (
	SourceCapture ChangeSource = "capture"
	SourceClear   ChangeSource = "clear"
	SourceReset   ChangeSource = "reset"
	SourceReload  ChangeSource = "reload"
)

// ShortcutChangedMsg is sent when an input's committed shortcut changes,
// either by a capture or by a value set from outside.
type ShortcutChangedMsg struct {
	Action string
	Value  string
	Source ChangeSource
}

// ConfigReloadedMsg carries the result of a configuration file reload.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// FilterUpdateMsg narrows the action table.
type FilterUpdateMsg struct {
	Filter string
}

type ClearFilterMsg struct{}
