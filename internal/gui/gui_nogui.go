//go:build nogui

package gui

import (
	"errors"

	"github.com/renato0307/keycap/internal/config"
)

// ErrUnavailable is returned by Run in builds without the desktop host.
var ErrUnavailable = errors.New("desktop window not available in this build, use the terminal interface")

// Options configures the desktop window.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Reloads    <-chan config.Reload
}

// Available reports whether this build includes the desktop host.
func Available() bool {
	return false
}

// Run is a stub for builds with the desktop host disabled.
func Run(Options) error {
	return ErrUnavailable
}
