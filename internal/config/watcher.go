package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/renato0307/keycap/internal/logging"
)

// reloadDebounce groups the bursts of events editors produce on save.
const reloadDebounce = 100 * time.Millisecond

// Reload is delivered by Watch after the file changed.
type Reload struct {
	Config *Config
	Err    error
}

// Watch reloads the file at path whenever it changes and sends the result on
// the returned channel. The parent directory is watched so that editors
// replacing the file by rename are seen. The channel is closed when ctx is
// done.
func Watch(ctx context.Context, path string) (<-chan Reload, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Reload, 1)
	go run(ctx, w, abs, out)
	return out, nil
}

func run(ctx context.Context, w *fsnotify.Watcher, path string, out chan<- Reload) {
	defer close(out)
	defer w.Close()

	logger := logging.Get().With("component", "config-watcher", "path", path)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			timerCh = timer.C

		case <-timerCh:
			timerCh = nil
			ctxTiming := logging.Start("reload config")
			cfg, err := Load(path)
			logging.End(ctxTiming, "ok", err == nil)
			if err != nil {
				logger.Warn("config reload failed", "error", err)
			}
			select {
			case out <- Reload{Config: cfg, Err: err}:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
