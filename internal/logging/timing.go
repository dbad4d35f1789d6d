package logging

import (
	"time"
)

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
}

// Start begins a timing measurement. Pair it with End.
//
//	ctx := logging.Start("load config")
//	cfg, err := config.Load(path)
//	logging.End(ctx, "path", path)
func Start(name string) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
	}
}

// End logs the time elapsed since Start at debug level, with extra
// key-value pairs appended.
func End(ctx TimingContext, args ...any) {
	if !IsEnabled() {
		return
	}

	duration := time.Since(ctx.startTime)
	attrs := append([]any{
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	}, args...)
	Get().Debug(ctx.name, attrs...)
}
