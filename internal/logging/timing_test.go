package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStartEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timing.log")
	if err := Init(Config{FilePath: path, Level: slog.LevelDebug}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Shutdown()

	ctx := Start("load config")
	End(ctx, "actions", 3)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	for _, want := range []string{"load config", "duration=", "actions=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %q", want, out)
		}
	}
}

func TestStartEnd_NoLogging(t *testing.T) {
	Shutdown()

	ctx := Start("noop")
	if ctx.name != "noop" {
		t.Errorf("name = %q, want noop", ctx.name)
	}
	End(ctx)
}
