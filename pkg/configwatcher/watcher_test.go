package configwatcher

import (
	"context"
	"course_dash_backend/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, uploads, mode string) {
	t.Helper()
	body := []byte(fmtConfig(uploads, mode))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func fmtConfig(uploads, mode string) string {
	return "database:\n  driver: sqlite\njwt:\n  secret: s3cret\nstorage:\n  local_path: " + uploads +
		"\nserver:\n  mode: " + mode + "\n"
}

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	uploads := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, uploads, "debug")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, path, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, path, uploads, "release-candidate")

	select {
	case cfg := <-reloaded:
		if cfg.Server.Mode != "release-candidate" {
			t.Fatalf("mode: want=%q got=%q", "release-candidate", cfg.Server.Mode)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WatchConfig: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watcher did not stop after cancel")
	}
}
