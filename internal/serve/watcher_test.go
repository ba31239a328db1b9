package serve

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_DetectsModification(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "logo.tsx")
	os.WriteFile(path, []byte("v1"), 0644)

	w := NewWatcher(WatcherConfig{
		Dir:      tmpDir,
		Debounce: 10 * time.Millisecond,
	})

	changes := make(chan Change, 1)
	w.OnChange(func(c Change) {
		select {
		case changes <- c:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	// Let the baseline scan run before touching the file.
	time.Sleep(50 * time.Millisecond)

	now := time.Now().Add(time.Second)
	os.WriteFile(path, []byte("v2"), 0644)
	os.Chtimes(path, now, now)

	select {
	case c := <-changes:
		if c.Path != path {
			t.Errorf("Path = %q, want %q", c.Path, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("change not detected")
	}
}

func TestWatcher_DetectsNewFile(t *testing.T) {
	tmpDir := t.TempDir()

	w := NewWatcher(WatcherConfig{
		Dir:      tmpDir,
		Debounce: 10 * time.Millisecond,
	})

	changes := make(chan Change, 1)
	w.OnChange(func(c Change) {
		select {
		case changes <- c:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	os.WriteFile(filepath.Join(tmpDir, "new.tsx"), []byte("x"), 0644)

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("new file not detected")
	}
}

func TestWatcher_IgnorePatterns(t *testing.T) {
	w := NewWatcher(WatcherConfig{Dir: "."})

	tests := []struct {
		path string
		want bool
	}{
		{path: "templates/.git", want: true},
		{path: "templates/node_modules", want: true},
		{path: "templates/logo.tsx.swp", want: true},
		{path: "templates/logo.tsx~", want: true},
		{path: "templates/logo.tsx", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := w.shouldIgnore(tt.path); got != tt.want {
				t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := NewWatcher(WatcherConfig{Dir: t.TempDir()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	time.Sleep(20 * time.Millisecond)
	if !w.IsRunning() {
		t.Error("watcher should be running")
	}

	w.Stop()
	w.Stop()
	if w.IsRunning() {
		t.Error("watcher should be stopped")
	}
}
