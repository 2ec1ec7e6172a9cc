package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/fsnotify/fsnotify"
)

func TestRunWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.expr")
	assert.NoError(t, os.WriteFile(path, []byte("1"), 0o600))

	watcher, err := fsnotify.NewWatcher()
	assert.NoError(t, err)
	assert.NoError(t, watcher.Add(dir))

	var calls atomic.Int32
	changed := make(chan struct{}, 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runWatcher(ctx, watcher, path, 50*time.Millisecond, func() {
			calls.Add(1)
			changed <- struct{}{}
		})
		close(done)
	}()

	// A burst of writes collapses into a single callback.
	for _, contents := range []string{"1 +", "1 + 2", "1 + 2 * 3"} {
		assert.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	}

	// Writes to other files in the directory are ignored.
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "other.expr"), []byte("4"), 0o600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
