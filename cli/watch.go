package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/exprlex/lexer"
)

// debounceDelay absorbs editors that write a file in several steps.
const debounceDelay = 100 * time.Millisecond

// WatchCmd re-checks a file whenever it changes.
type WatchCmd struct {
	File string `help:"Expression file to watch." arg:"" type:"existingfile"`
}

// Run executes the watch command until interrupted.
func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	styles := applyColor(globals.Color, ctx.Stdout)

	path, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory rather than the file so atomic saves, which
	// replace the file, keep being noticed.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	check := func() {
		contents, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read %s: %v", cmd.File, err)
			return
		}
		buf := lexer.Lex(string(contents))
		reportDiagnostics(ctx.Stdout, ctx.Stderr, cmd.File, buf, "text")
	}

	printInfof(ctx.Stdout, "watching %s", styles.FilePath(cmd.File))
	check()

	runWatcher(runCtx, watcher, path, debounceDelay, check)
	return nil
}

// runWatcher calls onChange, debounced by delay, whenever path is written,
// created, removed or renamed. It returns when ctx is done or the watcher is
// closed, and closes the watcher itself.
func runWatcher(ctx context.Context, watcher *fsnotify.Watcher, path string, delay time.Duration, onChange func()) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(delay, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}
