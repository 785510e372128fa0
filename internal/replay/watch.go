package replay

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Watch re-runs Run against path every time its contents change, until ctx
// is cancelled. onRun is called with the result of each run (including the
// first, eager run before any filesystem event arrives), so callers can log
// failures without Watch itself picking a logging strategy.
func Watch[T any](ctx context.Context, path string, w io.Writer, n int, opts Options, onRun func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("replay: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("replay: watch %s: %w", path, err)
	}

	runOnce := func() error {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("replay: open %s: %w", path, err)
		}
		defer f.Close()

		return Run[T](f, w, n, opts)
	}

	onRun(runOnce())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				onRun(runOnce())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			onRun(err)
		}
	}
}
