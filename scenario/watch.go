package scenario

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces bursts of writes from editors.
const debounce = 100 * time.Millisecond

// Watch loads path, calls fn with the result, and calls it again after every
// write, create or rename of the file until ctx is done. Load errors are
// passed to fn and do not stop the watch.
//
// The parent directory is watched so editors that replace the file are seen.
func Watch(ctx context.Context, path string, fn func(*Scenario, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("scenario: watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("scenario: create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("scenario: watch %s: %w", path, err)
	}

	fn(Load(abs))

	ticker := time.NewTicker(debounce)
	defer ticker.Stop()
	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				fn(Load(abs))
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("scenario: watching %s: %w", path, err))
		}
	}
}
