// SPDX-License-Identifier: MIT

package level

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Loader reads a levels file and optionally hot-reloads it when it changes.
// A failed reload keeps the previous levels in place.
type Loader struct {
	path     string
	logger   *slog.Logger
	mu       sync.RWMutex
	current  []Level
	onChange []func([]Level)
}

// NewLoader performs the initial load of path. A nil logger discards output.
func NewLoader(path string, logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Loader{path: filepath.Clean(path), logger: logger}
	ls, err := LoadFile(l.path)
	if err != nil {
		return nil, err
	}
	l.current = ls
	l.warnUnsolvable(ls)

	return l, nil
}

// Levels returns a copy of the latest successfully loaded levels.
func (l *Loader) Levels() []Level {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return clone(l.current)
}

// OnChange registers fn to run after every successful reload.
func (l *Loader) OnChange(fn func([]Level)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file immediately and notifies subscribers on success.
func (l *Loader) Reload() ([]Level, error) {
	ls, err := LoadFile(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = ls
	callbacks := make([]func([]Level), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()

	for _, fn := range callbacks {
		fn(clone(ls))
	}
	l.logger.Info("levels reloaded", "path", l.path, "count", len(ls))
	l.warnUnsolvable(ls)

	return ls, nil
}

// Watch reloads the file whenever it is written or replaced. The parent
// directory is watched so that editors which save via rename are seen too.
// Call stop to release the watcher; it waits for an in-flight reload, so it
// must not be called from an OnChange callback.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("level watcher: %w", err)
	}
	dir := filepath.Dir(l.path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("level watcher add %s: %w", dir, err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != l.path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if _, err := l.Reload(); err != nil {
					l.logger.Warn("level reload failed, keeping previous levels", "path", l.path, "error", err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.logger.Warn("level watcher error", "error", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once

	// stop returns only after the goroutine has exited, so no OnChange
	// callback runs once it has returned.
	return func() {
		once.Do(func() { close(done) })
		wg.Wait()
	}, nil
}

// warnUnsolvable logs the levels no route can win; they still load.
func (l *Loader) warnUnsolvable(ls []Level) {
	for _, lv := range ls {
		if err := Solvable(lv); err != nil {
			l.logger.Warn("level cannot be won", "path", l.path, "error", err)
		}
	}
}
