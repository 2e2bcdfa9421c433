package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher watches the override file for changes. It powers debug-mode live
// reload: Settings are immutable once loaded, so a change is surfaced to the
// caller, which restarts the process rather than mutating in place.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func()
	logger   *zap.Logger
	stopCh   chan struct{}
}

// NewWatcher creates a watcher for the override file at path. The file does
// not have to exist yet; creating it later also counts as a change.
func NewWatcher(path string, onChange func(), logger *zap.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory rather than the file: editors and atomic saves
	// replace the file, which would silently drop a file-level watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		path:     path,
		watcher:  watcher,
		onChange: onChange,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching for changes
func (w *Watcher) Start() {
	go w.watchLoop()
	w.logger.Info("Override file watcher started", zap.String("path", w.path))
}

// Stop stops watching for changes
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	w.logger.Info("Override file watcher stopped")
}

func (w *Watcher) watchLoop() {
	// Debounce timer to avoid firing once per write syscall
	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}

				debounceTimer = time.AfterFunc(debounceDuration, func() {
					w.logger.Info("Override file changed", zap.String("path", w.path))
					w.onChange()
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))
		}
	}
}
