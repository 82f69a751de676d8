package prefs

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// rehydrateDelay coalesces bursts of file events into one rehydration.
// A compaction rename emits several events back to back.
const rehydrateDelay = 100 * time.Millisecond

// FileWatcher rehydrates the store when the records file changes
// externally, so a preference set in another terminal shows up live.
// Hydrate is idempotent, so reacting to our own writes is harmless.
type FileWatcher struct {
	store    *Store
	filePath string

	watcher *fsnotify.Watcher
	done    chan struct{}

	mu      sync.Mutex
	running bool
}

// NewFileWatcher creates a watcher for the store's records file.
func NewFileWatcher(store *Store, filePath string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FileWatcher{
		store:    store,
		filePath: filePath,
		watcher:  watcher,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directory is watched rather than
// the file itself, so compaction replacing the file does not drop the
// watch.
func (fw *FileWatcher) Start() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.running {
		return nil
	}

	if err := fw.watcher.Add(filepath.Dir(fw.filePath)); err != nil {
		return err
	}
	fw.running = true

	go fw.loop()
	return nil
}

func (fw *FileWatcher) loop() {
	name := filepath.Base(fw.filePath)

	timer := time.NewTimer(rehydrateDelay)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				timer.Reset(rehydrateDelay)
			}

		case <-timer.C:
			slog.Debug("records file changed, rehydrating", "file", fw.filePath)
			if err := fw.store.Hydrate(); err != nil {
				slog.Warn("failed to rehydrate preferences", "error", err)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("records watcher error", "error", err)

		case <-fw.done:
			return
		}
	}
}

// Stop stops watching. Safe to call without a prior Start.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.running {
		return fw.watcher.Close()
	}
	fw.running = false
	close(fw.done)
	return fw.watcher.Close()
}
