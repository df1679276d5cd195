// Package watcher reports changes to registration files made outside the application.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay collapses bursts of events on the same file.
const debounceDelay = 100 * time.Millisecond

// Event reports that a watched file was created, written, renamed or removed.
type Event struct {
	Path string
}

// Watcher watches a set of files through their parent directories.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
	files      map[string]bool
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a new file watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		files:      make(map[string]bool),
		debounce:   make(map[string]*time.Timer),
	}, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// WatchFile adds path. Its directory must exist; a missing directory is
// logged and skipped.
func (w *Watcher) WatchFile(path string) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	if err := w.fsWatcher.Add(dir); err != nil {
		log.Printf("[watcher] Warning: failed to watch %s: %v", dir, err)
		return
	}

	w.mu.Lock()
	w.files[path] = true
	w.mu.Unlock()
	log.Printf("[watcher] Watching %s", path)
}

// Start starts processing events.
func (w *Watcher) Start() {
	go w.processEvents()
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		for path, timer := range w.debounce {
			timer.Stop()
			delete(w.debounce, path)
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[watcher] Watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	path := filepath.Clean(event.Name)
	w.mu.RLock()
	watched := w.files[path]
	w.mu.RUnlock()
	if !watched {
		return
	}

	w.debounceEvent(path, func() {
		select {
		case w.eventsChan <- Event{Path: path}:
		case <-w.done:
		}
	})
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(debounceDelay, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}
