package events

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cwarden/monthcal/internal/log"
)

const debounceDelay = 100 * time.Millisecond

// Watcher reports changes to event files. Bursts of writes to the same file
// are collapsed into a single callback.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func(string)

	mu       sync.Mutex
	files    map[string]bool
	debounce map[string]*time.Timer
	done     chan struct{}
}

func NewWatcher(onChange func(string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  watcher,
		onChange: onChange,
		files:    make(map[string]bool),
		debounce: make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}

	go w.watch()
	return w, nil
}

func (w *Watcher) AddFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[absPath] {
		return nil
	}
	if err := w.watcher.Add(absPath); err != nil {
		return err
	}
	w.files[absPath] = true
	return nil
}

func (w *Watcher) RemoveFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.files[absPath] {
		return nil
	}
	delete(w.files, absPath)
	return w.watcher.Remove(absPath)
}

func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.schedule(event)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error("file watcher", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule(event fsnotify.Event) {
	name := event.Name

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.debounce[name]; exists {
		timer.Stop()
	}
	w.debounce[name] = time.AfterFunc(debounceDelay, func() {
		w.fire(name, event.Op)
	})
}

func (w *Watcher) fire(name string, op fsnotify.Op) {
	w.mu.Lock()
	delete(w.debounce, name)
	watching := w.files[name]
	if watching && op&(fsnotify.Rename|fsnotify.Remove) != 0 {
		// Editors that save by rename drop the inotify watch; pick the
		// new file up under the same name.
		if err := w.watcher.Add(name); err != nil {
			log.Debug("file not re-added", "file", name, "err", err)
		}
	}
	w.mu.Unlock()

	if watching && w.onChange != nil {
		log.Debug("event file changed", "file", name, "op", op)
		w.onChange(name)
	}
}

func (w *Watcher) Close() error {
	close(w.done)

	w.mu.Lock()
	for _, timer := range w.debounce {
		timer.Stop()
	}
	w.mu.Unlock()

	return w.watcher.Close()
}
