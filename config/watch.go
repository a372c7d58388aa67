package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single file and invokes a callback whenever it is
// written or created. It is a thin, additive convenience: nothing in
// buffer or workspace requires it to be running.
type Watcher struct {
	fw   *fsnotify.Watcher
	path string
	done chan struct{}
}

// NewWatcher starts watching path's containing directory (fsnotify watches
// directories, not bare files, so editors that replace a file via
// rename-over still trigger a notification) and calls onChange for every
// write or create event on path itself.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatchFailed, err)
	}
	clean := filepath.Clean(path)
	if err := fw.Add(filepath.Dir(clean)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("%w: %v", ErrWatchFailed, err)
	}

	w := &Watcher{fw: fw, path: clean, done: make(chan struct{})}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func()) {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				onChange()
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
