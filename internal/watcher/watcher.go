// Package watcher re-runs the diff when a nix-darwin profile changes.
//
// A rebuild swaps the profile symlink and rewrites the activation script,
// which shows up as create/write/rename events on the profile directory.
// Events are debounced because a single rebuild produces a burst of them.
package watcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a profile directory and invokes a callback, debounced,
// whenever its contents change.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()

	fw     *fsnotify.Watcher
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a watcher for the given profile directory. onChange runs on
// the watcher's goroutine after events have settled for the debounce
// interval.
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback cannot be nil")
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the filesystem watch is
// established; events are handled on a background goroutine until Stop.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}

	if err := fw.Add(w.path); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	w.fw = fw
	w.wg.Add(1)
	go w.run()

	return nil
}

// run consumes filesystem events and fires the debounced callback.
func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.onChange()

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}

		case <-w.stopCh:
			return
		}
	}
}

// Stop halts the watcher and waits for the event goroutine to exit.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	var err error
	if w.fw != nil {
		err = w.fw.Close()
	}
	w.wg.Wait()
	return err
}
