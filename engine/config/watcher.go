package config

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/ombralabs/ombra/engine/core"
	"github.com/ombralabs/ombra/engine/event"
)

// Watcher observes a configuration file and posts a ConfigChangedEvent
// through the dispatcher whenever it is rewritten. The event is posted,
// not fired: the watcher runs on its own goroutine and delivery happens
// when the engine loop drains the posted queue.
type Watcher struct {
	fsnotify   *fsnotify.Watcher
	dispatcher *event.Dispatcher
	path       string
	done       chan struct{}
	isClosed   bool
}

func NewWatcher(path string, dispatcher *event.Dispatcher) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsnotify:   fsWatch,
		dispatcher: dispatcher,
		path:       filepath.Clean(path),
		done:       make(chan struct{}),
	}, nil
}

// Start begins watching the config file's directory. Watching the
// directory instead of the file survives the rename-and-replace dance
// most editors do on save.
func (w *Watcher) Start() error {
	if w.isClosed {
		return errors.New("watcher instance already closed")
	}
	if err := w.fsnotify.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.run()
	return nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				core.LogDebug("config file %s changed", w.path)
				w.dispatcher.Post(event.NewConfigChangedEvent(w.path))
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %s", err)
		}
	}
}

func (w *Watcher) Close() error {
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}
