package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reloads a tuning file whenever it changes on disk and delivers
// the parsed result on Overrides. Parse failures go to Errors and the
// previous tuning stays in effect.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	Overrides chan *Overrides
	Errors    chan error
	closeCh   chan struct{}
	done      chan struct{}
	once      sync.Once
}

// NewWatcher watches the directory holding path, so editors that replace
// the file on save are still picked up.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher:   w,
		path:      abs,
		Overrides: make(chan *Overrides, 4),
		Errors:    make(chan error, 4),
		closeCh:   make(chan struct{}),
		done:      make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Overrides)
		close(w.Errors)
		close(w.done)
	}()

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < watchDebounce {
				continue
			}
			last = now

			o, err := LoadOverrides(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(o, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send never blocks the watch loop; a consumer that falls behind only
// misses intermediate reloads.
func (w *Watcher) send(o *Overrides, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		default:
			log.Printf("Warning: dropped tuning reload error: %v", err)
		}
		return
	}
	select {
	case w.Overrides <- o:
	default:
	}
}
