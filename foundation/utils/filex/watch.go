// File: watch.go
// Title: File Change Notification
// Description: Watches a single file through fsnotify and calls back once a
//              burst of writes has settled.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package filex

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

// DefaultDebounce is the quiet period WatchFile waits for after the last event
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes of one file until it is closed or its context
// ends.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	done    chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// WatchFile calls onChange whenever path is written, created or replaced.
// Events closer together than debounce are merged into one call. The
// directory of path is watched so that editors which save by renaming a
// temporary file are noticed too. Watching starts before WatchFile returns;
// onChange runs on the watcher goroutine.
func WatchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleFilex, "watch", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleFilex, "watch", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, mdwerrors.FilexReadFailed(abs, err)
	}

	w := &Watcher{watcher: fw, path: abs, done: make(chan struct{})}
	go w.loop(ctx, debounce, onChange)
	return w, nil
}

func (w *Watcher) loop(ctx context.Context, debounce time.Duration, onChange func()) {
	defer close(w.done)
	defer w.Close()

	logger := mdwlog.GetDefault().WithName("filex.watch").WithField("path", w.path)

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Trace("file event", mdwlog.Field("op", event.Op.String()))
			settle = time.After(debounce)

		case <-settle:
			settle = nil
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.WarnWithErr("watcher error", err)
		}
	}
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Done is closed when the watcher has stopped
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.watcher.Close()
	})
	return w.closeErr
}
