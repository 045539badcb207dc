// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package file

import (
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates downstream cached views when the template catalog
// directory changes on disk. Without it, catalog edits would be served stale
// until the cache TTL expires.
type Watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// WatchTemplates starts watching dir and calls onChange whenever a Markdown
// file is created, modified, removed, or renamed there. onChange is invoked
// from the watcher goroutine and must be safe for concurrent use.
func WatchTemplates(dir string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{fsw: fsw, done: make(chan struct{})}

	go func() {
		for {
			select {
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !strings.HasSuffix(ev.Name, ext) {
					continue
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
					slog.Debug("template catalog changed", "file", ev.Name, "op", ev.Op.String())
					onChange()
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				slog.Warn("template watcher error", "error", err)
			case <-w.done:
				return
			}
		}
	}()

	slog.Info("watching template catalog", "dir", dir)
	return w, nil
}

// Close stops the watcher goroutine and releases the underlying watch.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
