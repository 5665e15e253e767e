// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file whenever it is written, created or
// replaced, and delivers the new settings on [Watcher.Changes].
// Only the latest settings are kept until they are received.
type Watcher struct {
	file    string
	fsw     *fsnotify.Watcher
	changes chan *Settings
	done    chan struct{}
}

// Watch starts watching the settings file. The directory of the file
// must exist; the file itself need not. Close the watcher when done.
func Watch(filename string) (*Watcher, error) {
	file, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("settings: watching %q: %w", filename, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings: watching %q: %w", filename, err)
	}
	// the directory is watched so that editors replacing the file are seen
	if err := fsw.Add(filepath.Dir(file)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("settings: watching %q: %w", filename, err)
	}
	w := &Watcher{
		file:    file,
		fsw:     fsw,
		changes: make(chan *Settings, 1),
		done:    make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

// File returns the absolute path of the watched file.
func (w *Watcher) File() string { return w.file }

// Changes returns the channel receiving reloaded settings.
func (w *Watcher) Changes() <-chan *Settings { return w.changes }

// Close stops watching and waits for the watcher to finish.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) watch() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.file || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			s, err := Load(w.file)
			if err != nil {
				slog.Error("settings: reloading", "file", w.file, "err", err)
				continue
			}
			slog.Debug("settings: reloaded", "file", w.file, "op", ev.Op)
			w.deliver(s)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Error("settings: watching", "file", w.file, "err", err)
		}
	}
}

// deliver replaces any settings not yet received with s.
func (w *Watcher) deliver(s *Settings) {
	select {
	case <-w.changes:
	default:
	}
	w.changes <- s
}
