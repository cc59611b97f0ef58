// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"os"

	"github.com/fsnotify/fsnotify"

	"memkv/internal/cachelog"
)

// Watcher reloads only the log_level field of a config file on write,
// calling onLevelChange with the new value. It never touches capacity or
// listen addresses at runtime — those are fixed for the life of the
// process.
type Watcher struct {
	path          string
	onLevelChange func(level string)
	fsw           *fsnotify.Watcher
	done          chan struct{}
}

// WatchLogLevel starts watching path for writes and invokes onLevelChange
// whenever the file's log_level field changes. The returned Watcher must
// be closed with Stop when no longer needed.
func WatchLogLevel(path string, onLevelChange func(level string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:          path,
		onLevelChange: onLevelChange,
		fsw:           fsw,
		done:          make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			cachelog.ComponentError("config", "watch error: ", err)
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Write == 0 {
				continue
			}
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	raw, err := os.ReadFile(w.path)
	if err != nil {
		cachelog.ComponentWarn("config", "reload: ", err)
		return
	}

	var partial struct {
		LogLevel string `json:"log_level"`
	}
	if err := json.Unmarshal(raw, &partial); err != nil {
		cachelog.ComponentWarn("config", "reload: ", err)
		return
	}
	if partial.LogLevel != "" {
		w.onLevelChange(partial.LogLevel)
	}
}

// Stop closes the underlying filesystem watcher.
func (w *Watcher) Stop() {
	close(w.done)
	w.fsw.Close()
}
