// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - notify when a single file is changed or removed
package watcher

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/recordindex/fault"
)

// Watcher - watch one file
type Watcher struct {
	sync.Mutex
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
	done     chan struct{}
	started  bool
}

// New - create a watcher for an existing file
func New(targetFile string, log *logger.L) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		log.Errorf("file: %s  error: %s", filePath, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}, nil
}

// FilePath - absolute path of the watched file
func (w *Watcher) FilePath() string {
	return w.filePath
}

// Changes - receives when the file is written
//
// several writes before a receive are merged into one notification
func (w *Watcher) Changes() <-chan struct{} {
	return w.change
}

// Removals - receives once when the file is removed or renamed
func (w *Watcher) Removals() <-chan struct{} {
	return w.remove
}

// Start - begin delivering notifications
//
// the directory is watched so that editors that replace the file are
// still seen
func (w *Watcher) Start() error {
	w.Lock()
	defer w.Unlock()

	if w.started {
		return fault.ErrAlreadyInitialised
	}

	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}
	w.started = true

	go w.loop()
	return nil
}

// Close - stop watching
func (w *Watcher) Close() error {
	w.Lock()
	started := w.started
	w.started = false
	w.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				w.log.Debugf("file %s not match, discard event", event.Name)
				continue
			}
			w.log.Infof("file event: %v", event)

			if isRemove(event) {
				w.log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.remove, "remove")
				continue
			}

			if isChange(event) {
				w.sendEvent(w.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watch error: %s", err)
		}
	}
}

func isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *Watcher) sendEvent(ch chan<- struct{}, name string) {
	if !isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
