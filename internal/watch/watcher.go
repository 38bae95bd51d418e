// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// DOCUMENT WATCHER
// =============================================================================

// DocumentWatcher invokes a callback when a single file changes,
// debouncing bursts of writes into one invocation.
type DocumentWatcher struct {
	path     string
	debounce time.Duration
	onChange func()

	watcher *fsnotify.Watcher
	mu      sync.Mutex
	pending *time.Time
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewDocumentWatcher creates a watcher for the given file. The callback
// fires after the file has been quiet for the debounce window.
func NewDocumentWatcher(path string, debounce time.Duration, onChange func()) (*DocumentWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &DocumentWatcher{
		path:     absPath,
		debounce: debounce,
		onChange: onChange,
		watcher:  watcher,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching for changes to the document.
func (w *DocumentWatcher) Watch() error {
	// Watch the directory: atomic saves rename a temp file over the
	// document, which a file-level watch would lose.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents()
	go w.processPending()

	return nil
}

// Close stops watching and releases resources.
func (w *DocumentWatcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents marks the document pending on relevant events.
func (w *DocumentWatcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				now := time.Now()
				w.mu.Lock()
				w.pending = &now
				w.mu.Unlock()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Non-fatal; keep watching.
		}
	}
}

// processPending fires the callback once the pending change has been
// quiet for the debounce window.
func (w *DocumentWatcher) processPending() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			ready := w.pending != nil && time.Since(*w.pending) >= w.debounce
			if ready {
				w.pending = nil
			}
			w.mu.Unlock()

			if ready {
				w.onChange()
			}
		}
	}
}
