// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watch_cmd.go - Watch mode for batchex.
//
// Watch runs a full export immediately, then re-runs it whenever the
// document changes on disk. The document and its preferences are
// reloaded on each run so edits to either take effect.

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeranaias/batchex/internal/watch"
)

// DefaultWatchDebounce is the quiet period after a document change
// before the batch re-runs.
const DefaultWatchDebounce = 500 * time.Millisecond

// HandleWatch handles the "watch" command. It blocks until interrupted.
func HandleWatch(args Args) error {
	if args.Document == "" {
		return ErrMissingArgument("document", "batchex watch scene.json")
	}

	debounce := DefaultWatchDebounce
	if args.Debounce != "" {
		d, err := time.ParseDuration(args.Debounce)
		if err != nil || d <= 0 {
			return NewValidationError("debounce", args.Debounce, "must be a positive duration")
		}
		debounce = d
	}

	runBatch := func() {
		// Reload everything each run; the document just changed.
		env, err := loadBatchEnv(args)
		if err != nil {
			DisplayError(err)
			return
		}
		res, err := env.driver.ExportAll(env.doc, env.req)
		printResult(res, args.Quiet)
		if err != nil {
			DisplayError(err)
		}
	}

	// Validate the document and run the initial batch before settling
	// into the watch loop.
	if _, err := loadBatchEnv(args); err != nil {
		return err
	}
	runBatch()

	w, err := watch.NewDocumentWatcher(args.Document, debounce, runBatch)
	if err != nil {
		return NewCommandError("watch", "failed to start watcher", err)
	}
	defer w.Close()

	if err := w.Watch(); err != nil {
		return NewCommandError("watch", "failed to watch document", err)
	}

	if !args.Quiet {
		fmt.Printf("%s watching %s (Ctrl+C to stop)\n",
			DimStyle.Render("[watch]"), args.Document)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	if !args.Quiet {
		fmt.Printf("%s stopped\n", DimStyle.Render("[watch]"))
	}
	return nil
}
