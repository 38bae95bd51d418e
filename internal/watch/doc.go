// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch re-runs exports when a scene document changes on disk.
//
// The watcher observes the document's directory (saves are atomic
// renames, so watching the file itself would lose the inode) and
// coalesces bursts of events with a debounce window before invoking the
// change callback. Callbacks run one at a time; a change arriving while
// a callback runs is delivered after it returns.
package watch
