// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scene provides the object graph that batch exports operate on.
//
// This package models the host side of an export: a document holding a
// tree of named objects, each with a local transform and a batch-export
// eligibility flag, plus the global selection and active-object state
// that per-format exporters consume.
//
// # Key Types
//
//   - Object: A node in the scene tree (name, transform, exportable flag)
//   - Scene: Ordered object enumeration, selection set, active object
//   - Document: A scene persisted as a JSON file on disk
//   - SelectionState: Snapshot of selection + active object for restore
//
// # Selection Discipline
//
// Selection and the active object are global mutable state. Callers that
// mutate them for the duration of an operation snapshot the state first
// and restore it on every exit path:
//
//	state := sc.SnapshotSelection()
//	defer sc.RestoreSelection(state)
//
// # Paths
//
// Paths beginning with "//" are resolved relative to the directory of
// the open document, mirroring the convention of 3D content tools.
package scene
