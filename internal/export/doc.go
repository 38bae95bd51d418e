// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export drives batch exports of scene objects to individual
// files, one file per root object.
//
// The package is an orchestration layer: it decides which objects to
// export, isolates each root (and its exportable descendants) as the
// scene's selection, and delegates the actual file writing to a
// per-format Exporter. It never generates a 3D format itself.
//
// # Key Types
//
//   - Format: Supported export formats (glTF, FBX)
//   - Exporter: Per-format host exporter interface
//   - Registry: Format-to-exporter lookup with availability checks
//   - Driver: The export loop with selection and transform guards
//   - Result: Ordered record of what was exported, for reporting
//
// # Failure Semantics
//
// Preconditions (directory, exporter availability, target validity) are
// checked before any state is touched; they fail cleanly with typed
// errors. A mid-batch exporter failure stops the remaining roots but
// leaves already written files in place; the partial Result is returned
// alongside the error, and selection, active object, and any in-flight
// transform are restored before the error propagates.
//
// # Usage
//
//	driver := export.NewDriver(registry)
//	roots := export.SelectableRoots(doc.Scene, export.ModeAll, nil)
//	result, err := driver.Export(doc, export.Request{
//	    Directory:      prefs.Directory,
//	    Format:         export.FormatGLTF,
//	    ResetTransform: true,
//	    Roots:          roots,
//	})
package export
