// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Typed errors for batch export failures.
//
// STANDARDIZED PATTERN:
//   - ALWAYS return errors (never print from library code)
//   - Let the caller decide how to display errors
//   - Use structured error types so callers can branch with errors.As
//
// Precondition errors (directory, availability, target validity) are
// raised before any scene state is touched. ExportFailedError is the
// only mid-batch error; it wraps the underlying exporter failure.
package export

import (
	"fmt"

	"github.com/jeranaias/batchex/internal/util"
)

// =============================================================================
// PRECONDITION ERRORS
// =============================================================================

// DirectoryError reports a missing or invalid export directory.
type DirectoryError struct {
	Directory string // resolved export directory
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("export directory not valid: %q", e.Directory)
}

// UnavailableError reports that no enabled exporter serves the format.
type UnavailableError struct {
	Format Format
	Err    error // underlying availability failure (if any)
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s exporter is not available: %v", e.Format.Display(), e.Err)
	}
	return fmt.Sprintf("%s exporter is not available", e.Format.Display())
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// InvalidTargetError reports child objects passed as export targets.
// Only root objects may be exported; every offender is named.
type InvalidTargetError struct {
	Objects []string // names of the offending non-root objects
}

func (e *InvalidTargetError) Error() string {
	return "child objects may not be exported: " + util.JoinNames(e.Objects)
}

// ExcludedError reports export targets that are themselves flagged
// non-exportable. Every offender is named.
type ExcludedError struct {
	Objects []string // names of the offending excluded objects
}

func (e *ExcludedError) Error() string {
	return "attempting to export objects excluded from export: " + util.JoinNames(e.Objects)
}

// =============================================================================
// MID-BATCH ERROR
// =============================================================================

// ExportFailedError reports a per-format exporter failure for a single
// object. Objects exported before the failure stay on disk.
type ExportFailedError struct {
	Object string // name of the object whose export failed
	Path   string // destination file path
	Err    error  // underlying exporter error
}

func (e *ExportFailedError) Error() string {
	return fmt.Sprintf("failed exporting %q to %q: %v", e.Object, e.Path, e.Err)
}

func (e *ExportFailedError) Unwrap() error {
	return e.Err
}
