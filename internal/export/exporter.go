// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"github.com/jeranaias/batchex/internal/scene"
)

// =============================================================================
// EXPORTER INTERFACE
// =============================================================================

// Exporter is a per-format host exporter. Implementations write the
// document's currently selected objects to a file; they are opaque to
// the driver, which treats any returned error as an exporter failure.
type Exporter interface {
	// Export writes the document's current selection to path using the
	// merged encoder options. The path already carries the extension
	// returned by FileExtension.
	Export(doc *scene.Document, path string, options map[string]string) error

	// FileExtension returns the extension for exported files, with the
	// leading dot (e.g. ".glb", ".fbx").
	FileExtension() string

	// Available reports whether the exporter can run. A non-nil error
	// means the backing tool or plugin is missing or disabled.
	Available() error
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry maps formats to host exporters.
type Registry struct {
	exporters map[Format]Exporter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exporters: make(map[Format]Exporter),
	}
}

// Register installs an exporter for a format, replacing any previous
// registration.
func (r *Registry) Register(f Format, e Exporter) {
	r.exporters[f] = e
}

// Lookup returns the enabled exporter for a format. It fails with
// UnavailableError if no exporter is registered or the registered one
// reports itself unavailable.
func (r *Registry) Lookup(f Format) (Exporter, error) {
	e, ok := r.exporters[f]
	if !ok {
		return nil, &UnavailableError{Format: f}
	}
	if err := e.Available(); err != nil {
		return nil, &UnavailableError{Format: f, Err: err}
	}
	return e, nil
}
