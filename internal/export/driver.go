// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jeranaias/batchex/internal/scene"
)

// =============================================================================
// EXPORT REQUEST
// =============================================================================

// Request describes one export batch.
type Request struct {
	// Directory is the export directory, possibly in "//"-relative form.
	Directory string

	// Format selects the host exporter.
	Format Format

	// Options holds the user-configured encoder overrides for Format.
	// Nil exports with the format's defaults.
	Options FormatOptions

	// ResetTransform zeroes each root's location and rotation and sets
	// its scale to one for the duration of its export, so the asset
	// lands at the origin of the exported file.
	ResetTransform bool

	// Roots are the root objects to export, in order.
	Roots []*scene.Object
}

// =============================================================================
// DRIVER
// =============================================================================

// Driver runs export batches against a registry of host exporters.
//
// A batch runs synchronously to completion. The driver owns the scene's
// selection and active-object state for the duration of one call and
// restores both on every exit path.
type Driver struct {
	registry *Registry
}

// NewDriver returns a driver using the given exporter registry.
func NewDriver(registry *Registry) *Driver {
	return &Driver{registry: registry}
}

// Export exports each root object (and its exportable descendants) to an
// individual file in the request's directory.
//
// All preconditions are checked before any scene state is mutated; a
// precondition failure returns a nil Result and a typed error. An empty
// root list succeeds with a warning. A mid-batch exporter failure aborts
// the remaining roots and returns the partial Result together with an
// ExportFailedError; files already written stay on disk.
func (d *Driver) Export(doc *scene.Document, req Request) (*Result, error) {
	// Resolve the export directory and verify it exists.
	directory, err := doc.AbsPath(req.Directory)
	if err != nil {
		return nil, &DirectoryError{Directory: req.Directory}
	}
	if info, err := os.Stat(directory); err != nil || !info.IsDir() {
		return nil, &DirectoryError{Directory: directory}
	}

	// Verify the format's exporter is enabled.
	exporter, err := d.registry.Lookup(req.Format)
	if err != nil {
		return nil, err
	}

	result := &Result{
		BatchID:   uuid.NewString(),
		Directory: directory,
	}

	// No targets is a warning, not an error.
	if len(req.Roots) == 0 {
		result.Warnings = append(result.Warnings, "No valid objects to export!")
		return result, nil
	}

	// Verify targets are roots.
	var children []string
	for _, o := range req.Roots {
		if !o.IsRoot() {
			children = append(children, o.Name)
		}
	}
	if len(children) > 0 {
		return nil, &InvalidTargetError{Objects: children}
	}

	// Verify targets are not themselves excluded from export.
	var excluded []string
	for _, o := range req.Roots {
		if !o.Exportable {
			excluded = append(excluded, o.Name)
		}
	}
	if len(excluded) > 0 {
		return nil, &ExcludedError{Objects: excluded}
	}

	// Merge encoder options once; they are identical for every root.
	options, err := MergeOptions(req.Format, req.Options)
	if err != nil {
		return nil, err
	}

	sc := doc.Scene

	// Check out the scene's selection state; restored on every exit path.
	state := sc.SnapshotSelection()
	defer sc.RestoreSelection(state)

	// Clearing the active object leaves any object-bound editing mode.
	// Restoring the snapshot above reinstates it afterward.
	sc.SetActiveObject(nil)

	// Stamp the source document so external tools can trace exported
	// files back to it.
	doc.StampSource()

	for _, root := range req.Roots {
		if err := d.exportOne(doc, exporter, directory, options, req.ResetTransform, root); err != nil {
			return result, err
		}
		result.Exported = append(result.Exported, root)
	}

	return result, nil
}

// exportOne isolates a single root as the scene's selection and invokes
// the exporter. When the transform is reset, restoration is guaranteed
// whether the exporter succeeds or fails.
func (d *Driver) exportOne(doc *scene.Document, exporter Exporter, directory string,
	options map[string]string, resetTransform bool, root *scene.Object) error {

	sc := doc.Scene

	// Exporters run in selection-only mode: select exactly this root's
	// exportable hierarchy.
	sc.DeselectAll()
	sc.SelectExportable(root)

	path := filepath.Join(directory, CleanName(root.Name)+exporter.FileExtension())

	if resetTransform {
		saved := root.Transform()
		defer root.SetTransform(saved)
		root.ResetTransform()
	}

	if err := exporter.Export(doc, path, options); err != nil {
		return &ExportFailedError{Object: root.Name, Path: path, Err: err}
	}
	return nil
}

// =============================================================================
// CONVENIENCE ENTRY POINTS
// =============================================================================

// ExportAll exports every eligible root object in the document.
func (d *Driver) ExportAll(doc *scene.Document, req Request) (*Result, error) {
	req.Roots = SelectableRoots(doc.Scene, ModeAll, nil)
	return d.Export(doc, req)
}

// ExportSelected exports the document's current interactive selection.
func (d *Driver) ExportSelected(doc *scene.Document, req Request) (*Result, error) {
	selected := doc.Scene.Selected()
	if len(selected) == 0 {
		return nil, fmt.Errorf("nothing selected to export")
	}
	req.Roots = SelectableRoots(doc.Scene, ModeSelected, selected)
	return d.Export(doc, req)
}
