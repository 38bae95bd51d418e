// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jeranaias/batchex/internal/util"
)

// =============================================================================
// DOCUMENT
// =============================================================================

// Document is a scene persisted as a JSON file. The document's path
// anchors "//"-relative path resolution for export directories.
type Document struct {
	// Path is the absolute location of the document file on disk.
	Path string

	// Scene is the object graph held by the document.
	Scene *Scene

	// SourceFilename records the originating document path. It is stamped
	// before each export batch so downstream tools can locate the source.
	SourceFilename string
}

// storedObject is the on-disk form of an Object subtree.
type storedObject struct {
	Name       string         `json:"name"`
	Exportable *bool          `json:"exportable,omitempty"`
	Location   mgl64.Vec3     `json:"location"`
	Rotation   mgl64.Vec3     `json:"rotation"`
	Scale      mgl64.Vec3     `json:"scale"`
	Children   []storedObject `json:"children,omitempty"`
}

// storedDocument is the on-disk form of a Document.
type storedDocument struct {
	SourceFilename string         `json:"source_filename,omitempty"`
	Objects        []storedObject `json:"objects"`
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads a scene document from disk.
func Load(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var stored storedDocument
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", absPath, err)
	}

	doc := &Document{
		Path:           absPath,
		Scene:          New(),
		SourceFilename: stored.SourceFilename,
	}
	for _, root := range stored.Objects {
		if err := doc.addStored(root, nil); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// addStored materializes a stored subtree under the given parent.
func (d *Document) addStored(stored storedObject, parent *Object) error {
	if stored.Name == "" {
		return fmt.Errorf("document %s contains an unnamed object", d.Path)
	}

	o := d.Scene.Add(stored.Name, parent)
	o.Location = stored.Location
	o.RotationEuler = stored.Rotation
	o.Scale = stored.Scale
	if stored.Exportable != nil {
		o.Exportable = *stored.Exportable
	}

	for _, child := range stored.Children {
		if err := d.addStored(child, o); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the document back to its path atomically.
func (d *Document) Save() error {
	stored := storedDocument{
		SourceFilename: d.SourceFilename,
	}
	for _, root := range d.Scene.Roots() {
		stored.Objects = append(stored.Objects, storeObject(root))
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	data = append(data, '\n')

	if err := util.AtomicWriteFile(d.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to save document %s: %w", d.Path, err)
	}
	return nil
}

// storeObject converts an Object subtree to its on-disk form.
func storeObject(o *Object) storedObject {
	stored := storedObject{
		Name:     o.Name,
		Location: o.Location,
		Rotation: o.RotationEuler,
		Scale:    o.Scale,
	}
	if !o.Exportable {
		exportable := false
		stored.Exportable = &exportable
	}
	for _, child := range o.children {
		stored.Children = append(stored.Children, storeObject(child))
	}
	return stored
}

// =============================================================================
// DOCUMENT METADATA
// =============================================================================

// Filename returns the name of the document file without its extension.
func (d *Document) Filename() string {
	base := filepath.Base(d.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// StampSource records the document's own path as the source filename.
// Called before each export batch.
func (d *Document) StampSource() {
	d.SourceFilename = d.Path
}
