// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package scene

import (
	"fmt"
)

// =============================================================================
// SCENE
// =============================================================================

// Scene owns a forest of objects, the global selection set, and the
// active-object pointer. Objects are enumerated in document order (the
// order they were added), which keeps export batches deterministic.
type Scene struct {
	objects []*Object

	selected map[*Object]bool
	active   *Object
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		selected: make(map[*Object]bool),
	}
}

// Add creates a new object under the given parent and appends it to the
// scene's enumeration order. A nil parent creates a root object.
func (s *Scene) Add(name string, parent *Object) *Object {
	o := newObject(name)
	o.parent = parent
	if parent != nil {
		parent.children = append(parent.children, o)
	}
	s.objects = append(s.objects, o)
	return o
}

// Objects returns every object in the scene in document order.
// The returned slice is a copy.
func (s *Scene) Objects() []*Object {
	objects := make([]*Object, len(s.objects))
	copy(objects, s.objects)
	return objects
}

// Roots returns every object with no parent, in document order.
func (s *Scene) Roots() []*Object {
	var roots []*Object
	for _, o := range s.objects {
		if o.parent == nil {
			roots = append(roots, o)
		}
	}
	return roots
}

// Find returns the first object with the given name, or an error if no
// such object exists.
func (s *Scene) Find(name string) (*Object, error) {
	for _, o := range s.objects {
		if o.Name == name {
			return o, nil
		}
	}
	return nil, fmt.Errorf("no object named %q in scene", name)
}

// =============================================================================
// SELECTION AND ACTIVE OBJECT
// =============================================================================

// Select adds an object to the selection set. Selecting an already
// selected object is a no-op.
func (s *Scene) Select(o *Object) {
	s.selected[o] = true
}

// Deselect removes an object from the selection set.
func (s *Scene) Deselect(o *Object) {
	delete(s.selected, o)
}

// DeselectAll clears the selection set.
func (s *Scene) DeselectAll() {
	for o := range s.selected {
		delete(s.selected, o)
	}
}

// IsSelected returns true if the object is in the selection set.
func (s *Scene) IsSelected(o *Object) bool {
	return s.selected[o]
}

// Selected returns the selected objects in document order.
func (s *Scene) Selected() []*Object {
	var selected []*Object
	for _, o := range s.objects {
		if s.selected[o] {
			selected = append(selected, o)
		}
	}
	return selected
}

// ActiveObject returns the active object, or nil if none is active.
func (s *Scene) ActiveObject() *Object {
	return s.active
}

// SetActiveObject sets the active object. A nil active object leaves any
// object-bound editing mode, which per-format exporters require.
func (s *Scene) SetActiveObject(o *Object) {
	s.active = o
}

// =============================================================================
// SELECTION SNAPSHOT
// =============================================================================

// SelectionState is a snapshot of the selection set and active object.
// It is the explicit handle for the scene's global UI state: operations
// that mutate selection check one out up front and restore it on every
// exit path.
type SelectionState struct {
	selected []*Object
	active   *Object
}

// SnapshotSelection captures the current selection set and active object.
func (s *Scene) SnapshotSelection() SelectionState {
	return SelectionState{
		selected: s.Selected(),
		active:   s.active,
	}
}

// RestoreSelection clears the current selection and reinstates a
// previously captured snapshot.
func (s *Scene) RestoreSelection(state SelectionState) {
	s.DeselectAll()
	for _, o := range state.selected {
		s.Select(o)
	}
	s.active = state.active
}

// =============================================================================
// EXPORTABLE HIERARCHY SELECTION
// =============================================================================

// SelectExportable selects the object and, recursively, every descendant
// whose entire ancestor chain below the object is exportable. An excluded
// child prunes its whole subtree without affecting siblings.
//
// Callers are expected to have deselected everything first; exporters run
// in selection-only mode against exactly this set.
func (s *Scene) SelectExportable(o *Object) {
	if !o.Exportable {
		return
	}
	for _, child := range o.children {
		s.SelectExportable(child)
	}
	s.Select(o)
}
