// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// OBJECT
// =============================================================================

// Object is a node in the scene tree. Each object has at most one parent
// and any number of children. Parent links are managed by the owning
// Scene, which forbids cycles by construction.
type Object struct {
	// Name identifies the object and is used to derive export filenames.
	Name string

	// Exportable controls batch-export eligibility. The flag is inherited
	// down the hierarchy: an object with any non-exportable ancestor is
	// excluded regardless of its own flag. Defaults to true.
	Exportable bool

	// Local transform.
	Location      mgl64.Vec3
	RotationEuler mgl64.Vec3
	Scale         mgl64.Vec3

	parent   *Object
	children []*Object
}

// newObject returns an object with the default transform and the
// exportable flag set.
func newObject(name string) *Object {
	return &Object{
		Name:       name,
		Exportable: true,
		Scale:      mgl64.Vec3{1, 1, 1},
	}
}

// Parent returns the object's parent, or nil for root objects.
func (o *Object) Parent() *Object {
	return o.parent
}

// IsRoot returns true if the object has no parent.
func (o *Object) IsRoot() bool {
	return o.parent == nil
}

// Children returns the object's direct children in insertion order.
// The returned slice is a copy; mutating it does not affect the tree.
func (o *Object) Children() []*Object {
	children := make([]*Object, len(o.children))
	copy(children, o.children)
	return children
}

// =============================================================================
// TRANSFORM SNAPSHOT
// =============================================================================

// Transform is a copy of an object's location, rotation, and scale.
// Used to save a transform before zeroing it for export and to restore
// it afterward.
type Transform struct {
	Location      mgl64.Vec3
	RotationEuler mgl64.Vec3
	Scale         mgl64.Vec3
}

// Transform returns a copy of the object's current local transform.
func (o *Object) Transform() Transform {
	return Transform{
		Location:      o.Location,
		RotationEuler: o.RotationEuler,
		Scale:         o.Scale,
	}
}

// SetTransform overwrites the object's local transform.
func (o *Object) SetTransform(t Transform) {
	o.Location = t.Location
	o.RotationEuler = t.RotationEuler
	o.Scale = t.Scale
}

// ResetTransform sets location and rotation to zero and scale to one.
func (o *Object) ResetTransform() {
	o.Location = mgl64.Vec3{}
	o.RotationEuler = mgl64.Vec3{}
	o.Scale = mgl64.Vec3{1, 1, 1}
}

// =============================================================================
// EXPORT ELIGIBILITY
// =============================================================================

// IsBatchExported returns true if the object and every ancestor up to
// the scene root have the exportable flag set.
func IsBatchExported(o *Object) bool {
	if !o.Exportable {
		return false
	}
	return o.parent == nil || IsBatchExported(o.parent)
}

// SetExportable sets the exportable flag on every object in the list.
// This is the per-selection batch toggle exposed to the host UI.
func SetExportable(objects []*Object, exportable bool) {
	for _, o := range objects {
		o.Exportable = exportable
	}
}
