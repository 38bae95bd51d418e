// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// buildScene creates the hierarchy used across tests:
//
//	Root1
//	  Child1
//	    Grandchild1
//	  Child2 (not exportable)
//	    Grandchild2
//	Root2 (not exportable)
//	  Child3
//	Root3
func buildScene() (*Scene, map[string]*Object) {
	s := New()
	objects := make(map[string]*Object)

	root1 := s.Add("Root1", nil)
	child1 := s.Add("Child1", root1)
	grandchild1 := s.Add("Grandchild1", child1)
	child2 := s.Add("Child2", root1)
	child2.Exportable = false
	grandchild2 := s.Add("Grandchild2", child2)
	root2 := s.Add("Root2", nil)
	root2.Exportable = false
	child3 := s.Add("Child3", root2)
	root3 := s.Add("Root3", nil)

	for _, o := range []*Object{root1, child1, grandchild1, child2, grandchild2, root2, child3, root3} {
		objects[o.Name] = o
	}
	return s, objects
}

// =============================================================================
// HIERARCHY TESTS
// =============================================================================

func TestAdd_ParentLinks(t *testing.T) {
	s := New()
	root := s.Add("Root", nil)
	child := s.Add("Child", root)

	if !root.IsRoot() {
		t.Error("Root should have no parent")
	}
	if child.Parent() != root {
		t.Error("Child's parent should be Root")
	}
	children := root.Children()
	if len(children) != 1 || children[0] != child {
		t.Errorf("Root should have exactly [Child], got %d children", len(children))
	}
}

func TestRoots_DocumentOrder(t *testing.T) {
	s, _ := buildScene()

	roots := s.Roots()
	want := []string{"Root1", "Root2", "Root3"}
	if len(roots) != len(want) {
		t.Fatalf("Expected %d roots, got %d", len(want), len(roots))
	}
	for i, name := range want {
		if roots[i].Name != name {
			t.Errorf("Root %d: got %q, want %q", i, roots[i].Name, name)
		}
	}
}

func TestFind(t *testing.T) {
	s, objects := buildScene()

	found, err := s.Find("Grandchild1")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if found != objects["Grandchild1"] {
		t.Error("Find returned the wrong object")
	}

	if _, err := s.Find("NoSuchObject"); err == nil {
		t.Error("Find should fail for a missing name")
	}
}

// =============================================================================
// ELIGIBILITY TESTS
// =============================================================================

func TestIsBatchExported_InheritsDownHierarchy(t *testing.T) {
	_, objects := buildScene()

	testCases := []struct {
		name     string
		expected bool
	}{
		{"Root1", true},
		{"Child1", true},
		{"Grandchild1", true},
		{"Child2", false},       // own flag unset
		{"Grandchild2", false},  // excluded ancestor, own flag set
		{"Root2", false},        // own flag unset
		{"Child3", false},       // excluded ancestor
		{"Root3", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBatchExported(objects[tc.name]); got != tc.expected {
				t.Errorf("IsBatchExported(%s) = %v, want %v", tc.name, got, tc.expected)
			}
		})
	}
}

func TestSetExportable_Batch(t *testing.T) {
	_, objects := buildScene()

	batch := []*Object{objects["Root1"], objects["Child1"]}
	SetExportable(batch, false)
	if objects["Root1"].Exportable || objects["Child1"].Exportable {
		t.Error("SetExportable(false) should clear the flag on every object")
	}

	SetExportable(batch, true)
	if !objects["Root1"].Exportable || !objects["Child1"].Exportable {
		t.Error("SetExportable(true) should set the flag on every object")
	}
}

// =============================================================================
// SELECTION TESTS
// =============================================================================

func TestSelection_OrderAndMembership(t *testing.T) {
	s, objects := buildScene()

	// Select out of document order; Selected() returns document order.
	s.Select(objects["Root3"])
	s.Select(objects["Child1"])
	s.Select(objects["Root1"])

	selected := s.Selected()
	want := []string{"Root1", "Child1", "Root3"}
	if len(selected) != len(want) {
		t.Fatalf("Expected %d selected, got %d", len(want), len(selected))
	}
	for i, name := range want {
		if selected[i].Name != name {
			t.Errorf("Selected %d: got %q, want %q", i, selected[i].Name, name)
		}
	}

	s.Deselect(objects["Child1"])
	if s.IsSelected(objects["Child1"]) {
		t.Error("Deselect should remove the object from the selection")
	}

	s.DeselectAll()
	if len(s.Selected()) != 0 {
		t.Error("DeselectAll should clear the selection")
	}
}

func TestSelectExportable_PrunesExcludedSubtrees(t *testing.T) {
	s, objects := buildScene()

	s.SelectExportable(objects["Root1"])

	// Child2 is excluded, so Child2 and Grandchild2 must not be selected
	// even though Grandchild2's own flag is set. Siblings are unaffected.
	wantSelected := map[string]bool{
		"Root1":       true,
		"Child1":      true,
		"Grandchild1": true,
	}
	for name, o := range objects {
		if got := s.IsSelected(o); got != wantSelected[name] {
			t.Errorf("IsSelected(%s) = %v, want %v", name, got, wantSelected[name])
		}
	}
}

func TestSelectExportable_ExcludedRootSelectsNothing(t *testing.T) {
	s, objects := buildScene()

	s.SelectExportable(objects["Root2"])
	if len(s.Selected()) != 0 {
		t.Error("Selecting an excluded root should select nothing")
	}
}

func TestSnapshotRestoreSelection(t *testing.T) {
	s, objects := buildScene()

	s.Select(objects["Root1"])
	s.Select(objects["Child3"])
	s.SetActiveObject(objects["Root1"])
	state := s.SnapshotSelection()

	// Trash the state.
	s.DeselectAll()
	s.Select(objects["Root3"])
	s.SetActiveObject(nil)

	s.RestoreSelection(state)

	selected := s.Selected()
	if len(selected) != 2 || selected[0].Name != "Root1" || selected[1].Name != "Child3" {
		t.Errorf("Selection not restored, got %d objects", len(selected))
	}
	if s.ActiveObject() != objects["Root1"] {
		t.Error("Active object not restored")
	}
	if s.IsSelected(objects["Root3"]) {
		t.Error("Objects selected after the snapshot should be deselected on restore")
	}
}

// =============================================================================
// TRANSFORM TESTS
// =============================================================================

func TestTransform_SnapshotResetRestore(t *testing.T) {
	s := New()
	o := s.Add("Root", nil)
	o.Location = mgl64.Vec3{1, 2, 3}
	o.RotationEuler = mgl64.Vec3{0.5, 0, 1.5}
	o.Scale = mgl64.Vec3{2, 2, 2}

	saved := o.Transform()
	o.ResetTransform()

	if o.Location != (mgl64.Vec3{}) || o.RotationEuler != (mgl64.Vec3{}) {
		t.Error("ResetTransform should zero location and rotation")
	}
	if o.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Error("ResetTransform should set scale to one")
	}

	o.SetTransform(saved)
	if o.Location != (mgl64.Vec3{1, 2, 3}) ||
		o.RotationEuler != (mgl64.Vec3{0.5, 0, 1.5}) ||
		o.Scale != (mgl64.Vec3{2, 2, 2}) {
		t.Error("SetTransform should restore the saved transform exactly")
	}
}

func TestNewObject_Defaults(t *testing.T) {
	s := New()
	o := s.Add("Root", nil)

	if !o.Exportable {
		t.Error("Objects should default to exportable")
	}
	if o.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Error("Objects should default to unit scale")
	}
}
