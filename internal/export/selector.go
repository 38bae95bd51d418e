// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"github.com/jeranaias/batchex/internal/scene"
)

// =============================================================================
// SELECTOR
// =============================================================================

// Mode selects which root objects an export batch targets.
type Mode int

const (
	// ModeAll targets every root object whose own exportable flag is set.
	ModeAll Mode = iota
	// ModeSelected targets a caller-supplied set of objects verbatim,
	// normally the interactive selection.
	ModeSelected
)

// SelectableRoots returns the export targets for a batch, in scene
// enumeration order.
//
// ModeAll filters roots by their own flag only; a root has no ancestors
// to inherit exclusion from. ModeSelected returns the explicit set
// unfiltered: a user may deliberately target a flagged object, and the
// driver's validation decides whether that is an error. The function
// reads object state and has no side effects.
func SelectableRoots(sc *scene.Scene, mode Mode, explicit []*scene.Object) []*scene.Object {
	switch mode {
	case ModeSelected:
		return explicit
	default:
		var roots []*scene.Object
		for _, o := range sc.Roots() {
			if scene.IsBatchExported(o) {
				roots = append(roots, o)
			}
		}
		return roots
	}
}
