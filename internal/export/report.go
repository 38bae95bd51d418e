// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/batchex/internal/scene"
	"github.com/jeranaias/batchex/internal/util"
)

// maxDirectoryWidth caps the directory portion of a report line in
// terminal columns.
const maxDirectoryWidth = 48

// =============================================================================
// RESULT
// =============================================================================

// Result records the outcome of one export batch. It is created fresh
// per batch and exists purely for reporting; a Result returned alongside
// an error names the objects that were written before the failure.
type Result struct {
	// BatchID correlates report lines from the same batch.
	BatchID string

	// Directory is the resolved export directory files were written to.
	Directory string

	// Exported lists the successfully written root objects in export
	// order.
	Exported []*scene.Object

	// Warnings holds non-fatal conditions encountered during the batch.
	Warnings []string
}

// ExportedNames returns the names of the exported objects in order.
func (r *Result) ExportedNames() []string {
	names := make([]string, len(r.Exported))
	for i, o := range r.Exported {
		names[i] = o.Name
	}
	return names
}

// Summary returns the human-readable batch report, naming every exported
// object and the destination directory.
func (r *Result) Summary() string {
	return fmt.Sprintf("Exported [%s] to %s",
		util.JoinNames(r.ExportedNames()), TruncateDirectory(r.Directory))
}

// =============================================================================
// DIRECTORY DISPLAY
// =============================================================================

// TruncateDirectory shortens a directory path for display, keeping the
// last few path components (".../A/B/C/D"). Paths that are still wider
// than a terminal-friendly limit are trimmed from the left on display
// cell boundaries, so double-width characters never split.
func TruncateDirectory(dir string) string {
	var indices []int
	for i, c := range dir {
		if c == os.PathSeparator {
			indices = append(indices, i)
		}
	}
	short := dir
	if len(indices) >= 4 {
		short = "..." + dir[indices[len(indices)-4]:]
	}

	if runewidth.StringWidth(short) <= maxDirectoryWidth {
		return short
	}
	return "..." + truncateLeftWidth(short, maxDirectoryWidth-3)
}

// truncateLeftWidth returns the widest suffix of s that fits in width
// display cells.
func truncateLeftWidth(s string, width int) string {
	runes := []rune(s)
	total := 0
	for i := len(runes) - 1; i >= 0; i-- {
		total += runewidth.RuneWidth(runes[i])
		if total > width {
			return string(runes[i+1:])
		}
	}
	return s
}
