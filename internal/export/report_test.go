// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"os"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/batchex/internal/scene"
)

// sep builds a path from components using the OS separator, so the
// truncation rule is exercised the same way on every platform.
func sep(components ...string) string {
	return string(os.PathSeparator) + strings.Join(components, string(os.PathSeparator))
}

// =============================================================================
// DIRECTORY TRUNCATION TESTS
// =============================================================================

func TestTruncateDirectory_ShortPathUnchanged(t *testing.T) {
	dir := sep("home", "art")
	if got := TruncateDirectory(dir); got != dir {
		t.Errorf("TruncateDirectory(%q) = %q, want unchanged", dir, got)
	}
}

func TestTruncateDirectory_KeepsLastComponents(t *testing.T) {
	dir := sep("home", "artist", "projects", "game", "assets", "exports")
	got := TruncateDirectory(dir)

	// The rule keeps everything from the fourth-from-last separator.
	want := "..." + sep("projects", "game", "assets", "exports")
	if got != want {
		t.Errorf("TruncateDirectory(%q) = %q, want %q", dir, got, want)
	}
	if !strings.HasPrefix(got, "...") {
		t.Error("truncated paths start with ...")
	}
	if !strings.HasSuffix(got, "exports") {
		t.Error("the final component survives truncation")
	}
}

func TestTruncateDirectory_WidthCap(t *testing.T) {
	long := sep("a", strings.Repeat("x", 40), strings.Repeat("y", 40), strings.Repeat("z", 40), "out")
	got := TruncateDirectory(long)
	if runewidth.StringWidth(got) > maxDirectoryWidth {
		t.Errorf("TruncateDirectory result is %d cells wide, cap is %d",
			runewidth.StringWidth(got), maxDirectoryWidth)
	}
	if !strings.HasSuffix(got, "out") {
		t.Error("the final component survives width capping")
	}
}

// =============================================================================
// RESULT TESTS
// =============================================================================

func TestResultSummary(t *testing.T) {
	s := scene.New()
	alpha := s.Add("Alpha", nil)
	beta := s.Add("Beta", nil)

	result := &Result{
		Directory: sep("tmp", "exports"),
		Exported:  []*scene.Object{alpha, beta},
	}

	summary := result.Summary()
	if !strings.Contains(summary, "Alpha, Beta") {
		t.Errorf("Summary should name every exported object: %q", summary)
	}
	if !strings.Contains(summary, "exports") {
		t.Errorf("Summary should name the destination directory: %q", summary)
	}
}

func TestResultSummary_Empty(t *testing.T) {
	result := &Result{Directory: sep("tmp", "exports")}
	summary := result.Summary()
	if !strings.Contains(summary, "[]") {
		t.Errorf("An empty batch reports an empty list: %q", summary)
	}
}

func TestExportedNames_Order(t *testing.T) {
	s := scene.New()
	gamma := s.Add("Gamma", nil)
	alpha := s.Add("Alpha", nil)

	result := &Result{Exported: []*scene.Object{gamma, alpha}}
	names := result.ExportedNames()
	if len(names) != 2 || names[0] != "Gamma" || names[1] != "Alpha" {
		t.Errorf("ExportedNames must preserve export order, got %v", names)
	}
}
