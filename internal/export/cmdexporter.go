// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/jeranaias/batchex/internal/scene"
)

// =============================================================================
// COMMAND EXPORTER
// =============================================================================

// CommandExporter delegates to an external converter tool, the way a
// host application delegates to a format plugin. The tool receives the
// scene document, the names of the selected objects, the destination
// path, and the merged encoder options as --opt key=value flags.
//
// Availability maps to the tool resolving on PATH: a missing tool is the
// equivalent of a disabled format plugin.
type CommandExporter struct {
	// Tool is the converter executable name or path.
	Tool string

	// Extension is the extension for exported files, with the leading dot.
	Extension string
}

// NewCommandExporter returns an exporter backed by the given tool.
func NewCommandExporter(tool, extension string) *CommandExporter {
	return &CommandExporter{
		Tool:      tool,
		Extension: extension,
	}
}

// FileExtension returns the extension exported files carry.
func (e *CommandExporter) FileExtension() string {
	return e.Extension
}

// Available checks that the converter tool resolves on PATH.
func (e *CommandExporter) Available() error {
	if e.Tool == "" {
		return fmt.Errorf("no converter tool configured")
	}
	if _, err := exec.LookPath(e.Tool); err != nil {
		return fmt.Errorf("converter tool %q not found: %w", e.Tool, err)
	}
	return nil
}

// Export runs the converter tool against the document's current
// selection. The tool's stderr is folded into the returned error.
func (e *CommandExporter) Export(doc *scene.Document, path string, options map[string]string) error {
	selected := doc.Scene.Selected()
	names := make([]string, len(selected))
	for i, o := range selected {
		names[i] = o.Name
	}

	args := []string{
		"--input", doc.Path,
		"--output", path,
		"--select", strings.Join(names, ","),
	}
	// Stable argument order keeps repeated exports byte-identical.
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--opt", k+"="+options[k])
	}

	cmd := exec.Command(e.Tool, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s: %s", err, strings.TrimSpace(string(out)))
		}
		return err
	}
	return nil
}
