// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"sort"
)

// =============================================================================
// FORMATS
// =============================================================================

// Format identifies a supported export format.
type Format string

const (
	// FormatGLTF exports glTF 2.0 files.
	FormatGLTF Format = "gltf"
	// FormatFBX exports Autodesk FBX files.
	FormatFBX Format = "fbx"
)

// formatInfo holds the per-format metadata resolved by the enum-keyed
// tables below. Formats are looked up by value, never by constructing
// names at runtime.
type formatInfo struct {
	display  string
	defaults map[string]string
}

// formats is the table of supported formats. The default encoder
// arguments mirror the host exporters' batch-export presets: selection
// only, never prompt on existing files, and include non-mesh data so a
// root object exports as a self-contained asset.
var formats = map[Format]formatInfo{
	FormatGLTF: {
		display: "glTF",
		defaults: map[string]string{
			"check_existing": "false",
			"use_selection":  "true",
			"use_visible":    "false",
			"export_extras":  "true",
			"export_lights":  "true",
			"export_cameras": "true",
			"export_skins":   "true",
			"export_morph":   "true",
		},
	},
	FormatFBX: {
		display: "FBX",
		defaults: map[string]string{
			"check_existing": "false",
			"use_selection":  "true",
		},
	},
}

// String returns the format identifier.
func (f Format) String() string {
	return string(f)
}

// Display returns the human-readable format name.
func (f Format) Display() string {
	if info, ok := formats[f]; ok {
		return info.display
	}
	return string(f)
}

// Valid returns true if the format is supported.
func (f Format) Valid() bool {
	_, ok := formats[f]
	return ok
}

// ParseFormat parses a format identifier.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.Valid() {
		return "", fmt.Errorf("unsupported export format: %q (supported: %s)",
			s, supportedFormats())
	}
	return f, nil
}

// Formats returns the supported formats in stable order.
func Formats() []Format {
	list := make([]Format, 0, len(formats))
	for f := range formats {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// supportedFormats returns the supported identifiers for error messages.
func supportedFormats() string {
	s := ""
	for i, f := range Formats() {
		if i > 0 {
			s += ", "
		}
		s += string(f)
	}
	return s
}
