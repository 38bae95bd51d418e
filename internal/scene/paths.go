// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package scene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// relPrefix marks a path as relative to the open document's directory,
// following the convention of 3D content tools.
const relPrefix = "//"

// IsRelPath returns true if the path uses the document-relative prefix.
func IsRelPath(path string) bool {
	return strings.HasPrefix(path, relPrefix)
}

// AbsPath resolves a possibly document-relative path against the
// document's directory. Absolute paths and plain relative paths pass
// through filepath.Abs unchanged in meaning.
func (d *Document) AbsPath(path string) (string, error) {
	if IsRelPath(path) {
		rel := strings.TrimPrefix(path, relPrefix)
		return filepath.Join(filepath.Dir(d.Path), filepath.FromSlash(rel)), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}
	return abs, nil
}

// RelPath converts an absolute path to document-relative form. It fails
// if the path cannot be expressed relative to the document's directory
// (for example, a different volume on Windows).
func (d *Document) RelPath(path string) (string, error) {
	rel, err := filepath.Rel(filepath.Dir(d.Path), path)
	if err != nil {
		return "", fmt.Errorf("path %q is not relative to the document: %w", path, err)
	}
	return relPrefix + filepath.ToSlash(rel), nil
}
