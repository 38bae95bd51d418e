// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// UNICODE: Object names are NFC-normalized before sanitization so that
// the same visible name always yields the same filename, regardless of
// how the host composed its code points.

// CleanName derives a filesystem-safe filename (without extension) from
// an object name. Characters that are illegal on Windows or Unix
// filesystems, whitespace, and control characters are replaced with
// underscores. An empty or fully-illegal name falls back to "untitled".
func CleanName(name string) string {
	name = norm.NFC.String(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|':
			b.WriteRune('_')
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune('_')
		case r < 32 || r == 127:
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	// Trailing dots and underscores are dropped; Windows rejects names
	// ending in a dot.
	cleaned := strings.TrimRight(b.String(), "._")
	if cleaned == "" {
		return "untitled"
	}
	return cleaned
}
