// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"testing"
)

func TestCleanName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Hero", "Hero"},
		{"spaces", "Hero Body", "Hero_Body"},
		{"separators", "Hero/Body\\Arm", "Hero_Body_Arm"},
		{"windows illegal", `He:ro*?"<>|`, "He_ro"},
		{"control chars", "Hero\x01\x02", "Hero"},
		{"trailing dot", "Hero.", "Hero"},
		{"dots kept inside", "Hero.001", "Hero.001"},
		{"empty", "", "untitled"},
		{"only illegal", "///", "untitled"},
		{"unicode kept", "モデル", "モデル"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanName(tc.input); got != tc.expected {
				t.Errorf("CleanName(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCleanName_NormalizesUnicode(t *testing.T) {
	// "e" + combining acute vs. precomposed "é" must collapse to the
	// same filename so repeated exports hit the same file.
	composed := CleanName("café")
	decomposed := CleanName("café")
	if composed != decomposed {
		t.Errorf("NFC normalization missing: %q != %q", composed, decomposed)
	}
}

func TestCleanName_Deterministic(t *testing.T) {
	a := CleanName("Hero Body/01")
	b := CleanName("Hero Body/01")
	if a != b {
		t.Error("CleanName must be deterministic")
	}
}
