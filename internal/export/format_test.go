// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"testing"
)

// =============================================================================
// FORMAT TESTS
// =============================================================================

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"gltf", FormatGLTF, false},
		{"fbx", FormatFBX, false},
		{"obj", "", true},
		{"", "", true},
		{"GLTF", "", true}, // identifiers are lowercase
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseFormat(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseFormat(%q) should fail", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFormats_StableOrder(t *testing.T) {
	first := Formats()
	second := Formats()
	if len(first) != 2 {
		t.Fatalf("Expected 2 supported formats, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Error("Formats() order must be stable")
		}
	}
}

func TestFormatDisplay(t *testing.T) {
	if FormatGLTF.Display() != "glTF" {
		t.Errorf("FormatGLTF.Display() = %q", FormatGLTF.Display())
	}
	if FormatFBX.Display() != "FBX" {
		t.Errorf("FormatFBX.Display() = %q", FormatFBX.Display())
	}
}

// =============================================================================
// OPTION MERGE TESTS
// =============================================================================

func TestMergeOptions_DefaultsOnly(t *testing.T) {
	merged, err := MergeOptions(FormatGLTF, nil)
	if err != nil {
		t.Fatalf("MergeOptions failed: %v", err)
	}

	// Batch exports always run selection-only and never prompt.
	if merged["use_selection"] != "true" {
		t.Error("use_selection default missing")
	}
	if merged["check_existing"] != "false" {
		t.Error("check_existing default missing")
	}
}

func TestMergeOptions_OverridesWin(t *testing.T) {
	opts := DefaultGltfOptions()
	opts.Variant = GltfVariantEmbedded
	opts.Normals = false

	merged, err := MergeOptions(FormatGLTF, opts)
	if err != nil {
		t.Fatalf("MergeOptions failed: %v", err)
	}

	if merged["export_format"] != "GLTF_EMBEDDED" {
		t.Errorf("export_format = %q, want override", merged["export_format"])
	}
	if merged["export_normals"] != "false" {
		t.Errorf("export_normals = %q, want override", merged["export_normals"])
	}
	// Defaults not shadowed by the record survive.
	if merged["export_lights"] != "true" {
		t.Error("export_lights default lost in merge")
	}
}

func TestMergeOptions_FbxDefaults(t *testing.T) {
	merged, err := MergeOptions(FormatFBX, DefaultFbxOptions())
	if err != nil {
		t.Fatalf("MergeOptions failed: %v", err)
	}
	if merged["use_selection"] != "true" {
		t.Error("use_selection default missing")
	}
	if merged["use_mesh_modifiers"] != "true" {
		t.Error("use_mesh_modifiers not encoded")
	}
}

func TestMergeOptions_FormatMismatch(t *testing.T) {
	if _, err := MergeOptions(FormatFBX, DefaultGltfOptions()); err == nil {
		t.Error("glTF options must not merge into an FBX export")
	}
}

func TestMergeOptions_UnsupportedFormat(t *testing.T) {
	if _, err := MergeOptions(Format("obj"), nil); err == nil {
		t.Error("unsupported format must fail")
	}
}

// =============================================================================
// OPTION VALIDATION TESTS
// =============================================================================

func TestGltfOptions_Validate(t *testing.T) {
	opts := DefaultGltfOptions()
	if err := opts.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	opts.Variant = "GLTF_BOGUS"
	if err := opts.Validate(); err == nil {
		t.Error("invalid variant should fail validation")
	}

	opts = DefaultGltfOptions()
	opts.ImageFormat = "WEBP"
	if err := opts.Validate(); err == nil {
		t.Error("invalid image format should fail validation")
	}
}

func TestDefaultGltfOptions_Values(t *testing.T) {
	opts := DefaultGltfOptions()
	if opts.Variant != GltfVariantGLB {
		t.Errorf("default variant = %q, want GLB", opts.Variant)
	}
	if opts.ImageFormat != GltfImagesNone {
		t.Errorf("default image format = %q, want NONE", opts.ImageFormat)
	}
	if !opts.YUp || !opts.Texcoords || !opts.Normals || !opts.ApplyModifiers {
		t.Error("YUp, Texcoords, Normals, ApplyModifiers default to true")
	}
	if opts.Tangents || opts.VertexColors {
		t.Error("Tangents and VertexColors default to false")
	}
}
