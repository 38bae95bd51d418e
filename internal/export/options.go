// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strconv"
)

// =============================================================================
// FORMAT OPTIONS
// =============================================================================

// FormatOptions is implemented by per-format encoder option records.
// Records are resolved by format through an explicit table rather than
// by name lookup, so an unsupported combination cannot compile.
type FormatOptions interface {
	// Format returns the format the record configures.
	Format() Format

	// Validate checks enum-valued fields.
	Validate() error

	// args encodes the record as encoder arguments. Keys match the host
	// exporter's parameter names.
	args() map[string]string
}

// MergeOptions overlays user-configured options on the format's built-in
// defaults. User values win. A nil opts merges the defaults alone.
// Passing options for a different format is a programming error.
func MergeOptions(f Format, opts FormatOptions) (map[string]string, error) {
	info, ok := formats[f]
	if !ok {
		return nil, fmt.Errorf("unsupported export format: %q", f)
	}
	merged := make(map[string]string, len(info.defaults))
	for k, v := range info.defaults {
		merged[k] = v
	}

	if opts == nil {
		return merged, nil
	}
	if opts.Format() != f {
		return nil, fmt.Errorf("options are for format %q, expected %q", opts.Format(), f)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for k, v := range opts.args() {
		merged[k] = v
	}
	return merged, nil
}

// =============================================================================
// GLTF OPTIONS
// =============================================================================

// glTF container variants. Values match the host glTF exporter.
const (
	GltfVariantGLB      = "GLB"           // single binary file
	GltfVariantSeparate = "GLTF_SEPARATE" // JSON + .bin + textures
	GltfVariantEmbedded = "GLTF_EMBEDDED" // single JSON file
)

// glTF image handling. Values match the host glTF exporter.
const (
	GltfImagesAuto = "AUTO" // keep source image formats
	GltfImagesJPEG = "JPEG" // recompress to JPEG where possible
	GltfImagesNone = "NONE" // skip images entirely
)

// GltfOptions configures the glTF exporter. Field names and encoded
// argument keys match the host exporter's parameters.
type GltfOptions struct {
	// Variant selects the container layout (GLB, GLTF_SEPARATE,
	// GLTF_EMBEDDED).
	Variant string `toml:"variant" json:"variant"`
	// ImageFormat selects image handling (AUTO, JPEG, NONE).
	ImageFormat string `toml:"image_format" json:"image_format"`
	// YUp exports with the glTF +Y-up convention.
	YUp bool `toml:"y_up" json:"y_up"`
	// Texcoords exports texture coordinates per vertex.
	Texcoords bool `toml:"texcoords" json:"texcoords"`
	// Normals exports normals per vertex.
	Normals bool `toml:"normals" json:"normals"`
	// Tangents exports tangents per vertex.
	Tangents bool `toml:"tangents" json:"tangents"`
	// VertexColors exports colors per vertex.
	VertexColors bool `toml:"vertex_colors" json:"vertex_colors"`
	// ApplyModifiers applies modifiers before exporting. Prevents shape
	// key export when set.
	ApplyModifiers bool `toml:"apply_modifiers" json:"apply_modifiers"`
}

// DefaultGltfOptions returns the batch-export glTF defaults: a single
// binary file with no images.
func DefaultGltfOptions() GltfOptions {
	return GltfOptions{
		Variant:        GltfVariantGLB,
		ImageFormat:    GltfImagesNone,
		YUp:            true,
		Texcoords:      true,
		Normals:        true,
		Tangents:       false,
		VertexColors:   false,
		ApplyModifiers: true,
	}
}

// Format returns FormatGLTF.
func (o GltfOptions) Format() Format { return FormatGLTF }

// Extension returns the file extension the configured variant produces.
func (o GltfOptions) Extension() string {
	if o.Variant == GltfVariantGLB {
		return ".glb"
	}
	return ".gltf"
}

// Validate checks the enum-valued fields.
func (o GltfOptions) Validate() error {
	switch o.Variant {
	case GltfVariantGLB, GltfVariantSeparate, GltfVariantEmbedded:
	default:
		return fmt.Errorf("invalid glTF variant: %q", o.Variant)
	}
	switch o.ImageFormat {
	case GltfImagesAuto, GltfImagesJPEG, GltfImagesNone:
	default:
		return fmt.Errorf("invalid glTF image format: %q", o.ImageFormat)
	}
	return nil
}

func (o GltfOptions) args() map[string]string {
	return map[string]string{
		"export_format":       o.Variant,
		"export_image_format": o.ImageFormat,
		"export_yup":          strconv.FormatBool(o.YUp),
		"export_texcoords":    strconv.FormatBool(o.Texcoords),
		"export_normals":      strconv.FormatBool(o.Normals),
		"export_tangents":     strconv.FormatBool(o.Tangents),
		"export_colors":       strconv.FormatBool(o.VertexColors),
		"export_apply":        strconv.FormatBool(o.ApplyModifiers),
	}
}

// =============================================================================
// FBX OPTIONS
// =============================================================================

// FbxOptions configures the FBX exporter.
type FbxOptions struct {
	// ApplyModifiers applies modifiers before exporting. Prevents shape
	// key export when set.
	ApplyModifiers bool `toml:"apply_modifiers" json:"apply_modifiers"`
}

// DefaultFbxOptions returns the batch-export FBX defaults.
func DefaultFbxOptions() FbxOptions {
	return FbxOptions{
		ApplyModifiers: true,
	}
}

// Format returns FormatFBX.
func (o FbxOptions) Format() Format { return FormatFBX }

// Extension returns the FBX file extension.
func (o FbxOptions) Extension() string { return ".fbx" }

// Validate always succeeds; FBX options have no enum fields.
func (o FbxOptions) Validate() error { return nil }

func (o FbxOptions) args() map[string]string {
	return map[string]string{
		"use_mesh_modifiers": strconv.FormatBool(o.ApplyModifiers),
	}
}
