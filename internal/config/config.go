// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/batchex/internal/export"
	"github.com/jeranaias/batchex/internal/scene"
	"github.com/jeranaias/batchex/internal/util"
)

// Preference files live next to the document they configure.
const (
	prefsSuffixTOML = ".export.toml"
	prefsSuffixJSON = ".export.json"
)

// =============================================================================
// PREFERENCES
// =============================================================================

// Preferences holds the per-document batch-export configuration.
type Preferences struct {
	// Directory is the export destination, normally in "//"-relative
	// form so the document stays portable.
	Directory string `toml:"directory" json:"directory"`

	// Format selects the export format for batches.
	Format export.Format `toml:"format" json:"format"`

	// ResetRootTransform zeroes each root's transform for the duration
	// of its export.
	ResetRootTransform bool `toml:"reset_root_transform" json:"reset_root_transform"`

	// Gltf holds the glTF encoder overrides.
	Gltf export.GltfOptions `toml:"gltf" json:"gltf"`

	// Fbx holds the FBX encoder overrides.
	Fbx export.FbxOptions `toml:"fbx" json:"fbx"`

	// Tools names the converter tools backing each format's exporter.
	Tools Tools `toml:"tools" json:"tools"`
}

// Tools names the external converter tool per format.
type Tools struct {
	Gltf string `toml:"gltf" json:"gltf"`
	Fbx  string `toml:"fbx" json:"fbx"`
}

// Default returns the built-in preferences.
func Default() *Preferences {
	return &Preferences{
		Directory:          "//",
		Format:             export.FormatGLTF,
		ResetRootTransform: true,
		Gltf:               export.DefaultGltfOptions(),
		Fbx:                export.DefaultFbxOptions(),
		Tools: Tools{
			Gltf: "scene2gltf",
			Fbx:  "scene2fbx",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// PathFor returns the TOML preferences path for a scene document.
func PathFor(docPath string) string {
	return strings.TrimSuffix(docPath, ".json") + prefsSuffixTOML
}

// jsonPathFor returns the JSON fallback path for a scene document.
func jsonPathFor(docPath string) string {
	return strings.TrimSuffix(docPath, ".json") + prefsSuffixJSON
}

// =============================================================================
// LOAD
// =============================================================================

// LoadFor loads the preferences persisted alongside a scene document.
// Missing files yield the defaults; environment overrides always apply.
func LoadFor(docPath string) (*Preferences, error) {
	prefs := Default()

	// Try TOML first, JSON as fallback.
	tomlPath := PathFor(docPath)
	if _, err := os.Stat(tomlPath); err == nil {
		if _, err := toml.DecodeFile(tomlPath, prefs); err != nil {
			return nil, fmt.Errorf("failed to load preferences %s: %w", tomlPath, err)
		}
	} else {
		jsonPath := jsonPathFor(docPath)
		if data, err := os.ReadFile(jsonPath); err == nil {
			if err := json.Unmarshal(data, prefs); err != nil {
				return nil, fmt.Errorf("failed to load preferences %s: %w", jsonPath, err)
			}
		}
	}

	prefs.ApplyEnvOverrides()
	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preferences: %w", err)
	}
	return prefs, nil
}

// =============================================================================
// SAVE
// =============================================================================

// SaveFor persists the preferences alongside a scene document.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveFor(prefs *Preferences, docPath string) error {
	var buf strings.Builder
	buf.WriteString("# batchex export preferences\n")
	buf.WriteString("# Generated by batchex - edit with care\n")
	buf.WriteString("\n")

	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(prefs); err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	path := PathFor(docPath)
	if err := util.AtomicWriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write preferences %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// VALIDATION AND OVERRIDES
// =============================================================================

// Validate checks the format and its option records.
func (p *Preferences) Validate() error {
	if !p.Format.Valid() {
		return fmt.Errorf("unsupported export format: %q", p.Format)
	}
	if p.Directory == "" {
		return fmt.Errorf("export directory is not set")
	}
	if err := p.Gltf.Validate(); err != nil {
		return err
	}
	return p.Fbx.Validate()
}

// ApplyEnvOverrides applies environment variable overrides:
//
//	BATCHEX_DIRECTORY       export directory
//	BATCHEX_FORMAT          export format identifier
//	BATCHEX_RESET_TRANSFORM "1"/"true" or "0"/"false"
func (p *Preferences) ApplyEnvOverrides() {
	if dir := os.Getenv("BATCHEX_DIRECTORY"); dir != "" {
		p.Directory = dir
	}
	if format := os.Getenv("BATCHEX_FORMAT"); format != "" {
		p.Format = export.Format(format)
	}
	if reset := os.Getenv("BATCHEX_RESET_TRANSFORM"); reset != "" {
		p.ResetRootTransform = reset == "1" || strings.ToLower(reset) == "true"
	}
}

// =============================================================================
// EXPORT WIRING
// =============================================================================

// FormatOptions returns the option record for the configured format.
func (p *Preferences) FormatOptions() export.FormatOptions {
	switch p.Format {
	case export.FormatFBX:
		return p.Fbx
	default:
		return p.Gltf
	}
}

// Tool returns the converter tool name for a format.
func (p *Preferences) Tool(f export.Format) string {
	switch f {
	case export.FormatFBX:
		return p.Tools.Fbx
	default:
		return p.Tools.Gltf
	}
}

// Registry builds the exporter registry backed by the configured
// converter tools.
func (p *Preferences) Registry() *export.Registry {
	r := export.NewRegistry()
	r.Register(export.FormatGLTF, export.NewCommandExporter(p.Tools.Gltf, p.Gltf.Extension()))
	r.Register(export.FormatFBX, export.NewCommandExporter(p.Tools.Fbx, p.Fbx.Extension()))
	return r
}

// Request builds the export request for one batch. Roots are filled by
// the caller.
func (p *Preferences) Request() export.Request {
	return export.Request{
		Directory:      p.Directory,
		Format:         p.Format,
		Options:        p.FormatOptions(),
		ResetTransform: p.ResetRootTransform,
	}
}

// SetDirectory stores a directory preference, converting it to
// document-relative form when possible so the document stays portable.
func (p *Preferences) SetDirectory(doc *scene.Document, value string) {
	if rel, err := doc.RelPath(value); err == nil && !strings.HasPrefix(rel, "//..") {
		p.Directory = rel
		return
	}
	p.Directory = value
}
