// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides loading and management of batch-export
// preferences.
//
// Preferences persist alongside the scene document they configure
// (<document>.export.toml), with a JSON fallback, sensible defaults,
// and environment variable overrides.
//
// # Key Types
//
//   - Preferences: Export directory, format, transform reset, and one
//     option sub-record per supported format
//   - Tools: Converter tool names backing the per-format exporters
//
// # Precedence
//
// Environment overrides > file values > built-in defaults. Export logic
// reads preferences once per batch and never mutates them.
package config
