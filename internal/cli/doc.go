// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements argument parsing and command handlers for the
// batchex command-line tool.
//
// Commands load a scene document plus its sibling preference file, run
// the requested operation through internal/export or internal/scene,
// and render the outcome with the shared styles in styles.go. Handlers
// always return errors; display and exit codes are decided by the
// caller (see errors.go).
package cli
