// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Preference management for batchex.
//
// Preferences are stored per document ("show" displays the merged view
// after defaults and environment overrides, "set" persists one key).

package cli

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/batchex/internal/config"
	"github.com/jeranaias/batchex/internal/export"
	"github.com/jeranaias/batchex/internal/scene"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	if args.Document == "" {
		return ErrMissingArgument("document", "batchex config scene.json show")
	}

	switch args.Subcommand {
	case "", "show":
		return configShow(args)
	case "path":
		fmt.Println(config.PathFor(args.Document))
		return nil
	case "set":
		return configSet(args)
	default:
		return NewValidationError("subcommand", args.Subcommand, "must be show, set, or path")
	}
}

func configShow(args Args) error {
	doc, err := scene.Load(args.Document)
	if err != nil {
		return WrapError(err, "failed to load document")
	}
	prefs, err := config.LoadFor(doc.Path)
	if err != nil {
		return WrapError(err, "failed to load preferences")
	}

	fmt.Println(TitleStyle.Render("Batch Export Preferences"))
	fmt.Printf("%s %s\n", RenderLabel("Document"), ValueStyle.Render(doc.Path))
	fmt.Printf("%s %s\n", RenderLabel("Preference file"), ValueStyle.Render(config.PathFor(doc.Path)))
	fmt.Println(RenderSeparator())
	fmt.Printf("%s %s\n", RenderLabel("directory"), ValueStyle.Render(prefs.Directory))
	fmt.Printf("%s %s\n", RenderLabel("format"), ValueStyle.Render(prefs.Format.Display()))
	fmt.Printf("%s %s\n", RenderLabel("reset_transform"), ValueStyle.Render(strconv.FormatBool(prefs.ResetRootTransform)))
	fmt.Printf("%s %s\n", RenderLabel("tool.gltf"), ValueStyle.Render(prefs.Tools.Gltf))
	fmt.Printf("%s %s\n", RenderLabel("tool.fbx"), ValueStyle.Render(prefs.Tools.Fbx))
	return nil
}

func configSet(args Args) error {
	if args.ConfigKey == "" {
		return ErrMissingArgument("key", "batchex config scene.json set directory //exports")
	}
	if args.ConfigVal == "" {
		return ErrMissingArgument("value", "batchex config scene.json set directory //exports")
	}

	doc, err := scene.Load(args.Document)
	if err != nil {
		return WrapError(err, "failed to load document")
	}
	prefs, err := config.LoadFor(doc.Path)
	if err != nil {
		return WrapError(err, "failed to load preferences")
	}

	switch args.ConfigKey {
	case "directory":
		prefs.SetDirectory(doc, args.ConfigVal)
	case "format":
		f, err := export.ParseFormat(args.ConfigVal)
		if err != nil {
			return NewValidationError("format", args.ConfigVal, err.Error())
		}
		prefs.Format = f
	case "reset_transform":
		b, err := strconv.ParseBool(args.ConfigVal)
		if err != nil {
			return NewValidationError("reset_transform", args.ConfigVal, "must be true or false")
		}
		prefs.ResetRootTransform = b
	case "tool.gltf":
		prefs.Tools.Gltf = args.ConfigVal
	case "tool.fbx":
		prefs.Tools.Fbx = args.ConfigVal
	default:
		return NewValidationError("key", args.ConfigKey,
			"must be one of directory, format, reset_transform, tool.gltf, tool.fbx")
	}

	if err := config.SaveFor(prefs, doc.Path); err != nil {
		return NewCommandError("config", "failed to save preferences", err)
	}

	if !args.Quiet {
		fmt.Printf("%s %s = %s\n", SuccessStyle.Render("[OK]"),
			args.ConfigKey, ValueStyle.Render(args.ConfigVal))
	}
	return nil
}
