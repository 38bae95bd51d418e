// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// flag_cmd.go - Exportable flag management for batchex.
//
// "flag" marks objects as exportable, "unflag" excludes them (and with
// them their whole subtree, since the flag is inherited downward).

package cli

import (
	"fmt"

	"github.com/jeranaias/batchex/internal/scene"
	"github.com/jeranaias/batchex/internal/util"
)

// HandleFlag handles the "flag" command.
func HandleFlag(args Args) error {
	return setExportable(args, true)
}

// HandleUnflag handles the "unflag" command.
func HandleUnflag(args Args) error {
	return setExportable(args, false)
}

func setExportable(args Args, exportable bool) error {
	command := "flag"
	if !exportable {
		command = "unflag"
	}

	if args.Document == "" {
		return ErrMissingArgument("document", "batchex "+command+" scene.json Hero")
	}
	if len(args.Objects) == 0 {
		return ErrMissingArgument("object", "batchex "+command+" scene.json Hero")
	}

	doc, err := scene.Load(args.Document)
	if err != nil {
		return WrapError(err, "failed to load document")
	}

	objects := make([]*scene.Object, 0, len(args.Objects))
	for _, name := range args.Objects {
		o, err := doc.Scene.Find(name)
		if err != nil {
			return NewValidationError("object", name, "not found in document")
		}
		objects = append(objects, o)
	}

	scene.SetExportable(objects, exportable)

	if err := doc.Save(); err != nil {
		return NewCommandError(command, "failed to save document", err)
	}

	if !args.Quiet {
		verb := "flagged"
		if !exportable {
			verb = "unflagged"
		}
		fmt.Printf("%s %s %s\n", SuccessStyle.Render("[OK]"), verb,
			ValueStyle.Render(util.JoinNames(args.Objects)))
	}
	return nil
}
