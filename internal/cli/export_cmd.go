// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - Export command handlers for batchex.
//
// HandleExport and HandleExportSelected share the same environment
// loading and result rendering; they differ only in how batch roots
// are chosen.

package cli

import (
	"fmt"

	"github.com/jeranaias/batchex/internal/config"
	"github.com/jeranaias/batchex/internal/export"
	"github.com/jeranaias/batchex/internal/scene"
)

// batchEnv bundles everything an export-style command needs.
type batchEnv struct {
	doc    *scene.Document
	prefs  *config.Preferences
	driver *export.Driver
	req    export.Request
}

// loadBatchEnv loads the document and its preferences and builds the
// export request with CLI overrides applied on top.
func loadBatchEnv(args Args) (*batchEnv, error) {
	if args.Document == "" {
		return nil, ErrMissingArgument("document", "batchex export scene.json")
	}

	doc, err := scene.Load(args.Document)
	if err != nil {
		return nil, WrapError(err, "failed to load document")
	}

	prefs, err := config.LoadFor(doc.Path)
	if err != nil {
		return nil, WrapError(err, "failed to load preferences")
	}

	// CLI flags override both the preference file and the environment.
	if args.Directory != "" {
		prefs.Directory = args.Directory
	}
	if args.Format != "" {
		f, err := export.ParseFormat(args.Format)
		if err != nil {
			return nil, NewValidationError("format", args.Format, err.Error())
		}
		prefs.Format = f
	}
	switch args.ResetTransform {
	case "on":
		prefs.ResetRootTransform = true
	case "off":
		prefs.ResetRootTransform = false
	case "":
	default:
		return nil, NewValidationError("reset-transform", args.ResetTransform, "must be on or off")
	}

	return &batchEnv{
		doc:    doc,
		prefs:  prefs,
		driver: export.NewDriver(prefs.Registry()),
		req:    prefs.Request(),
	}, nil
}

// printResult renders a batch result, warnings included.
func printResult(res *export.Result, quiet bool) {
	if res == nil {
		return
	}
	for _, w := range res.Warnings {
		fmt.Printf("%s %s\n", WarningStyle.Render("[WARN]"), w)
	}
	if quiet {
		return
	}
	if len(res.Exported) > 0 {
		fmt.Printf("%s %s\n", SuccessStyle.Render("[OK]"), res.Summary())
	}
}

// HandleExport handles the "export" command: every eligible root object
// in the document gets its own file.
func HandleExport(args Args) error {
	env, err := loadBatchEnv(args)
	if err != nil {
		return err
	}

	if args.Verbose {
		fmt.Printf("%s %s\n", DimStyle.Render("document:"), env.doc.Path)
		fmt.Printf("%s %s\n", DimStyle.Render("format:"), env.req.Format.Display())
	}

	res, err := env.driver.ExportAll(env.doc, env.req)
	printResult(res, args.Quiet)
	if err != nil {
		return NewCommandError("export", "batch aborted", err)
	}
	return nil
}

// HandleExportSelected handles the "export-selected" command: the named
// objects are selected in the scene and exported verbatim, without the
// eligibility filtering applied by a full export.
func HandleExportSelected(args Args) error {
	if len(args.Objects) == 0 {
		return ErrMissingArgument("object", "batchex export-selected scene.json Hero")
	}

	env, err := loadBatchEnv(args)
	if err != nil {
		return err
	}

	for _, name := range args.Objects {
		o, err := env.doc.Scene.Find(name)
		if err != nil {
			return NewValidationError("object", name, "not found in document")
		}
		env.doc.Scene.Select(o)
	}

	res, err := env.driver.ExportSelected(env.doc, env.req)
	printResult(res, args.Quiet)
	if err != nil {
		return NewCommandError("export-selected", "batch aborted", err)
	}
	return nil
}
