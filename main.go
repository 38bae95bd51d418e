// batchex - Batch export tool for scene documents.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/jeranaias/batchex/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdExport:
		exitOnError(cli.HandleExport(args))
	case cli.CmdExportSelected:
		exitOnError(cli.HandleExportSelected(args))
	case cli.CmdFlag:
		exitOnError(cli.HandleFlag(args))
	case cli.CmdUnflag:
		exitOnError(cli.HandleUnflag(args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdWatch:
		exitOnError(cli.HandleWatch(args))
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args.Raw[0])
		cli.PrintUsage()
		os.Exit(cli.ExitUsageError)
	}
}

// exitOnError displays the error and exits with its category code.
func exitOnError(err error) {
	if err == nil {
		return
	}
	cli.DisplayError(err)
	os.Exit(cli.GetExitCode(err))
}
