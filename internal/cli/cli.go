// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for batchex.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdExport Command = iota
	CmdExportSelected
	CmdFlag
	CmdUnflag
	CmdConfig
	CmdWatch
	CmdVersion
	CmdHelp
	CmdUnknown
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool

	// Document is the scene document path (first positional argument
	// of every document-bound command).
	Document string

	// Per-batch overrides (export, export-selected, watch)
	Directory      string
	Format         string
	ResetTransform string // "", "on", "off"

	// Objects holds object names (export-selected, flag, unflag)
	Objects []string

	// Config command
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Watch command
	Debounce string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `batchex - batch export tool for scene documents

Batchex exports each root object of a scene document to its own file,
one file per root, selecting the root together with its exportable
descendants for every export.

Usage:
  batchex export <doc> [flags]            Export all eligible roots
  batchex export-selected <doc> <object>... [flags]
                                          Export the named roots
  batchex flag <doc> <object>...          Mark objects as exportable
  batchex unflag <doc> <object>...        Exclude objects from batches
  batchex config <doc> [show|set|path]    Preference management
  batchex watch <doc> [flags]             Re-export on document change
  batchex version                         Show version information
  batchex help                            Show this help

Export Flags (export, export-selected, watch):
  --dir PATH              Override the export directory
                          ("//" prefix resolves against the document)
  --format gltf|fbx       Override the export format
  --reset-transform on|off
                          Zero each root's transform during its export
                          (restored afterwards)

Config Commands:
  batchex config <doc>                    Show effective preferences
  batchex config <doc> show               Same as above
  batchex config <doc> path               Show the preference file path
  batchex config <doc> set KEY VALUE      Set and save one preference

  Keys: directory, format, reset_transform, tool.gltf, tool.fbx

Watch Flags:
  --debounce DURATION     Quiet period before re-exporting (default 500ms)

Environment:
  BATCHEX_DIRECTORY       Overrides the export directory
  BATCHEX_FORMAT          Overrides the export format
  BATCHEX_RESET_TRANSFORM Overrides the transform reset toggle

Global Flags:
  -q, --quiet             Minimal output
  -v, --verbose           Debug output

Examples:
  batchex export scene.json
  batchex export scene.json --dir //exports --format fbx
  batchex export-selected scene.json Hero Prop_Crate
  batchex unflag scene.json Debris
  batchex config scene.json set directory //exports
  batchex watch scene.json --debounce 2s

Preferences are stored next to the document as <doc>.export.toml.

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("batchex version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list (without the program name).
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdHelp, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "export":
		parseExportArgs(&parsedArgs, remaining)
		return CmdExport, parsedArgs

	case "export-selected", "export-sel":
		parseExportArgs(&parsedArgs, remaining)
		return CmdExportSelected, parsedArgs

	case "flag", "include":
		parseObjectArgs(&parsedArgs, remaining)
		return CmdFlag, parsedArgs

	case "unflag", "exclude":
		parseObjectArgs(&parsedArgs, remaining)
		return CmdUnflag, parsedArgs

	case "config", "prefs":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "watch":
		parseWatchArgs(&parsedArgs, remaining)
		return CmdWatch, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command - restore it so the handler can report it
		parsedArgs.Raw = append([]string{cmd}, remaining...)
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "--verbose":
			parsedArgs.Verbose = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs
}

// parseExportArgs parses export/export-selected/watch batch overrides.
// The first positional argument is the document; further positionals
// are object names (used by export-selected, ignored by export).
func parseExportArgs(args *Args, remaining []string) {
	i := 0
	for i < len(remaining) {
		arg := remaining[i]

		switch arg {
		case "--dir", "--directory", "-d":
			if i+1 < len(remaining) {
				i++
				args.Directory = remaining[i]
			}
		case "--format", "-f":
			if i+1 < len(remaining) {
				i++
				args.Format = remaining[i]
			}
		case "--reset-transform":
			args.ResetTransform = "on"
			if i+1 < len(remaining) {
				switch strings.ToLower(remaining[i+1]) {
				case "on", "off":
					i++
					args.ResetTransform = strings.ToLower(remaining[i])
				}
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--dir="):
				args.Directory = strings.TrimPrefix(arg, "--dir=")
			case strings.HasPrefix(arg, "--format="):
				args.Format = strings.TrimPrefix(arg, "--format=")
			case strings.HasPrefix(arg, "--reset-transform="):
				args.ResetTransform = strings.ToLower(strings.TrimPrefix(arg, "--reset-transform="))
			case !strings.HasPrefix(arg, "-"):
				if args.Document == "" {
					args.Document = arg
				} else {
					args.Objects = append(args.Objects, arg)
				}
			}
		}
		i++
	}
}

// parseObjectArgs parses flag/unflag arguments: a document followed by
// one or more object names.
func parseObjectArgs(args *Args, remaining []string) {
	for _, arg := range remaining {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if args.Document == "" {
			args.Document = arg
			continue
		}
		args.Objects = append(args.Objects, arg)
	}
}

// parseConfigArgs parses config command arguments.
func parseConfigArgs(args *Args, remaining []string) {
	positional := make([]string, 0, len(remaining))
	for _, arg := range remaining {
		if !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
		}
	}

	if len(positional) > 0 {
		args.Document = positional[0]
	}
	if len(positional) > 1 {
		args.Subcommand = positional[1]
	}
	if len(positional) > 2 {
		args.ConfigKey = positional[2]
	}
	if len(positional) > 3 {
		args.ConfigVal = positional[3]
	}
}

// parseWatchArgs parses watch command arguments.
func parseWatchArgs(args *Args, remaining []string) {
	// Watch takes the same batch overrides as export plus --debounce.
	var rest []string
	i := 0
	for i < len(remaining) {
		arg := remaining[i]
		switch {
		case arg == "--debounce" && i+1 < len(remaining):
			i++
			args.Debounce = remaining[i]
		case strings.HasPrefix(arg, "--debounce="):
			args.Debounce = strings.TrimPrefix(arg, "--debounce=")
		default:
			rest = append(rest, arg)
		}
		i++
	}
	parseExportArgs(args, rest)
}

// HandleVersion handles the "version" command.
func HandleVersion() {
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}
