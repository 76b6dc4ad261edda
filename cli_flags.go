// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"

	"github.com/peterbourgon/ff/v3"

	"github.com/canonical/kobuk-gfx-level-zero/internal/controller"
	"github.com/canonical/kobuk-gfx-level-zero/zet"
)

const (
	// Default values for CLI flags
	defaultArgAPIVersion = "current"
)

// Help strings for command line arguments
var (
	apiVersionHelp = fmt.Sprintf("Level Zero API version requested from the loader, "+
		"as major.minor. Default is the revision the bindings match (%s).",
		zet.APIVersionCurrent)
	configHelp     = "Path to a plain configuration file with one flag per line."
	bestEffortHelp = "Continue when an experimental subsystem is not provided by " +
		"the loader. Its entry points stay unbound."
	libraryHelp = "Comma-separated list of loader libraries to try in order. " +
		"Defaults to the platform loader name."
	listHelp        = "List every entry point and whether it was bound."
	searchHelp      = "Search the library path and well-known install locations for the loader."
	searchGlobsHelp = "Comma-separated glob patterns replacing the well-known install locations " +
		"used by -search."
	showVersionsHelp = "Show the versions of the loader components."
	verboseModeHelp  = "Enable verbose logging and debugging capabilities."
	versionHelp      = "Show version."
)

func parseArgs(arguments []string) (*controller.Config, error) {
	var args controller.Config

	fs := flag.NewFlagSet("zet-probe", flag.ExitOnError)

	// Please keep the parameters ordered alphabetically in the source-code.
	fs.StringVar(&args.APIVersion, "api-version", defaultArgAPIVersion, apiVersionHelp)

	fs.BoolVar(&args.BestEffort, "best-effort", false, bestEffortHelp)

	fs.String("config", "", configHelp)

	fs.StringVar(&args.LibraryPaths, "library", "", libraryHelp)
	fs.BoolVar(&args.ListEntryPoints, "list", false, listHelp)

	fs.BoolVar(&args.Search, "search", false, searchHelp)
	fs.StringVar(&args.SearchGlobs, "search-globs", "", searchGlobsHelp)
	fs.BoolVar(&args.ShowVersions, "show-versions", false, showVersionsHelp)

	fs.BoolVar(&args.VerboseMode, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&args.VerboseMode, "verbose", false, verboseModeHelp)
	fs.BoolVar(&args.Version, "version", false, versionHelp)

	fs.Usage = func() {
		fs.PrintDefaults()
	}

	args.Fs = fs

	return &args, ff.Parse(fs, arguments,
		ff.WithEnvVarPrefix("ZET_PROBE"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		// This will ignore configuration file (only) options that the current
		// version does not recognize.
		ff.WithIgnoreUndefined(true),
		ff.WithAllowMissingConfigFile(true),
	)
}
