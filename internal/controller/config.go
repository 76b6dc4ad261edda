// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package controller // import "github.com/canonical/kobuk-gfx-level-zero/internal/controller"

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/canonical/kobuk-gfx-level-zero/zet"
)

// Config holds the settings of a single probe run.
type Config struct {
	APIVersion      string
	BestEffort      bool
	LibraryPaths    string
	ListEntryPoints bool
	Search          bool
	SearchGlobs     string
	ShowVersions    bool
	VerboseMode     bool
	Version         bool

	Fs *flag.FlagSet

	apiVersion zet.APIVersion
}

// Dump visits all flag sets, and dumps them all to debug
// Used for verbose mode logging.
func (cfg *Config) Dump() {
	if cfg.Fs == nil {
		return
	}
	log.Debug("Config:")
	cfg.Fs.VisitAll(func(f *flag.Flag) {
		log.Debug(fmt.Sprintf("%s: %v", f.Name, f.Value))
	})
}

// Validate runs validations on the provided configuration, and returns errors
// if invalid values were provided.
func (cfg *Config) Validate() error {
	v, err := zet.ParseAPIVersion(cfg.APIVersion)
	if err != nil {
		return fmt.Errorf("invalid api-version: %w", err)
	}
	cfg.apiVersion = v

	if !cfg.Search && cfg.SearchGlobs != "" {
		return errors.New("search-globs requires search to be enabled")
	}
	return nil
}

// libraryPaths returns the loader candidates in the order they are tried:
// explicit paths first, then search results. An empty result lets the
// loader fall back to its platform default names.
func (cfg *Config) libraryPaths() []string {
	paths := splitList(cfg.LibraryPaths)
	if !cfg.Search {
		return paths
	}

	globs := splitList(cfg.SearchGlobs)
	if len(globs) == 0 {
		globs = zet.DefaultLoaderGlobs()
	}
	found := zet.FindLoaderLibraries("", globs)
	log.Debugf("Search found %d loader libraries", len(found))
	return append(paths, found...)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
