// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
)

// LoaderLibraryGlob is the file name pattern of the loader library on the
// running platform.
func LoaderLibraryGlob() string {
	if runtime.GOOS == "windows" {
		return "ze_loader.dll"
	}
	return "libze_loader.so*"
}

// DefaultLoaderGlobs are the well-known install locations of the loader.
func DefaultLoaderGlobs() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`c:\Windows\System32\ze_loader.dll`,
		}
	case "linux":
		return []string{
			"/usr/lib/x86_64-linux-gnu/libze_loader.so*",
			"/usr/lib/aarch64-linux-gnu/libze_loader.so*",
			"/usr/lib*/libze_loader.so*",
			"/usr/local/lib*/libze_loader.so*",
			"/opt/intel/oneapi/*/latest/lib/libze_loader.so*",
		}
	default:
		return nil
	}
}

// FindLoaderLibraries returns existing loader libraries matching baseName
// in the library search path (LD_LIBRARY_PATH on Linux, PATH on Windows),
// followed by matches of the extra globs. Symlinks are resolved and
// duplicates removed, preserving order.
func FindLoaderLibraries(baseName string, globs []string) []string {
	if baseName == "" {
		baseName = LoaderLibraryGlob()
	}
	log.Debugf("[zet] searching for loader library %s", baseName)

	var searchPaths []string
	switch runtime.GOOS {
	case "windows":
		searchPaths = filepath.SplitList(os.Getenv("PATH"))
	case "linux":
		searchPaths = filepath.SplitList(os.Getenv("LD_LIBRARY_PATH"))
	}

	patterns := make([]string, 0, len(searchPaths)+len(globs))
	for _, p := range searchPaths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		p, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		patterns = append(patterns, filepath.Join(p, baseName))
	}
	patterns = append(patterns, globs...)

	var found []string
	for _, pattern := range patterns {
		// Ignore glob discovery errors
		matches, _ := filepath.Glob(pattern)
		for _, match := range matches {
			libPath, err := filepath.EvalSymlinks(match)
			if err != nil {
				continue
			}
			if !slices.Contains(found, libPath) {
				found = append(found, libPath)
			}
		}
	}
	log.Debugf("[zet] discovered loader libraries: %v", found)
	return found
}
